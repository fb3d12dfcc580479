package eslintconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Level is a rule severity.
type Level string

const (
	Off   Level = "off"
	Warn  Level = "warn"
	Error Level = "error"
)

// RuleEntry configures one rule. Without options it encodes as the bare
// level ("off"); with options it encodes as [level, options...].
type RuleEntry struct {
	Level   Level
	Options []any
}

func (e RuleEntry) value() any {
	if len(e.Options) == 0 {
		return string(e.Level)
	}
	v := make([]any, 0, 1+len(e.Options))
	v = append(v, string(e.Level))
	return append(v, e.Options...)
}

func (e RuleEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.value())
}

func (e RuleEntry) MarshalYAML() (any, error) {
	return e.value(), nil
}

// Rules maps rule ids to their configuration and remembers insertion order,
// which is kept when encoding. Setting an id that is already present replaces
// its entry in place.
type Rules struct {
	ids     []string
	entries map[string]RuleEntry
}

// Set configures id.
func (r *Rules) Set(id string, level Level, options ...any) {
	if r.entries == nil {
		r.entries = make(map[string]RuleEntry)
	}
	if _, ok := r.entries[id]; !ok {
		r.ids = append(r.ids, id)
	}
	r.entries[id] = RuleEntry{Level: level, Options: options}
}

// Get returns the entry for id.
func (r Rules) Get(id string) (RuleEntry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// IDs returns rule ids in insertion order.
func (r Rules) IDs() []string {
	return append([]string(nil), r.ids...)
}

func (r Rules) Len() int { return len(r.ids) }

func (r Rules) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range r.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.entries[id])
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", id, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r Rules) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, id := range r.ids {
		var val yaml.Node
		if err := val.Encode(r.entries[id]); err != nil {
			return nil, fmt.Errorf("rule %s: %w", id, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id},
			&val,
		)
	}
	return node, nil
}
