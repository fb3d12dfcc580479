package overrides

import (
	"strings"

	"github.com/dkoosis/eslintkit/pkg/eslint"
)

// Off is the severity every collected rule is set to.
const Off = "off"

// Group pairs the files that triggered exactly the same set of rules with the
// suppressions they need.
type Group struct {
	Files []string          `json:"files"`
	Rules map[string]string `json:"rules"`

	key     string
	ruleIDs []string // sorted; matches the keys of Rules
}

// Key returns the group key this group was created for.
func (g *Group) Key() string { return g.key }

// RuleIDs returns the group's rule ids in sorted order.
func (g *Group) RuleIDs() []string { return g.ruleIDs }

// Stats summarizes an aggregation run.
type Stats struct {
	Files      int // file reports seen
	Suppressed int // files that ended up in an emitted group
	Clean      int // files with no attributable rule
	Groups     int // emitted groups
}

// Aggregator groups file reports by the set of rules that fired in them.
// Groups are kept in the order their key was first seen.
type Aggregator struct {
	prefix string
	byKey  map[string]*Group
	order  []*Group
	files  int
}

// NewAggregator returns an Aggregator that strips prefix from the start of
// every file path. An empty prefix leaves paths unchanged.
func NewAggregator(prefix string) *Aggregator {
	return &Aggregator{
		prefix: prefix,
		byKey:  make(map[string]*Group),
	}
}

// Add folds one file report into its group.
func (a *Aggregator) Add(report eslint.FileReport) {
	a.files++

	ids := RuleSet(report.RuleIDs())
	key := strings.Join(ids, KeySeparator)

	g, ok := a.byKey[key]
	if !ok {
		g = &Group{
			Files:   []string{},
			Rules:   make(map[string]string, len(ids)),
			key:     key,
			ruleIDs: ids,
		}
		for _, id := range ids {
			g.Rules[id] = Off
		}
		a.byKey[key] = g
		a.order = append(a.order, g)
	}
	g.Files = append(g.Files, a.trimPrefix(report.FilePath))
}

// AddAll folds every report in order.
func (a *Aggregator) AddAll(reports []eslint.FileReport) {
	for _, r := range reports {
		a.Add(r)
	}
}

func (a *Aggregator) trimPrefix(path string) string {
	if a.prefix == "" {
		return path
	}
	return strings.TrimPrefix(path, a.prefix)
}

// Groups returns the groups that have at least one rule, in first-seen order.
// The result is never nil.
func (a *Aggregator) Groups() []*Group {
	groups := make([]*Group, 0, len(a.order))
	for _, g := range a.order {
		if len(g.Rules) == 0 {
			continue
		}
		groups = append(groups, g)
	}
	return groups
}

// Stats reports counts for the reports added so far.
func (a *Aggregator) Stats() Stats {
	s := Stats{Files: a.files}
	for _, g := range a.order {
		if len(g.Rules) == 0 {
			s.Clean += len(g.Files)
			continue
		}
		s.Groups++
		s.Suppressed += len(g.Files)
	}
	return s
}

// Aggregate groups reports in one pass. See Aggregator.
func Aggregate(reports []eslint.FileReport, prefix string) []*Group {
	a := NewAggregator(prefix)
	a.AddAll(reports)
	return a.Groups()
}
