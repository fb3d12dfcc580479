// Package overrides turns an ESLint report into override blocks that switch
// off every rule that fired, one block per distinct set of rules.
package overrides

import (
	"slices"
	"strings"
)

// KeySeparator joins rule ids into a group key.
const KeySeparator = "#"

// RuleSet returns the sorted, duplicate-free rule ids from ids.
// Empty ids are dropped.
func RuleSet(ids []string) []string {
	set := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			set = append(set, id)
		}
	}
	slices.Sort(set)
	return slices.Compact(set)
}

// Key derives the group key for a set of rule ids. Order and multiplicity of
// ids do not affect the result.
func Key(ids []string) string {
	return strings.Join(RuleSet(ids), KeySeparator)
}
