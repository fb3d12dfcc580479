// Package eslint reads ESLint's machine-readable report format (eslint -f json).
package eslint

// FileReport is the set of diagnostics ESLint produced for one source file.
type FileReport struct {
	FilePath string    `json:"filePath"`
	Messages []Message `json:"messages"`
}

// Message is a single diagnostic. RuleID is empty for parse errors, which
// ESLint reports with a null ruleId.
type Message struct {
	RuleID   string `json:"ruleId"`
	Severity int    `json:"severity,omitempty"` // 1 = warning, 2 = error
	Message  string `json:"message,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// RuleIDs returns the rule ids attributed in this report, in firing order.
// Unattributed messages are skipped; duplicates are kept.
func (r FileReport) RuleIDs() []string {
	ids := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		if m.RuleID == "" {
			continue
		}
		ids = append(ids, m.RuleID)
	}
	return ids
}
