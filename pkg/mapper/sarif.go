// Package mapper converts other report formats into ESLint file reports.
package mapper

import (
	"github.com/dkoosis/eslintkit/pkg/eslint"
	"github.com/dkoosis/eslintkit/pkg/sarif"
)

// FromSARIF converts a SARIF document into one FileReport per artifact, in
// the order each artifact first appears across all runs. Results without a
// location cannot be attributed to a file and are dropped.
func FromSARIF(doc *sarif.Document) []eslint.FileReport {
	reports := []eslint.FileReport{}
	index := make(map[string]int)

	for _, run := range doc.Runs {
		for _, result := range run.Results {
			uri := result.URI()
			if uri == "" {
				continue
			}

			i, seen := index[uri]
			if !seen {
				i = len(reports)
				index[uri] = i
				reports = append(reports, eslint.FileReport{
					FilePath: sarif.FilePath(uri),
					Messages: []eslint.Message{},
				})
			}
			reports[i].Messages = append(reports[i].Messages, sarifMessage(result))
		}
	}

	return reports
}

func sarifMessage(r sarif.Result) eslint.Message {
	m := eslint.Message{
		RuleID:   r.RuleID,
		Severity: severity(r.Level),
		Message:  r.Message.Text,
	}
	if len(r.Locations) > 0 {
		region := r.Locations[0].PhysicalLocation.Region
		m.Line = region.StartLine
		m.Column = region.StartColumn
	}
	return m
}

// severity maps a SARIF level onto ESLint's numeric severity.
func severity(level string) int {
	switch level {
	case "error":
		return 2
	case "warning", "":
		return 1
	default:
		return 0
	}
}
