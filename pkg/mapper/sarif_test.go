package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/eslintkit/pkg/eslint"
	"github.com/dkoosis/eslintkit/pkg/sarif"
)

func TestFromSARIF_GroupsResultsByArtifact(t *testing.T) {
	doc, err := sarif.ReadBytes([]byte(`{"version":"2.1.0","runs":[{"tool":{"driver":{"name":"ESLint"}},"results":[
		{"ruleId":"semi","level":"error","message":{"text":"Missing semicolon."},"locations":[{"physicalLocation":{"artifactLocation":{"uri":"file:///proj/a.js"},"region":{"startLine":3,"startColumn":9}}}]},
		{"ruleId":"curly","level":"warning","message":{"text":"Expected { after 'if' condition."},"locations":[{"physicalLocation":{"artifactLocation":{"uri":"file:///proj/b.js"}}}]},
		{"level":"error","message":{"text":"Parsing error"},"locations":[{"physicalLocation":{"artifactLocation":{"uri":"file:///proj/a.js"}}}]},
		{"ruleId":"no-console","level":"note","message":{"text":"orphan"}}
	]}]}`))
	require.NoError(t, err)

	reports := FromSARIF(doc)

	require.Len(t, reports, 2)
	assert.Equal(t, "/proj/a.js", reports[0].FilePath)
	assert.Equal(t, "/proj/b.js", reports[1].FilePath)
	assert.Equal(t, []string{"semi"}, reports[0].RuleIDs())
	assert.Len(t, reports[0].Messages, 2)
	assert.Equal(t, eslint.Message{RuleID: "semi", Severity: 2, Message: "Missing semicolon.", Line: 3, Column: 9}, reports[0].Messages[0])
	assert.Equal(t, 1, reports[1].Messages[0].Severity)
}

func TestFromSARIF_NoResults(t *testing.T) {
	reports := FromSARIF(&sarif.Document{Version: "2.1.0", Runs: []sarif.Run{{}}})
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}
