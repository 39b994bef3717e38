package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/beamerlint/internal/ui/pretty"
	"github.com/yaklabco/beamerlint/pkg/config"
	"github.com/yaklabco/beamerlint/pkg/lint"
	"github.com/yaklabco/beamerlint/pkg/runner"
)

func tableResult() *runner.Result {
	viol := colorViolation()
	minor := lint.Violation{
		Line: 8, RuleID: "BL002", Category: lint.CategorySpacingCommand,
		Severity: lint.SeverityMinor, Message: "Use \\vitem", Matched: "\\vfill\\item x", SuggestedFix: "\\vitem x",
	}
	return &runner.Result{Files: []runner.FileOutcome{
		{Path: "a.tex", Violations: []lint.Violation{viol}},
		{Path: "clean.tex"},
		{Path: "b.tex", Violations: []lint.Violation{minor}},
	}}
}

func TestFormatTable_Empty(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 100, config.RuleFormatID, nil)

	assert.Empty(t, formatter.FormatTable(nil, nil))
	assert.Empty(t, formatter.FormatTable(&runner.Result{Files: []runner.FileOutcome{{Path: "clean.tex"}}}, nil))
}

func TestFormatTable_Rows(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 120, config.RuleFormatID, nil)

	out := formatter.FormatTable(tableResult(), nil)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7) // header, sep, row, light sep, row, sep, legend
	assert.Contains(t, lines[0], "FILE")
	assert.Contains(t, lines[0], "MESSAGE")
	assert.Contains(t, lines[2], "a.tex")
	assert.Contains(t, lines[2], "BL001")
	assert.True(t, strings.HasSuffix(lines[2], "+"), "eligible fixes are marked")
	assert.True(t, strings.HasPrefix(lines[3], "-"))
	assert.Contains(t, lines[4], "b.tex")
	assert.False(t, strings.HasSuffix(lines[4], "+"), "minor fixes are never applied")
	assert.Contains(t, lines[6], "Legend")
	assert.NotContains(t, out, "clean.tex")
}

func TestFormatTable_RuleNames(t *testing.T) {
	names := map[string]string{"BL001": "color-command", "BL002": "spacing-command"}
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 120, config.RuleFormatCombined,
		func(id string) string { return names[id] })

	out := formatter.FormatTable(tableResult(), func(path string) string { return "deck/" + path })

	assert.Contains(t, out, "BL001/color-command")
	assert.Contains(t, out, "deck/a.tex")
}

func TestFormatTable_FitsTerminal(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 90, config.RuleFormatID, nil)
	result := tableResult()
	result.Files[0].Violations[0].Message = strings.Repeat("long message ", 20)

	out := formatter.FormatTable(result, nil)

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if strings.Contains(line, "Legend") {
			continue
		}
		assert.LessOrEqual(t, len(line), 90, line)
	}
}
