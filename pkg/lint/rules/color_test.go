package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/beamerlint/pkg/lint"
)

func TestColorCommandRule(t *testing.T) {
	runRuleCases(t, NewColorCommandRule(), []ruleCase{
		{
			name:  "textcolor in prose",
			lines: []string{`Use \textcolor{blue}{important text} here.`},
			want: []wantViolation{{
				line: 1, category: lint.CategoryColorCommand, severity: lint.SeverityCritical,
				matched: `\textcolor{blue}{important text}`, fix: `\blue{important text}`,
			}},
		},
		{
			name:  "two colors on one line",
			lines: []string{"intro", `\textcolor{red}{a} and \textcolor{green}{b}`},
			want: []wantViolation{
				{
					line: 2, category: lint.CategoryColorCommand, severity: lint.SeverityCritical,
					matched: `\textcolor{red}{a}`, fix: `\red{a}`,
				},
				{
					line: 2, category: lint.CategoryColorCommand, severity: lint.SeverityCritical,
					matched: `\textcolor{green}{b}`, fix: `\green{b}`,
				},
			},
		},
		{
			name:  "shortcut already used",
			lines: []string{`\blue{fine}`},
		},
		{
			name:  "empty text is not matched",
			lines: []string{`\textcolor{blue}{}`},
		},
		{
			name:  "color split across lines is not seen",
			lines: []string{`\textcolor{blue}{start`, `end}`},
		},
	})
}

func TestColorCommandRule_Message(t *testing.T) {
	got := NewColorCommandRule().Detect([]string{`\textcolor{orange}{x}`})
	assert.Len(t, got, 1)
	assert.Equal(t, `Use \orange{} shortcut instead of \textcolor`, got[0].Message)
	assert.Equal(t, 1, got[0].Column)
}

func TestColorCommandRule_Metadata(t *testing.T) {
	rule := NewColorCommandRule()

	assert.Equal(t, "BL001", rule.ID())
	assert.Equal(t, "color-command", rule.Name())
	assert.True(t, rule.CanFix())
	assert.True(t, rule.DefaultEnabled())
	assert.Equal(t, []lint.Severity{lint.SeverityCritical}, rule.Severities())
}
