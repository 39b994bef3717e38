package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/beamerlint/pkg/lint"
)

func TestEquationRule(t *testing.T) {
	runRuleCases(t, NewEquationRule(), []ruleCase{
		{
			name:  "numbered equation on one line",
			lines: []string{`\begin{equation} E = mc^2 \end{equation}`},
			want: []wantViolation{{
				line: 1, category: lint.CategoryEquationEnvironment, severity: lint.SeverityCritical,
				matched: `\begin{equation} E = mc^2 \end{equation}`,
				fix:     `\begin{equation*} E = mc^2 \end{equation*}`,
			}},
		},
		{
			name:  "opening tag alone at end of line",
			lines: []string{`  \begin{equation}`, `a = b`, `\end{equation}`},
			want: []wantViolation{
				{
					line: 1, category: lint.CategoryEquationEnvironment, severity: lint.SeverityCritical,
					matched: `\begin{equation}`, fix: `\begin{equation*}`,
				},
				{
					line: 3, category: lint.CategoryEquationEnvironment, severity: lint.SeverityCritical,
					matched: `\end{equation}`, fix: `\end{equation*}`,
				},
			},
		},
		{
			name:  "closing tag with trailing text",
			lines: []string{`  x = y \end{equation} % done`},
			want: []wantViolation{{
				line: 1, category: lint.CategoryEquationEnvironment, severity: lint.SeverityCritical,
				matched: `x = y \end{equation} % done`, fix: `x = y \end{equation*} % done`,
			}},
		},
		{
			name:  "starred closing tag is fine",
			lines: []string{`\end{equation*}`},
		},
		{
			name:  "starred equation is fine",
			lines: []string{`\begin{equation*} x \end{equation*}`},
		},
		{
			name:  "display math has no fix",
			lines: []string{`$$ x = y $$`},
			want: []wantViolation{{
				line: 1, category: lint.CategoryEquationSyntax, severity: lint.SeverityImportant,
				matched: `$$ x = y $$`,
			}},
		},
		{
			name:  "inline math is fine",
			lines: []string{`$x = y$`},
		},
	})
}

func TestEquationRule_DisplayMathMessage(t *testing.T) {
	got := NewEquationRule().Detect([]string{`$$a$$`})
	require.Len(t, got, 1)
	assert.Equal(t, `Use \begin{equation*}...\end{equation*} instead of $$`, got[0].Message)
	assert.False(t, got[0].HasFix())
}

func TestEquationRule_Categories(t *testing.T) {
	assert.Equal(t,
		[]lint.Category{lint.CategoryEquationEnvironment, lint.CategoryEquationSyntax},
		NewEquationRule().Categories())
}
