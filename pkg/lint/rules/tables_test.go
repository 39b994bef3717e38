package rules

import (
	"testing"

	"github.com/yaklabco/beamerlint/pkg/lint"
)

func TestBooktabsRule(t *testing.T) {
	runRuleCases(t, NewBooktabsRule(), []ruleCase{
		{
			name:  "single rule",
			lines: []string{`a & b \\`, `\hline`},
			want: []wantViolation{{
				line: 2, category: lint.CategoryTableFormatting, severity: lint.SeverityImportant,
				matched: `\hline`, fix: `\midrule`,
			}},
		},
		{
			name:  "doubled rule is reported once",
			lines: []string{`\hline\hline`},
			want: []wantViolation{{
				line: 1, category: lint.CategoryTableFormatting, severity: lint.SeverityImportant,
				matched: `\hline\hline`, fix: `\toprule`,
			}},
		},
		{
			name:  "doubled rule with space",
			lines: []string{`\hline \hline`},
			want: []wantViolation{{
				line: 1, category: lint.CategoryTableFormatting, severity: lint.SeverityImportant,
				matched: `\hline \hline`, fix: `\toprule`,
			}},
		},
		{
			name:  "rule after row end",
			lines: []string{`x & y \\ \hline`},
			want: []wantViolation{{
				line: 1, category: lint.CategoryTableFormatting, severity: lint.SeverityImportant,
				matched: `x & y \\ \hline`, fix: `x & y \\ \midrule`,
			}},
		},
		{
			name:  "booktabs already used",
			lines: []string{`\toprule`, `\midrule`, `\bottomrule`},
		},
	})
}
