package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/beamerlint/pkg/lint"
)

// wantViolation is the subset of a violation a rule test checks.
type wantViolation struct {
	line     int
	category lint.Category
	severity lint.Severity
	matched  string
	fix      string
}

type ruleCase struct {
	name  string
	lines []string
	want  []wantViolation
}

func runRuleCases(t *testing.T, rule lint.Rule, tests []ruleCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.Detect(tt.lines)
			require.Len(t, got, len(tt.want))

			for idx, want := range tt.want {
				viol := got[idx]
				assert.Equal(t, rule.ID(), viol.RuleID)
				assert.Equal(t, want.line, viol.Line, "line")
				assert.Equal(t, want.category, viol.Category, "category")
				assert.Equal(t, want.severity, viol.Severity, "severity")
				assert.Equal(t, want.matched, viol.Matched, "matched")
				assert.Equal(t, want.fix, viol.SuggestedFix, "fix")
				assert.NotEmpty(t, viol.Message)
				assert.Contains(t, tt.lines[viol.Line-1], viol.Matched,
					"matched text must occur in the referenced line")
			}
		})
	}
}
