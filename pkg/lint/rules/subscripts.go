package rules

import (
	"regexp"

	"github.com/yaklabco/beamerlint/pkg/lint"
)

// unbracedSubscriptPattern matches _ab... or _a,12 where braces are missing.
// A braced subscript starts with '{' and never matches.
var unbracedSubscriptPattern = regexp.MustCompile(`_([a-zA-Z]{2,}|[a-zA-Z],\d+)`)

// NewSubscriptRule creates the math-subscript rule.
func NewSubscriptRule() *lint.PatternRule {
	return lint.NewPatternRule(
		"BL006",
		"math-subscript",
		"Multi-character subscripts must be wrapped in braces",
		lint.Pattern{
			Expr:     unbracedSubscriptPattern,
			Scope:    lint.ScopeMatch,
			Category: lint.CategoryMathSubscript,
			Severity: lint.SeverityImportant,
			Message:  "Multi-character subscripts must be braced",
			Fix:      `_{${1}}`,
		},
	)
}
