package rules

import (
	"regexp"

	"github.com/yaklabco/beamerlint/pkg/lint"
)

var (
	singleRulePattern = regexp.MustCompile(`\\hline\b`)
	doubleRulePattern = regexp.MustCompile(`\\hline\s*\\hline\b`)
)

// NewBooktabsRule creates the booktabs rule.
//
// A line holding a doubled rule is reported once, as a top rule, and never as
// a single rule too.
func NewBooktabsRule() *lint.PatternRule {
	return lint.NewPatternRule(
		"BL005",
		"booktabs",
		"Use booktabs \\toprule and \\midrule instead of \\hline",
		lint.Pattern{
			Expr:     singleRulePattern,
			Exclude:  doubleRulePattern,
			Scope:    lint.ScopeLine,
			Category: lint.CategoryTableFormatting,
			Severity: lint.SeverityImportant,
			Message:  `Use \toprule, \midrule, or \bottomrule instead of \hline`,
			Fix:      `\midrule`,
		},
		lint.Pattern{
			Expr:     doubleRulePattern,
			Scope:    lint.ScopeLine,
			Category: lint.CategoryTableFormatting,
			Severity: lint.SeverityImportant,
			Message:  `Use \toprule instead of \hline\hline`,
			Fix:      `\toprule`,
		},
	)
}
