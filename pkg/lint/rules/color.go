package rules

import (
	"regexp"

	"github.com/yaklabco/beamerlint/pkg/lint"
)

// textColorPattern matches \textcolor{name}{text} without nested braces in text.
var textColorPattern = regexp.MustCompile(`\\textcolor\{(\w+)\}\{([^}]+)\}`)

// NewColorCommandRule creates the color-command rule.
func NewColorCommandRule() *lint.PatternRule {
	return lint.NewPatternRule(
		"BL001",
		"color-command",
		"Use the per-color shortcut command instead of \\textcolor",
		lint.Pattern{
			Expr:     textColorPattern,
			Scope:    lint.ScopeMatch,
			Category: lint.CategoryColorCommand,
			Severity: lint.SeverityCritical,
			Message:  `Use \${1}{} shortcut instead of \textcolor`,
			Fix:      `\${1}{${2}}`,
		},
	)
}
