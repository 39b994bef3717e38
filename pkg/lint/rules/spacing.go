package rules

import (
	"regexp"

	"github.com/yaklabco/beamerlint/pkg/lint"
)

// NewSpacingCommandRule creates the spacing-command rule.
//
// Each vertical-space command immediately followed by \item has a named
// shortcut. The whole trimmed line is reported and rewritten.
func NewSpacingCommandRule() *lint.PatternRule {
	return lint.NewPatternRule(
		"BL002",
		"spacing-command",
		"Use \\bitem, \\mitem and \\vitem instead of a skip command followed by \\item",
		spacingPattern("bigskip", `\bitem`, lint.SeverityImportant),
		spacingPattern("medskip", `\mitem`, lint.SeverityImportant),
		spacingPattern("vfill", `\vitem`, lint.SeverityMinor),
	)
}

func spacingPattern(skip, shortcut string, severity lint.Severity) lint.Pattern {
	return lint.Pattern{
		Expr:     regexp.MustCompile(`\\` + skip + `\s*\\item`),
		Scope:    lint.ScopeLine,
		Category: lint.CategorySpacingCommand,
		Severity: severity,
		Message:  "Use " + shortcut + " shortcut",
		Fix:      shortcut,
	}
}
