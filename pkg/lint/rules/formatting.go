package rules

import (
	"regexp"

	"github.com/yaklabco/beamerlint/pkg/lint"
)

// NewTextFormattingRule creates the text-formatting rule.
func NewTextFormattingRule() *lint.PatternRule {
	return lint.NewPatternRule(
		"BL003",
		"text-formatting",
		"Use the short \\bf and \\it forms instead of \\textbf and \\textit",
		formattingPattern("textbf", "bf"),
		formattingPattern("textit", "it"),
	)
}

func formattingPattern(long, short string) lint.Pattern {
	return lint.Pattern{
		Expr:     regexp.MustCompile(`\\` + long + `\{([^}]+)\}`),
		Scope:    lint.ScopeMatch,
		Category: lint.CategoryTextFormatting,
		Severity: lint.SeverityImportant,
		Message:  `Use \` + short + `{} shortcut`,
		Fix:      `\` + short + `{${1}}`,
	}
}
