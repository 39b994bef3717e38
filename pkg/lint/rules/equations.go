package rules

import (
	"regexp"

	"github.com/yaklabco/beamerlint/pkg/lint"
)

// displayMathMessage is a template; $$ expands to a literal $.
const displayMathMessage = `Use \begin{equation*}...\end{equation*} instead of $$$$`

var (
	// numberedEquationPattern only matches the unstarred opening tag;
	// \begin{equation*} has the star inside the braces.
	numberedEquationPattern = regexp.MustCompile(`\\begin\{equation\}`)

	// equationTagPattern matches both tags so the fix keeps them paired.
	equationTagPattern = regexp.MustCompile(`\\(begin|end)\{equation\}`)

	// closingEquationPattern catches closing tags whose opening tag sits on an
	// earlier line.
	closingEquationPattern = regexp.MustCompile(`\\end\{equation\}`)

	displayMathPattern = regexp.MustCompile(`\$\$`)
)

// NewEquationRule creates the equations rule.
//
// Slides use unnumbered equations. Opening and closing tags are reported on
// their own lines so a multi-line environment is rewritten as a pair. Legacy
// $$ display math is flagged without a fix: converting it needs the matching
// delimiter, which may be on another line.
func NewEquationRule() *lint.PatternRule {
	return lint.NewPatternRule(
		"BL004",
		"equations",
		"Use unnumbered equation* environments and avoid $$ display math",
		lint.Pattern{
			Expr:     numberedEquationPattern,
			Rewrite:  equationTagPattern,
			Scope:    lint.ScopeLine,
			Category: lint.CategoryEquationEnvironment,
			Severity: lint.SeverityCritical,
			Message:  "Slides should use equation* (unnumbered)",
			Fix:      `\${1}{equation*}`,
		},
		lint.Pattern{
			Expr:     closingEquationPattern,
			Exclude:  numberedEquationPattern,
			Scope:    lint.ScopeLine,
			Category: lint.CategoryEquationEnvironment,
			Severity: lint.SeverityCritical,
			Message:  "Closing tag must match equation*",
			Fix:      `\end{equation*}`,
		},
		lint.Pattern{
			Expr:     displayMathPattern,
			Scope:    lint.ScopeLine,
			Category: lint.CategoryEquationSyntax,
			Severity: lint.SeverityImportant,
			Message:  displayMathMessage,
		},
	)
}
