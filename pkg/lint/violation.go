package lint

// Category identifies the family of style problem a rule detects.
type Category string

// Categories produced by the built-in rules.
const (
	CategoryColorCommand        Category = "color-command"
	CategorySpacingCommand      Category = "spacing-command"
	CategoryTextFormatting      Category = "text-formatting"
	CategoryEquationEnvironment Category = "equation-environment"
	CategoryEquationSyntax      Category = "equation-syntax"
	CategoryTableFormatting     Category = "table-formatting"
	CategoryMathSubscript       Category = "math-subscript"
)

// Title returns the category as a heading, e.g. "Color Command".
func (c Category) Title() string {
	out := []byte(c)
	upper := true
	for idx, char := range out {
		switch {
		case char == '-':
			out[idx] = ' '
			upper = true
		case upper && char >= 'a' && char <= 'z':
			out[idx] = char - 'a' + 'A'
			upper = false
		default:
			upper = false
		}
	}
	return string(out)
}

// Violation is a single deviation from the house style.
//
// Matched must occur literally in line Line of the document the violation was
// detected in. The fixer relies on this to locate the text it rewrites.
type Violation struct {
	// Line is the 1-based line number.
	Line int

	// Column is the 1-based byte column where Matched starts.
	Column int

	// RuleID is the ID of the rule that produced this violation (e.g., "BL001").
	RuleID string

	// Category tags the rule family.
	Category Category

	// Severity is fixed per rule pattern.
	Severity Severity

	// Message explains why the text is non-compliant.
	Message string

	// Matched is the offending substring, or the trimmed line for line-wise patterns.
	Matched string

	// SuggestedFix is the replacement for Matched. Empty when no safe fix exists.
	SuggestedFix string
}

// HasFix returns true if the violation carries a suggested replacement.
func (v *Violation) HasFix() bool {
	return v.SuggestedFix != ""
}

// Eligible returns true if the fixer may apply this violation automatically.
func (v *Violation) Eligible() bool {
	return v.HasFix() && v.Severity.Eligible()
}
