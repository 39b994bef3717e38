// Package lint provides the violation model, declarative rules, the rule
// registry, and the scanner for beamerlint.
package lint

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "BL001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// Categories returns the categories this rule may emit.
	Categories() []Category

	// Severities returns the distinct severities this rule may emit, in report order.
	Severities() []Severity

	// CanFix returns whether the rule proposes replacements for any of its patterns.
	CanFix() bool

	// Detect scans the lines and returns every violation found.
	//
	// Rules must:
	//   - Be pure: no state survives between calls and lines are never modified.
	//   - Never panic on arbitrary text.
	//   - Report violations in line order, then match order within the line.
	Detect(lines []string) []Violation
}

// BaseRule provides the metadata half of the Rule interface.
// Embed it in rule implementations and supply Detect.
type BaseRule struct {
	id   string
	name string
	desc string
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string) BaseRule {
	return BaseRule{id: id, name: name, desc: desc}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}
