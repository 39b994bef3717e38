package lint

import (
	"regexp"
	"strings"
)

// Scope selects what text a pattern reports and rewrites.
type Scope int

const (
	// ScopeMatch reports one violation per match; Matched is the match itself.
	ScopeMatch Scope = iota

	// ScopeLine reports at most one violation per line; Matched is the trimmed
	// line and the fix is the trimmed line with every Rewrite match replaced.
	ScopeLine
)

// Pattern is a single declarative detector: what to look for, how bad it is,
// and how to rewrite it.
type Pattern struct {
	// Expr detects the construct.
	Expr *regexp.Regexp

	// Exclude, when set, suppresses the pattern on lines it matches.
	Exclude *regexp.Regexp

	// Rewrite selects the text the Fix template replaces in line scope.
	// Defaults to Expr.
	Rewrite *regexp.Regexp

	// Scope selects match-wise or line-wise reporting.
	Scope Scope

	// Category tags violations from this pattern.
	Category Category

	// Severity of violations from this pattern.
	Severity Severity

	// Message is a template expanded against the first match (${1}, ${name}).
	Message string

	// Fix is a template expanded against each match. Empty means no automatic fix.
	Fix string
}

// detectLine appends the violations this pattern finds in one line.
func (p *Pattern) detectLine(dst []Violation, ruleID string, lineNum int, line string) []Violation {
	if p.Exclude != nil && p.Exclude.MatchString(line) {
		return dst
	}

	switch p.Scope {
	case ScopeLine:
		loc := p.Expr.FindStringSubmatchIndex(line)
		if loc == nil {
			return dst
		}
		trimmed := strings.TrimSpace(line)
		viol := p.violation(ruleID, lineNum, line, loc)
		viol.Matched = trimmed
		viol.Column = strings.Index(line, trimmed) + 1
		if p.Fix != "" {
			rewrite := p.Rewrite
			if rewrite == nil {
				rewrite = p.Expr
			}
			viol.SuggestedFix = rewrite.ReplaceAllString(trimmed, p.Fix)
		}
		return append(dst, viol)

	default:
		for _, loc := range p.Expr.FindAllStringSubmatchIndex(line, -1) {
			viol := p.violation(ruleID, lineNum, line, loc)
			if p.Fix != "" {
				viol.SuggestedFix = string(p.Expr.ExpandString(nil, p.Fix, line, loc))
			}
			dst = append(dst, viol)
		}
		return dst
	}
}

func (p *Pattern) violation(ruleID string, lineNum int, line string, loc []int) Violation {
	return Violation{
		Line:     lineNum,
		Column:   loc[0] + 1,
		RuleID:   ruleID,
		Category: p.Category,
		Severity: p.Severity,
		Message:  string(p.Expr.ExpandString(nil, p.Message, line, loc)),
		Matched:  line[loc[0]:loc[1]],
	}
}

// PatternRule is a rule defined entirely by an ordered list of patterns.
type PatternRule struct {
	BaseRule

	// Patterns run in order for every line.
	Patterns []Pattern
}

// NewPatternRule creates a rule from its metadata and patterns.
func NewPatternRule(id, name, desc string, patterns ...Pattern) *PatternRule {
	return &PatternRule{
		BaseRule: NewBaseRule(id, name, desc),
		Patterns: patterns,
	}
}

// Detect runs every pattern over every line.
// Output is ordered by line, then pattern, then match position.
func (r *PatternRule) Detect(lines []string) []Violation {
	var out []Violation
	for idx, line := range lines {
		for patIdx := range r.Patterns {
			out = r.Patterns[patIdx].detectLine(out, r.ID(), idx+1, line)
		}
	}
	return out
}

// Categories returns the distinct pattern categories in declaration order.
func (r *PatternRule) Categories() []Category {
	var out []Category
	seen := make(map[Category]bool, len(r.Patterns))
	for _, p := range r.Patterns {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Severities returns the distinct pattern severities in report order.
func (r *PatternRule) Severities() []Severity {
	var out []Severity
	for _, sev := range Severities() {
		for _, p := range r.Patterns {
			if p.Severity == sev {
				out = append(out, sev)
				break
			}
		}
	}
	return out
}

// CanFix reports whether any pattern carries a fix template.
func (r *PatternRule) CanFix() bool {
	for _, p := range r.Patterns {
		if p.Fix != "" {
			return true
		}
	}
	return false
}
