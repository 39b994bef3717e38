// Package fix applies suggested replacements to a document and renders the
// result as a unified diff.
//
// Fixes are line-local: a fix rewrites text within one line and never adds or
// removes lines, so the fixed document always has the input's line count.
package fix

import (
	"cmp"
	"slices"
	"strings"

	"github.com/yaklabco/beamerlint/pkg/lint"
)

// SkipReason says why an eligible fix was not applied.
type SkipReason string

const (
	// SkipConflict means the matched text was no longer on the line, usually
	// because an earlier fix on the same line already rewrote it.
	SkipConflict SkipReason = "conflict"

	// SkipLineOutOfRange means the violation points outside the document.
	SkipLineOutOfRange SkipReason = "line-out-of-range"

	// SkipMultiLine means the replacement contains a line break.
	SkipMultiLine SkipReason = "multi-line-fix"
)

// Skip records an eligible fix that was dropped.
type Skip struct {
	Violation lint.Violation
	Reason    SkipReason
}

// Result is the outcome of one fixer pass.
type Result struct {
	// Lines is the fixed document. It is always a new slice.
	Lines []string

	// Eligible is the number of violations the fixer attempted.
	Eligible int

	// Applied is the number of fixes actually written into Lines.
	Applied int

	// Skipped lists eligible fixes that were dropped, in application order.
	Skipped []Skip
}

// Changed reports whether any fix was applied.
func (r *Result) Changed() bool {
	return r.Applied > 0
}

// Eligible returns the violations the fixer may apply, in their original order:
// Critical or Important with a suggested fix.
func Eligible(violations []lint.Violation) []lint.Violation {
	out := make([]lint.Violation, 0, len(violations))
	for _, viol := range violations {
		if viol.Eligible() {
			out = append(out, viol)
		}
	}
	return out
}

// Apply produces a fixed copy of lines.
//
// Eligible violations are applied bottom-up by line; violations on the same
// line keep their scan order. Each fix replaces the first literal occurrence
// of the trimmed matched text with the trimmed suggestion. When the matched
// text is gone, the fix is skipped: the first fix to touch a span wins.
//
// Neither lines nor violations is modified.
func Apply(lines []string, violations []lint.Violation) *Result {
	eligible := Eligible(violations)
	slices.SortStableFunc(eligible, func(a, b lint.Violation) int {
		return cmp.Compare(b.Line, a.Line)
	})

	res := &Result{
		Lines:    slices.Clone(lines),
		Eligible: len(eligible),
	}
	if res.Lines == nil {
		res.Lines = []string{}
	}

	for _, viol := range eligible {
		if reason, ok := res.applyOne(viol); !ok {
			res.Skipped = append(res.Skipped, Skip{Violation: viol, Reason: reason})
		}
	}

	return res
}

func (r *Result) applyOne(viol lint.Violation) (SkipReason, bool) {
	if viol.Line < 1 || viol.Line > len(r.Lines) {
		return SkipLineOutOfRange, false
	}

	replacement := strings.TrimSpace(viol.SuggestedFix)
	if strings.ContainsAny(replacement, "\r\n") {
		return SkipMultiLine, false
	}

	matched := strings.TrimSpace(viol.Matched)
	line := r.Lines[viol.Line-1]
	if matched == "" || !strings.Contains(line, matched) {
		return SkipConflict, false
	}

	r.Lines[viol.Line-1] = strings.Replace(line, matched, replacement, 1)
	r.Applied++
	return "", true
}
