// Package analysis turns raw violations into the views the reporters render:
// severity counts and groups for one document, and aggregate tables for a run.
package analysis

import (
	"cmp"
	"slices"

	"github.com/yaklabco/beamerlint/pkg/lint"
)

// SeverityCount is the number of violations of one severity.
type SeverityCount struct {
	Severity lint.Severity
	Count    int
}

// Group holds the violations of one severity in scanner order.
type Group struct {
	Severity   lint.Severity
	Violations []lint.Violation
}

// CategoryCount is the number of violations in one category.
type CategoryCount struct {
	Category lint.Category
	Count    int
}

// Summary is the report model for a single document.
type Summary struct {
	// Total is the number of violations.
	Total int

	// Counts lists every severity in report order, including zero counts.
	Counts []SeverityCount

	// Groups lists the non-empty severities in report order.
	Groups []Group

	// Categories lists categories by count, highest first, ties by name.
	Categories []CategoryCount
}

// Analyze groups violations by severity in the fixed order Critical,
// Important, Minor. Within a group, violations keep their input order.
// Violations with an unknown severity are dropped, so Total always equals
// the sum of Counts.
func Analyze(violations []lint.Violation) *Summary {
	summary := &Summary{}

	bySeverity := make(map[lint.Severity][]lint.Violation, 3)
	byCategory := make(map[lint.Category]int)
	for _, viol := range violations {
		if !viol.Severity.IsValid() {
			continue
		}
		summary.Total++
		bySeverity[viol.Severity] = append(bySeverity[viol.Severity], viol)
		byCategory[viol.Category]++
	}

	for _, sev := range lint.Severities() {
		group := bySeverity[sev]
		summary.Counts = append(summary.Counts, SeverityCount{Severity: sev, Count: len(group)})
		if len(group) > 0 {
			summary.Groups = append(summary.Groups, Group{Severity: sev, Violations: group})
		}
	}

	for category, count := range byCategory {
		summary.Categories = append(summary.Categories, CategoryCount{Category: category, Count: count})
	}
	slices.SortFunc(summary.Categories, func(left, right CategoryCount) int {
		if c := cmp.Compare(right.Count, left.Count); c != 0 {
			return c
		}
		return cmp.Compare(left.Category, right.Category)
	})

	return summary
}

// Empty reports whether there are no violations.
func (s *Summary) Empty() bool {
	return s.Total == 0
}

// Count returns the number of violations of the given severity.
func (s *Summary) Count(sev lint.Severity) int {
	for _, sc := range s.Counts {
		if sc.Severity == sev {
			return sc.Count
		}
	}
	return 0
}
