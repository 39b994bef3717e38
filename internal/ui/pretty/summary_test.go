package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/beamerlint/internal/ui/pretty"
	"github.com/yaklabco/beamerlint/pkg/lint"
	"github.com/yaklabco/beamerlint/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:      10,
		FilesWithViolations: 3,
		Violations:          15,
		BySeverity:          map[lint.Severity]int{lint.SeverityImportant: 5, lint.SeverityMinor: 10},
	}

	result := styles.FormatSummary(stats, false)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files checked:")
	assert.Contains(t, result, "Files with violations:")
	assert.Contains(t, result, "Total violations:")
	assert.Contains(t, result, "Critical:")
	assert.Contains(t, result, "Important:")
	assert.Contains(t, result, "Minor:")
	assert.Contains(t, result, "Validation completed with violations")
	assert.NotContains(t, result, "Fixes applied:")
}

func TestFormatSummary_NoViolations(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{FilesProcessed: 5, BySeverity: map[lint.Severity]int{}}

	result := styles.FormatSummary(stats, false)

	assert.Contains(t, result, "Presentation is style-compliant")
	assert.NotContains(t, result, "Files with violations:")
}

func TestFormatSummary_Critical(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed: 1,
		Violations:     1,
		BySeverity:     map[lint.Severity]int{lint.SeverityCritical: 1},
	}

	assert.Contains(t, styles.FormatSummary(stats, false), "Validation failed with critical violations")
}

func TestFormatSummary_Fixing(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed: 1,
		FilesWritten:   1,
		Violations:     4,
		BySeverity:     map[lint.Severity]int{lint.SeverityImportant: 4},
		Eligible:       4,
		Applied:        3,
		Skipped:        1,
	}

	result := styles.FormatSummary(stats, true)

	assert.Contains(t, result, "Files written:")
	assert.Contains(t, result, "Fixes applied:         3 of 4 eligible")
	assert.Contains(t, result, "Fixes skipped:         1")
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name   string
		stats  runner.Stats
		fixing bool
		want   string
	}{
		{
			name:  "clean",
			stats: runner.Stats{FilesProcessed: 2, BySeverity: map[lint.Severity]int{}},
			want:  "No violations found (2 files checked)\n",
		},
		{
			name:  "single file",
			stats: runner.Stats{FilesProcessed: 1, BySeverity: map[lint.Severity]int{}},
			want:  "No violations found (1 file checked)\n",
		},
		{
			name: "violations",
			stats: runner.Stats{
				FilesProcessed:      2,
				FilesWithViolations: 1,
				Violations:          3,
				BySeverity:          map[lint.Severity]int{lint.SeverityCritical: 1, lint.SeverityMinor: 2},
			},
			want: "3 violations (1 Critical, 2 Minor) in 1 file\n",
		},
		{
			name: "fixing",
			stats: runner.Stats{
				FilesProcessed:      1,
				FilesWithViolations: 1,
				Violations:          1,
				BySeverity:          map[lint.Severity]int{lint.SeverityImportant: 1},
				Eligible:            1,
				Applied:             1,
			},
			fixing: true,
			want:   "1 violation (1 Important) in 1 file, 1 of 1 eligible fixes applied\n",
		},
		{
			name:  "errors",
			stats: runner.Stats{FilesErrored: 1, BySeverity: map[lint.Severity]int{}},
			want:  "No violations found (0 files checked), 1 file failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats, tt.fixing))
		})
	}
}
