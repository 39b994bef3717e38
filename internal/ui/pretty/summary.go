package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/beamerlint/pkg/lint"
	"github.com/yaklabco/beamerlint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(count int, one, many string) string {
	if count == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 violations (1 Critical, 3 Important, 1 Minor) in 2 files, 4 of 4 eligible fixes applied".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, fixing bool) string {
	var parts []string

	if stats.Violations == 0 {
		parts = append(parts, s.Success.Render("No violations found")+
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles))))
	} else {
		var severityParts []string
		for _, sev := range lint.Severities() {
			if count := stats.BySeverity[sev]; count > 0 {
				severityParts = append(severityParts, s.SeverityStyle(sev).Render(fmt.Sprintf("%d %s", count, sev)))
			}
		}
		parts = append(parts, fmt.Sprintf("%d %s (%s) in %d %s",
			stats.Violations, plural(stats.Violations, "violation", "violations"),
			strings.Join(severityParts, ", "),
			stats.FilesWithViolations, plural(stats.FilesWithViolations, wordFile, wordFiles)))
	}

	if fixing {
		applied := fmt.Sprintf("%d of %d eligible fixes applied", stats.Applied, stats.Eligible)
		if stats.Applied < stats.Eligible {
			parts = append(parts, s.Important.Render(applied))
		} else {
			parts = append(parts, s.Success.Render(applied))
		}
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s failed", stats.FilesErrored, plural(stats.FilesErrored, wordFile, wordFiles))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats, fixing bool) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:         " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWithViolations > 0 {
		builder.WriteString("  Files with violations: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithViolations)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:          " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}
	if stats.FilesWritten > 0 {
		builder.WriteString("  Files written:         " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total violations:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.Violations)) + "\n")
	for _, sev := range lint.Severities() {
		label := fmt.Sprintf("    %-20s", sev.String()+":")
		builder.WriteString(label + s.SeverityStyle(sev).Render(strconv.Itoa(stats.BySeverity[sev])) + "\n")
	}

	if fixing {
		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf("  Fixes applied:         %s of %d eligible\n",
			s.Success.Render(strconv.Itoa(stats.Applied)), stats.Eligible))
		if stats.Skipped > 0 {
			builder.WriteString("  Fixes skipped:         " +
				s.Important.Render(strconv.Itoa(stats.Skipped)) + "\n")
		}
	}

	builder.WriteString("\n")

	switch {
	case stats.BySeverity[lint.SeverityCritical] > 0:
		builder.WriteString(s.Failure.Render("Validation failed with critical violations"))
	case stats.Violations > 0:
		builder.WriteString(s.Important.Render("Validation completed with violations"))
	default:
		builder.WriteString(s.Success.Render("Presentation is style-compliant"))
	}
	builder.WriteString("\n")

	return builder.String()
}
