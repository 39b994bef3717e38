package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/beamerlint/pkg/lint"
)

// SeparatorWidth is the width of the heavy separator lines around section titles.
const SeparatorWidth = 60

const (
	heavyRule = "="
	ellipsis  = "..."
)

// SeverityStyle returns the style for a severity.
func (s *Styles) SeverityStyle(sev lint.Severity) lipgloss.Style {
	switch sev {
	case lint.SeverityCritical:
		return s.Critical
	case lint.SeverityImportant:
		return s.Important
	case lint.SeverityMinor:
		return s.Minor
	default:
		return lipgloss.NewStyle()
	}
}

// FormatSeverity returns a styled severity name.
func (s *Styles) FormatSeverity(sev lint.Severity) string {
	return s.SeverityStyle(sev).Render(sev.String())
}

// FormatSection renders a title between two heavy separator lines.
func (s *Styles) FormatSection(title string) string {
	rule := s.Separator.Render(strings.Repeat(heavyRule, SeparatorWidth))
	return rule + "\n" + s.SummaryTitle.Render(title) + "\n" + rule + "\n"
}

// FormatGroupHeader renders the heading of a severity group.
func (s *Styles) FormatGroupHeader(sev lint.Severity) string {
	return s.SeverityStyle(sev).Render(fmt.Sprintf("--- %s Violations ---", sev))
}

// FormatViolation renders one violation as a block:
//
//	[Critical] Line 3: Color Command
//	  Issue: Use \blue{} shortcut instead of \textcolor
//	  Current: \textcolor{blue}{important text}
//	  Fix: \blue{important text}
//
// A positive width truncates the Current and Fix snippets to fit.
func (s *Styles) FormatViolation(viol *lint.Violation, width int) string {
	var builder strings.Builder

	builder.WriteString("[" + s.FormatSeverity(viol.Severity) + "] ")
	builder.WriteString(s.Location.Render(fmt.Sprintf("Line %d:", viol.Line)))
	builder.WriteString(" " + s.Bold.Render(viol.Category.Title()) + "\n")

	builder.WriteString("  Issue: " + s.Message.Render(viol.Message) + "\n")
	builder.WriteString("  Current: " + s.Current.Render(Truncate(viol.Matched, width-len("  Current: "))) + "\n")
	if viol.HasFix() {
		builder.WriteString("  Fix: " + s.Fix.Render(Truncate(viol.SuggestedFix, width-len("  Fix: "))) + "\n")
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret under column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "    "

	builder.WriteString(indent + s.Current.Render(line) + "\n")

	if column > 0 && column <= len(line)+1 {
		// The caret sits under the display cell of the byte column.
		padding := indent + strings.Repeat(" ", runewidth.StringWidth(line[:column-1]))
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats the "Validating:" header for one input.
func (s *Styles) FormatFileHeader(path string, violationCount int) string {
	header := "Validating: " + s.FilePath.Render(path)
	if violationCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d violations)", violationCount))
	}
	return header
}

// Truncate shortens str to at most width display cells, ending it with "..."
// when something was cut. A width of zero or less disables truncation.
func Truncate(str string, width int) string {
	if width <= 0 || runewidth.StringWidth(str) <= width {
		return str
	}
	if width <= len(ellipsis) {
		return runewidth.Truncate(str, width, "")
	}
	return runewidth.Truncate(str, width, ellipsis)
}

// TruncateLeft shortens str from the left, keeping its tail. Used for paths.
func TruncateLeft(str string, width int) string {
	if width <= 0 || runewidth.StringWidth(str) <= width {
		return str
	}
	if width <= len(ellipsis) {
		return runewidth.TruncateLeft(str, runewidth.StringWidth(str)-width, "")
	}
	return runewidth.TruncateLeft(str, runewidth.StringWidth(str)-width+len(ellipsis), ellipsis)
}
