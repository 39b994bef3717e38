package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/beamerlint/pkg/config"
	"github.com/yaklabco/beamerlint/pkg/lint"
	"github.com/yaklabco/beamerlint/pkg/runner"
)

// Table formatting constants.
const (
	fixableSymbol      = "+"
	tablePadding       = 2
	tableColumnCount   = 5 // FILE, LINE, MESSAGE, RULE, FIX
	fixableColumnWidth = 3
	minFileWidth       = 20
	minLineWidth       = 5
	minMessageWidth    = 35
	minRuleWidth       = 8
	heavySeparator     = "="
	lightSeparator     = "-"
	defaultTermWidth   = 100
)

// TableRow represents a single row in the violation table.
type TableRow struct {
	File     string
	Line     string
	Message  string
	Rule     string
	Severity lint.Severity
	Eligible bool
}

// TableFormatter formats violations as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
	ruleFormat   config.RuleFormat
	ruleName     func(ruleID string) string
}

// NewTableFormatter creates a new table formatter.
// ruleName resolves a rule ID to its name; nil shows IDs only.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int, ruleFormat config.RuleFormat, ruleName func(string) string) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	if ruleName == nil {
		ruleName = func(string) string { return "" }
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
		ruleFormat:   ruleFormat,
		ruleName:     ruleName,
	}
}

// FormatTable formats runner results as a styled table, one block per file.
func (t *TableFormatter) FormatTable(result *runner.Result, displayPath func(string) string) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}
	if displayPath == nil {
		displayPath = func(path string) string { return path }
	}

	fileGroups := t.collectRows(result, displayPath)
	if len(fileGroups) == 0 {
		return ""
	}

	colWidths := t.calculateColumnWidths(fileGroups)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	for idx, group := range fileGroups {
		if idx > 0 {
			builder.WriteString(t.formatSeparator(colWidths, lightSeparator))
			builder.WriteString("\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, colWidths))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	builder.WriteString(t.formatLegend())
	builder.WriteString("\n")

	return builder.String()
}

// ViolationToTableRow converts a violation to a table row.
func (t *TableFormatter) ViolationToTableRow(path string, viol *lint.Violation) TableRow {
	return TableRow{
		File:     path,
		Line:     strconv.Itoa(viol.Line),
		Message:  viol.Message,
		Rule:     config.FormatRuleID(t.ruleFormat, viol.RuleID, t.ruleName(viol.RuleID)),
		Severity: viol.Severity,
		Eligible: viol.Eligible(),
	}
}

// collectRows collects violation rows grouped by file, in input order.
func (t *TableFormatter) collectRows(result *runner.Result, displayPath func(string) string) [][]TableRow {
	var groups [][]TableRow

	for _, file := range result.Files {
		if file.Error != nil || len(file.Violations) == 0 {
			continue
		}

		rows := make([]TableRow, 0, len(file.Violations))
		for idx := range file.Violations {
			rows = append(rows, t.ViolationToTableRow(displayPath(file.Path), &file.Violations[idx]))
		}
		groups = append(groups, rows)
	}

	return groups
}

type columnWidths struct {
	file    int
	line    int
	message int
	rule    int
}

// calculateColumnWidths determines column widths from content, then fits them to the terminal.
func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file:    minFileWidth,
		line:    minLineWidth,
		message: minMessageWidth,
		rule:    minRuleWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.file = max(widths.file, runewidth.StringWidth(row.File))
			widths.line = max(widths.line, runewidth.StringWidth(row.Line))
			widths.message = max(widths.message, runewidth.StringWidth(row.Message))
			widths.rule = max(widths.rule, runewidth.StringWidth(row.Rule))
		}
	}

	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		// Reduce message width first
		excess := totalWidth - t.termWidth
		widths.message = max(minMessageWidth, widths.message-excess)

		totalWidth = t.calculateTotalWidth(widths)
		if totalWidth > t.termWidth {
			excess = totalWidth - t.termWidth
			widths.file = max(minFileWidth, widths.file-excess)
		}
	}

	return widths
}

func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.file + widths.line + widths.message + widths.rule +
		(tablePadding * tableColumnCount) + fixableColumnWidth
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := " " + pad("FILE", widths.file) + "  " + pad("LINE", widths.line) + "  " +
		pad("MESSAGE", widths.message) + "  " + pad("RULE", widths.rule) + "  FIX"
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	sep := strings.Repeat(char, t.calculateTotalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single table row with severity-based styling.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	fixable := " "
	if row.Eligible {
		fixable = t.styles.TableFixable.Render(fixableSymbol)
	}

	content := " " + pad(TruncateLeft(row.File, widths.file), widths.file) +
		"  " + pad(row.Line, widths.line) +
		"  " + pad(Truncate(row.Message, widths.message), widths.message) +
		"  " + pad(Truncate(row.Rule, widths.rule), widths.rule) +
		"  "

	return t.getRowStyle(row.Severity).Render(content) + fixable
}

func (t *TableFormatter) getRowStyle(severity lint.Severity) lipgloss.Style {
	switch severity {
	case lint.SeverityCritical:
		return t.styles.TableCritical
	case lint.SeverityImportant:
		return t.styles.TableImportant
	case lint.SeverityMinor:
		return t.styles.TableMinor
	default:
		return lipgloss.NewStyle()
	}
}

// formatLegend formats the legend explaining the table symbols and colors.
func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(
			fmt.Sprintf(" Legend: %s = fix will be applied with --fix", fixableSymbol),
		)
	}

	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s  %s  %s  %s = fix will be applied with --fix",
			t.styles.TableCritical.Render(" critical "),
			t.styles.TableImportant.Render(" important "),
			t.styles.TableMinor.Render(" minor "),
			t.styles.TableFixable.Render(fixableSymbol)),
	)
}

// pad right-pads str with spaces to width display cells.
func pad(str string, width int) string {
	return runewidth.FillRight(str, width)
}
