package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/beamerlint/internal/ui/pretty"
	"github.com/yaklabco/beamerlint/pkg/analysis"
)

// Table layout constants for summary output.
// Both tables use the same width for visual consistency.
const (
	tableWidth        = 90 // Width of table separators (same for both tables).
	ruleColWidth      = 30 // Width of the rule name column.
	fileColWidth      = 50 // Width of the file path column.
	numColWidth       = 7  // Width of count columns.
	sevColWidth       = 10 // Width of per-severity columns.
	fixableColWidth   = 8  // Width of fixable column.
	maxRuleNameLength = 28 // Maximum cells for rule name before truncation.
	maxFilePathLength = 48 // Maximum cells for file path before truncation.
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats results as aggregated per-rule and per-file tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if !report.Totals.HasViolations() {
		fmt.Fprintln(r.out, r.styles.Success.Render(NoViolationsMessage))
		r.renderFixTotals(report)
		return nil
	}

	r.renderRuleTable(report.ByRule)
	fmt.Fprintln(r.out)
	r.renderFileTable(report.ByFile)

	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)
	r.renderFixTotals(report)

	return nil
}

func (r *SummaryRenderer) severityHeaders() string {
	return r.styles.TableHeader.Render(padLeft("Critical", sevColWidth)) + " " +
		r.styles.TableHeader.Render(padLeft("Important", sevColWidth)) + " " +
		r.styles.TableHeader.Render(padLeft("Minor", sevColWidth))
}

func severityCells(totals analysis.SeverityTotals) string {
	return padLeft(strconv.Itoa(totals.Critical), sevColWidth) + " " +
		padLeft(strconv.Itoa(totals.Important), sevColWidth) + " " +
		padLeft(strconv.Itoa(totals.Minor), sevColWidth)
}

// rowStyle colors a row by its most severe violation.
func (r *SummaryRenderer) rowStyle(totals analysis.SeverityTotals) lipgloss.Style {
	switch {
	case totals.Critical > 0:
		return r.styles.TableCritical
	case totals.Important > 0:
		return r.styles.TableImportant
	default:
		return r.styles.TableMinor
	}
}

func (r *SummaryRenderer) renderRuleTable(rules []analysis.RuleAnalysis) {
	if len(rules) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Rules Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.out, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Rule", ruleColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.severityHeaders(),
		r.styles.TableHeader.Render(padLeft("Fixable", fixableColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, rule := range rules {
		name := rule.Rule
		if name == "" {
			name = rule.RuleID
		}
		name = pretty.Truncate(name, maxRuleNameLength)

		fixable := padLeft("", fixableColWidth)
		if rule.Fixable {
			fixable = r.styles.Success.Render(padLeft("yes", fixableColWidth))
		}

		fmt.Fprintf(r.out, "%s %s %s %s\n",
			r.rowStyle(rule.SeverityTotals).Render(padRight(name, ruleColWidth)),
			padLeft(strconv.Itoa(rule.Violations), numColWidth),
			severityCells(rule.SeverityTotals),
			fixable,
		)
	}
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.out, "%s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.severityHeaders(),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, file := range files {
		path := pretty.TruncateLeft(file.Path, maxFilePathLength)

		fmt.Fprintf(r.out, "%s %s %s\n",
			r.rowStyle(file.SeverityTotals).Render(padRight(path, fileColWidth)),
			padLeft(strconv.Itoa(file.Violations), numColWidth),
			severityCells(file.SeverityTotals),
		)
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	violationWord := "violations"
	if totals.Violations == 1 {
		violationWord = "violation"
	}

	var severityParts []string
	if totals.Critical > 0 {
		severityParts = append(severityParts, r.styles.Critical.Render(fmt.Sprintf("%d Critical", totals.Critical)))
	}
	if totals.Important > 0 {
		severityParts = append(severityParts, r.styles.Important.Render(fmt.Sprintf("%d Important", totals.Important)))
	}
	if totals.Minor > 0 {
		severityParts = append(severityParts, r.styles.Minor.Render(fmt.Sprintf("%d Minor", totals.Minor)))
	}

	fileWord := "files"
	if totals.FilesWithViolations == 1 {
		fileWord = "file"
	}

	fmt.Fprintf(r.out, "%s%d %s (%s) in %d %s\n",
		r.styles.Bold.Render("Total: "),
		totals.Violations, violationWord, strings.Join(severityParts, ", "),
		totals.FilesWithViolations, fileWord)
}

func (r *SummaryRenderer) renderFixTotals(report *analysis.Report) {
	if !report.Fixing {
		return
	}
	totals := report.Totals
	fmt.Fprintf(r.out, "%sApplied %d of %d eligible fixes",
		r.styles.Bold.Render("Fixes: "), totals.Applied, totals.Eligible)
	if totals.Skipped > 0 {
		fmt.Fprintf(r.out, ", %d skipped", totals.Skipped)
	}
	fmt.Fprintln(r.out)
}
