package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/beamerlint/internal/ui/pretty"
	"github.com/yaklabco/beamerlint/pkg/runner"
)

// TableReporter formats results as a styled table with color-coded rows.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	termWidth := opts.Width
	if termWidth == 0 {
		termWidth = getTerminalWidth(opts.Writer)
	}

	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, colorEnabled, termWidth, opts.RuleFormat, opts.ruleName),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(r.opts.displayPath(file.Path)),
				r.styles.Failure.Render(fmt.Sprintf("error: %v", file.Error)))
		}
	}

	fmt.Fprint(r.bw, r.formatter.FormatTable(result, r.opts.displayPath))

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats, result.Fixing))
		if !result.Fixing && hasEligibleFixes(result) {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("Run with --fix to apply the fixes marked +"))
		}
	}

	return result.Stats.Violations, nil
}

// hasEligibleFixes reports whether any violation would be fixed by --fix.
func hasEligibleFixes(result *runner.Result) bool {
	for _, file := range result.Files {
		for idx := range file.Violations {
			if file.Violations[idx].Eligible() {
				return true
			}
		}
	}
	return false
}
