package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/beamerlint/internal/ui/pretty"
	"github.com/yaklabco/beamerlint/pkg/analysis"
	"github.com/yaklabco/beamerlint/pkg/runner"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TextReporter formats results as styled terminal output, one section per file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	width  int
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	// Redirected reports keep every snippet whole.
	width := opts.Width
	if width == 0 && pretty.IsTerminal(opts.Writer) {
		width = getTerminalWidth(opts.Writer)
	}
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		width:  width,
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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

	var total int
	for idx := range result.Files {
		if idx > 0 {
			fmt.Fprintln(r.bw)
		}
		total += r.reportFile(&result.Files[idx], result)
	}

	if r.opts.ShowSummary && len(result.Files) > 1 {
		fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats, result.Fixing))
	}

	return total, nil
}

// reportFile writes the validation and fix sections for one input.
func (r *TextReporter) reportFile(file *runner.FileOutcome, result *runner.Result) int {
	path := r.opts.displayPath(file.Path)

	fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Violations)))
	if file.Error != nil {
		fmt.Fprintln(r.bw, r.styles.Failure.Render(fmt.Sprintf("Error: %v", file.Error)))
		return 0
	}

	fmt.Fprintln(r.bw)
	fmt.Fprint(r.bw, r.styles.FormatSection("VALIDATION REPORT"))
	fmt.Fprintln(r.bw)

	var lines []string
	if r.opts.ShowContext && file.Document != nil {
		lines = file.Document.Lines
	}
	writeViolationReport(r.bw, r.styles, analysis.Analyze(file.Violations), lines, r.width)

	if result.Fixing && file.Fix != nil {
		r.reportFixes(file, result.DryRun)
	}

	return len(file.Violations)
}

// reportFixes writes the fix section: the applied count against the eligible
// count, every skipped fix with its reason, and where the result went.
func (r *TextReporter) reportFixes(file *runner.FileOutcome, dryRun bool) {
	res := file.Fix

	fmt.Fprintln(r.bw)
	fmt.Fprint(r.bw, r.styles.FormatSection("APPLYING FIXES"))
	fmt.Fprintln(r.bw)

	applied := fmt.Sprintf("Applied %d of %d eligible fixes", res.Applied, res.Eligible)
	if res.Applied < res.Eligible {
		fmt.Fprintln(r.bw, r.styles.Important.Render(applied))
	} else {
		fmt.Fprintln(r.bw, r.styles.Success.Render(applied))
	}

	for _, skip := range res.Skipped {
		fmt.Fprintf(r.bw, "  %s Line %d (%s): %s\n",
			r.styles.Dim.Render("skipped"),
			skip.Violation.Line,
			skip.Reason,
			r.styles.Current.Render(pretty.Truncate(skip.Violation.Matched, r.width/2)),
		)
	}

	switch {
	case file.OutputPath != "":
		fmt.Fprintf(r.bw, "Fixed file saved to: %s\n", r.styles.FilePath.Render(r.opts.displayPath(file.OutputPath)))
		if file.BackupCreated {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("Backup of the original kept beside it"))
		}
	case dryRun:
		fmt.Fprintln(r.bw, r.styles.Dim.Render("Dry run: nothing written"))
	default:
		fmt.Fprintln(r.bw, r.styles.Dim.Render("No changes: input left untouched"))
	}
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
