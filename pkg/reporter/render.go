package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/beamerlint/internal/ui/pretty"
	"github.com/yaklabco/beamerlint/pkg/analysis"
	"github.com/yaklabco/beamerlint/pkg/lint"
)

// NoViolationsMessage is printed when a document is style-compliant.
const NoViolationsMessage = "No violations found. Presentation is style-compliant."

// RenderText returns the plain-text report for one document's violations.
//
// The report lists the total, the count for every severity, then each
// non-empty severity group in the order Critical, Important, Minor. Within a
// group violations keep their scanner order.
func RenderText(violations []lint.Violation) string {
	var builder strings.Builder
	writeViolationReport(&builder, pretty.NewStyles(false), analysis.Analyze(violations), nil, 0)
	return builder.String()
}

// writeViolationReport writes the severity counts and grouped violation blocks.
// When lines is non-nil each block is followed by the source line and a caret.
func writeViolationReport(out io.Writer, styles *pretty.Styles, summary *analysis.Summary, lines []string, width int) {
	if summary.Empty() {
		fmt.Fprintln(out, styles.Success.Render(NoViolationsMessage))
		return
	}

	fmt.Fprintf(out, "Total violations: %s\n", styles.Bold.Render(fmt.Sprint(summary.Total)))
	for _, sc := range summary.Counts {
		fmt.Fprintf(out, "  %s: %d\n", styles.FormatSeverity(sc.Severity), sc.Count)
	}

	for _, group := range summary.Groups {
		fmt.Fprintln(out)
		fmt.Fprintln(out, styles.FormatGroupHeader(group.Severity))
		for idx := range group.Violations {
			viol := &group.Violations[idx]
			fmt.Fprintln(out)
			fmt.Fprint(out, styles.FormatViolation(viol, width))
			if lines != nil && viol.Line >= 1 && viol.Line <= len(lines) {
				fmt.Fprint(out, styles.FormatSourceContext(lines[viol.Line-1], viol.Column))
			}
		}
	}
}
