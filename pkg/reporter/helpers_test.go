package reporter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/beamerlint/pkg/fix"
	"github.com/yaklabco/beamerlint/pkg/lint"
	_ "github.com/yaklabco/beamerlint/pkg/lint/rules"
	"github.com/yaklabco/beamerlint/pkg/reporter"
	"github.com/yaklabco/beamerlint/pkg/runner"
	"github.com/yaklabco/beamerlint/pkg/source"
)

// mixedSlide holds one violation of each severity; the $$ line has no fix.
var mixedSlide = []string{
	`Use \textcolor{blue}{important text} here.`,
	`\vfill\item Last`,
	`$$ x = y $$`,
}

var cleanSlide = []string{`\begin{frame}`, `\blue{ok}`, `\end{frame}`}

func scan(t *testing.T, lines []string) []lint.Violation {
	t.Helper()
	violations, err := lint.NewScanner(lint.DefaultRegistry.Rules()).Scan(context.Background(), lines)
	require.NoError(t, err)
	return violations
}

// outcome builds a file outcome the way the runner does, without touching disk.
func outcome(t *testing.T, path string, lines []string, fixing bool) runner.FileOutcome {
	t.Helper()
	doc := source.FromLines(lines)
	doc.Path = path
	out := runner.FileOutcome{
		Path:       path,
		Document:   doc,
		Violations: scan(t, lines),
	}
	if fixing {
		out.Fix = fix.Apply(doc.Lines, out.Violations)
		out.Fixed = doc.WithLines(out.Fix.Lines)
	}
	return out
}

// result wraps outcomes with stats accumulated as the runner would.
func result(fixing bool, files ...runner.FileOutcome) *runner.Result {
	res := &runner.Result{
		Files:  files,
		Fixing: fixing,
		Stats:  runner.Stats{BySeverity: make(map[lint.Severity]int)},
	}
	for _, file := range files {
		if file.Error != nil {
			res.Stats.FilesErrored++
			continue
		}
		res.Stats.FilesProcessed++
		res.Stats.Violations += len(file.Violations)
		if len(file.Violations) > 0 {
			res.Stats.FilesWithViolations++
		}
		for _, viol := range file.Violations {
			res.Stats.BySeverity[viol.Severity]++
		}
		if file.Fix != nil {
			res.Stats.Eligible += file.Fix.Eligible
			res.Stats.Applied += file.Fix.Applied
			res.Stats.Skipped += len(file.Fix.Skipped)
		}
		if file.OutputPath != "" {
			res.Stats.FilesWritten++
		}
	}
	return res
}

func failed(path string) runner.FileOutcome {
	return runner.FileOutcome{Path: path, Error: errors.New(path + ": file not found")}
}

func plainOptions(format reporter.Format) reporter.Options {
	opts := reporter.DefaultOptions()
	opts.Format = format
	opts.Color = "never"
	opts.Width = 200
	return opts
}
