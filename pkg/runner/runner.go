package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/beamerlint/internal/logging"
	"github.com/yaklabco/beamerlint/pkg/config"
	"github.com/yaklabco/beamerlint/pkg/fix"
	"github.com/yaklabco/beamerlint/pkg/fsutil"
	"github.com/yaklabco/beamerlint/pkg/langdetect"
	"github.com/yaklabco/beamerlint/pkg/lint"
	"github.com/yaklabco/beamerlint/pkg/source"
)

var (
	// ErrOutputWithMultipleInputs is returned when an explicit output path is
	// combined with more than one input.
	ErrOutputWithMultipleInputs = errors.New("an output path requires exactly one input file")

	// ErrConcurrentModification is returned when an input changed on disk
	// between loading and an in-place write.
	ErrConcurrentModification = errors.New("file modified during processing")
)

// Runner lints and optionally fixes documents.
type Runner struct{}

// New creates a Runner.
func New() *Runner {
	return &Runner{}
}

// Run discovers the inputs and processes them concurrently.
// Outcomes are returned in input order regardless of Jobs.
//
// Per-file failures are recorded on the outcome and do not stop the run.
// Discovery failures and cancellation are returned as errors.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	if opts.OutputPath != "" && len(files) > 1 {
		return nil, fmt.Errorf("%w: got %d", ErrOutputWithMultipleInputs, len(files))
	}

	result := &Result{
		Files:  make([]FileOutcome, 0, len(files)),
		Stats:  newStats(),
		Fixing: opts.fixing(),
		DryRun: opts.DryRun,
	}
	result.Stats.FilesDiscovered = len(files)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	logger.Debug("starting run",
		logging.FieldFilesDiscovered, len(files),
		logging.FieldJobs, jobs,
		logging.FieldFix, opts.Fix,
		logging.FieldDryRun, opts.DryRun,
	)

	outcomes := make([]FileOutcome, len(files))

	var group errgroup.Group
	group.SetLimit(max(1, min(jobs, len(files))))

	for idx, path := range files {
		group.Go(func() error {
			outcomes[idx] = r.processFile(ctx, path, opts)
			return nil
		})
	}
	_ = group.Wait()

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithViolations, result.Stats.FilesWithViolations,
		logging.FieldViolations, result.Stats.Violations,
		logging.FieldFixesApplied, result.Stats.Applied,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
	)

	return result, nil
}

// processFile loads, scans and optionally fixes a single document.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}
	logger := logging.FromContext(ctx).With(logging.FieldPath, path)

	if err := ctx.Err(); err != nil {
		outcome.Error = fmt.Errorf("%s: %w", path, err)
		return outcome
	}

	doc, err := source.Load(ctx, path, opts.effectiveExtensions())
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Document = doc

	logger.Debug("loaded document",
		logging.FieldLanguage, doc.Language,
		logging.FieldDialect, doc.Dialect,
		logging.FieldLines, doc.LineCount(),
	)
	if doc.Dialect != langdetect.DialectBeamer {
		logger.Debug("no beamer document class found; checking as slide source anyway")
	}

	// Files already run in parallel; rules within a file run sequentially.
	violations, err := lint.NewScanner(opts.Rules).Scan(ctx, doc.Lines)
	if err != nil {
		outcome.Error = fmt.Errorf("%s: %w", path, err)
		return outcome
	}
	outcome.Violations = violations

	logger.Debug("scanned document", logging.FieldViolations, len(violations))

	if !opts.fixing() {
		return outcome
	}

	outcome.Fix = fix.Apply(doc.Lines, fixableViolations(violations, opts.FixableRules))
	outcome.Fixed = doc.WithLines(outcome.Fix.Lines)

	logger.Debug("computed fixes",
		logging.FieldFixesEligible, outcome.Fix.Eligible,
		logging.FieldFixesApplied, outcome.Fix.Applied,
	)

	if opts.DryRun || !opts.Fix {
		return outcome
	}

	if err := r.write(ctx, &outcome, opts); err != nil {
		outcome.Error = err
	}
	return outcome
}

// write persists the fixed document.
//
// By default the fixed document goes to a sibling file named with the
// configured suffix, and is written even when no fix applied. In-place mode
// rewrites the input only when something changed, after taking a backup.
func (r *Runner) write(ctx context.Context, outcome *FileOutcome, opts Options) error {
	doc := outcome.Document
	content := outcome.Fixed.Bytes()

	mode := fsutil.DefaultFileMode
	if doc.Info != nil {
		mode = doc.Info.Mode
	}

	target, inPlace := outputTarget(outcome.Path, opts)
	if inPlace {
		if !outcome.Fix.Changed() {
			return nil
		}

		modified, err := fsutil.CheckModified(ctx, doc.Info)
		if err != nil {
			return fmt.Errorf("%s: %w", outcome.Path, err)
		}
		if modified {
			return fmt.Errorf("%w: %s", ErrConcurrentModification, outcome.Path)
		}

		created, err := fsutil.CreateBackup(ctx, outcome.Path, backupConfig(opts))
		if err != nil {
			return fmt.Errorf("%s: %w", outcome.Path, err)
		}
		outcome.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, target, content, mode); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	outcome.OutputPath = target

	logging.FromContext(ctx).Debug("wrote fixed document",
		logging.FieldPath, outcome.Path,
		logging.FieldOutput, target,
	)
	return nil
}

// outputTarget returns where the fixed document for path goes and whether
// that is the input itself.
func outputTarget(path string, opts Options) (string, bool) {
	if opts.OutputPath != "" {
		return opts.OutputPath, opts.OutputPath == path
	}
	if opts.Config != nil && opts.Config.Output.InPlace {
		return path, true
	}

	suffix := config.DefaultSuffix
	if opts.Config != nil && opts.Config.Output.Suffix != "" {
		suffix = opts.Config.Output.Suffix
	}
	return fsutil.FixedPath(path, suffix), false
}

func backupConfig(opts Options) fsutil.BackupConfig {
	if opts.Config == nil {
		return fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}
	}
	mode := fsutil.BackupMode(opts.Config.Backups.Mode)
	if mode == "" {
		mode = fsutil.BackupModeSidecar
	}
	return fsutil.BackupConfig{
		Enabled: opts.Config.Backups.Enabled && !opts.Config.NoBackups,
		Mode:    mode,
	}
}

// fixableViolations drops violations from rules whose fixes are disabled.
func fixableViolations(violations []lint.Violation, fixable map[string]bool) []lint.Violation {
	if fixable == nil {
		return violations
	}
	out := make([]lint.Violation, 0, len(violations))
	for _, viol := range violations {
		if fixable[viol.RuleID] {
			out = append(out, viol)
		}
	}
	return out
}
