package runner

import (
	"github.com/yaklabco/beamerlint/pkg/fix"
	"github.com/yaklabco/beamerlint/pkg/lint"
	"github.com/yaklabco/beamerlint/pkg/source"
)

// FileOutcome is what happened to a single input.
type FileOutcome struct {
	// Path is the input path.
	Path string

	// Document is the loaded document. Nil if loading failed.
	Document *source.Document

	// Violations are the scan results in scanner order.
	Violations []lint.Violation

	// Fix is the fixer result. Nil unless fixing was requested.
	Fix *fix.Result

	// Fixed is the fixed document. Nil unless fixing was requested.
	Fixed *source.Document

	// OutputPath is where the fixed document was written. Empty if nothing was written.
	OutputPath string

	// BackupCreated is set when an in-place write took a backup first.
	BackupCreated bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of inputs found.
	FilesDiscovered int

	// FilesProcessed is the number of inputs scanned without error.
	FilesProcessed int

	// FilesErrored is the number of inputs that failed.
	FilesErrored int

	// FilesWithViolations is the number of inputs with at least one violation.
	FilesWithViolations int

	// FilesWritten is the number of fixed documents written.
	FilesWritten int

	// Violations is the total across all inputs.
	Violations int

	// BySeverity counts violations per severity.
	BySeverity map[lint.Severity]int

	// Eligible is the number of fixes attempted.
	Eligible int

	// Applied is the number of fixes written into fixed documents.
	Applied int

	// Skipped is the number of eligible fixes dropped.
	Skipped int
}

// Result is the overall run result.
type Result struct {
	// Files holds one outcome per input, in input order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Fixing records whether the fixer ran.
	Fixing bool

	// DryRun records that fixed documents were computed but not written.
	DryRun bool
}

// HasViolations reports whether any violation was found.
func (r *Result) HasViolations() bool {
	return r != nil && r.Stats.Violations > 0
}

// HasViolationsAtLeast reports whether any violation is at least as severe as threshold.
func (r *Result) HasViolationsAtLeast(threshold lint.Severity) bool {
	if r == nil {
		return false
	}
	for sev, count := range r.Stats.BySeverity {
		if count > 0 && sev.AtLeast(threshold) {
			return true
		}
	}
	return false
}

// Errors returns the per-file errors in input order.
func (r *Result) Errors() []error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, file := range r.Files {
		if file.Error != nil {
			errs = append(errs, file.Error)
		}
	}
	return errs
}

func newStats() Stats {
	return Stats{BySeverity: make(map[lint.Severity]int)}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.Violations += len(outcome.Violations)
	if len(outcome.Violations) > 0 {
		r.Stats.FilesWithViolations++
	}
	for _, viol := range outcome.Violations {
		r.Stats.BySeverity[viol.Severity]++
	}

	if outcome.Fix != nil {
		r.Stats.Eligible += outcome.Fix.Eligible
		r.Stats.Applied += outcome.Fix.Applied
		r.Stats.Skipped += len(outcome.Fix.Skipped)
	}
	if outcome.OutputPath != "" {
		r.Stats.FilesWritten++
	}
}
