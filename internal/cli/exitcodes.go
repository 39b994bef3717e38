package cli

import (
	"errors"

	"github.com/yaklabco/beamerlint/internal/configloader"
	"github.com/yaklabco/beamerlint/pkg/fsutil"
	"github.com/yaklabco/beamerlint/pkg/lint"
	"github.com/yaklabco/beamerlint/pkg/runner"
	"github.com/yaklabco/beamerlint/pkg/source"
)

// Exit codes for beamerlint.
const (
	// ExitSuccess indicates successful execution with no violations at or above the threshold.
	ExitSuccess = 0

	// ExitViolations indicates the check completed but found violations at or above the threshold.
	ExitViolations = 1

	// ExitInvalidUsage indicates invalid command-line usage or input paths.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrViolationsFound signals that the run should exit with ExitViolations.
	// The report has already been printed, so it is not logged.
	ErrViolationsFound = errors.New("violations found")

	// ErrInvalidUsage marks bad flags, arguments, or input paths.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrFilesFailed marks a run in which at least one input could not be processed.
	ErrFilesFailed = errors.New("one or more files could not be processed")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrViolationsFound):
		return ExitViolations
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidUsage),
		errors.Is(err, source.ErrUnsupportedType),
		errors.Is(err, runner.ErrOutputWithMultipleInputs):
		return ExitInvalidUsage
	case errors.Is(err, ErrFilesFailed),
		errors.Is(err, source.ErrNotFound),
		errors.Is(err, source.ErrIsDirectory),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, runner.ErrConcurrentModification):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// ExitCodeFromResult determines the exit code from a completed run.
// Violations below threshold do not fail the run.
func ExitCodeFromResult(result *runner.Result, threshold lint.Severity) int {
	if result == nil {
		return ExitSuccess
	}
	if result.Stats.FilesErrored > 0 {
		return ExitIOError
	}
	if result.HasViolationsAtLeast(threshold) {
		return ExitViolations
	}
	return ExitSuccess
}

// IsSilent reports whether err only carries an exit status and should not be logged.
func IsSilent(err error) bool {
	return errors.Is(err, ErrViolationsFound)
}
