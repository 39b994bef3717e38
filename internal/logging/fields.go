package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Run option fields.
	FieldFix    = "fix"
	FieldDryRun = "dry_run"
	FieldJobs   = "jobs"
	FieldFailOn = "fail_on"

	// Document fields.
	FieldLanguage = "language"
	FieldDialect  = "dialect"
	FieldLines    = "lines"

	// Statistics fields.
	FieldFilesDiscovered     = "files_discovered"
	FieldFilesProcessed      = "files_processed"
	FieldFilesWithViolations = "files_with_violations"
	FieldFilesWritten        = "files_written"
	FieldViolations          = "violations"
	FieldFixesEligible       = "fixes_eligible"
	FieldFixesApplied        = "fixes_applied"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldSeverity    = "severity"
	FieldFixable     = "fixable"
	FieldDescription = "description"
)
