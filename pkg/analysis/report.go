package analysis

import "time"

// Report contains pre-computed views of a run.
// Computed once by BuildReport, used by the structured renderers.
type Report struct {
	// Files holds one entry per input, in input order.
	Files []FileReport `json:"files"`

	// ByFile summarizes files with violations.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByRule summarizes violations per rule.
	ByRule []RuleAnalysis `json:"byRule,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Fixing is set when fixes were computed.
	Fixing bool `json:"fixing"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// FileReport is everything known about one input.
type FileReport struct {
	Path       string           `json:"path"`
	Language   string           `json:"language,omitempty"`
	Dialect    string           `json:"dialect,omitempty"`
	Lines      int              `json:"lines"`
	Violations []ViolationEntry `json:"violations"`
	Counts     SeverityTotals   `json:"counts"`
	Fix        *FixReport       `json:"fix,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// ViolationEntry is a single violation in a report.
type ViolationEntry struct {
	RuleID       string `json:"ruleId"`
	Rule         string `json:"rule"`
	Category     string `json:"category"`
	Severity     string `json:"severity"`
	Line         int    `json:"line"`
	Column       int    `json:"column"`
	Message      string `json:"message"`
	Matched      string `json:"matched"`
	SuggestedFix string `json:"suggestedFix,omitempty"`
	Eligible     bool   `json:"eligible"`
}

// FixReport describes the fixer outcome for one input.
type FixReport struct {
	Eligible   int         `json:"eligible"`
	Applied    int         `json:"applied"`
	Skipped    []SkipEntry `json:"skipped,omitempty"`
	OutputPath string      `json:"outputPath,omitempty"`
}

// SkipEntry is an eligible fix that was not applied.
type SkipEntry struct {
	RuleID  string `json:"ruleId"`
	Line    int    `json:"line"`
	Matched string `json:"matched"`
	Reason  string `json:"reason"`
}

// SeverityTotals counts violations per severity.
type SeverityTotals struct {
	Critical  int `json:"critical"`
	Important int `json:"important"`
	Minor     int `json:"minor"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	SeverityTotals

	Files               int `json:"filesChecked"`
	FilesWithViolations int `json:"filesWithViolations"`
	FilesErrored        int `json:"filesErrored"`
	Violations          int `json:"totalViolations"`
	Fixable             int `json:"fixable"`
	Eligible            int `json:"fixesEligible"`
	Applied             int `json:"fixesApplied"`
	Skipped             int `json:"fixesSkipped"`
}

// HasViolations returns true if there are any violations.
func (t Totals) HasViolations() bool {
	return t.Violations > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	SeverityTotals

	Path       string   `json:"path"`
	Violations int      `json:"violations"`
	Rules      []string `json:"rules,omitempty"`
}

// RuleAnalysis contains aggregated data for a single rule.
type RuleAnalysis struct {
	SeverityTotals

	RuleID     string   `json:"ruleId"`
	Rule       string   `json:"rule"`
	Violations int      `json:"violations"`
	Fixable    bool     `json:"fixable"`
	Files      []string `json:"files,omitempty"`
}
