package analysis

import (
	"github.com/yaklabco/beamerlint/pkg/config"
	"github.com/yaklabco/beamerlint/pkg/lint"
)

// SortField specifies how to sort the per-rule and per-file tables.
type SortField string

const (
	// SortByCount sorts by violation count.
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically.
	SortByAlpha SortField = "alpha"
	// SortBySeverity sorts by Critical, then Important, then total count.
	SortBySeverity SortField = "severity"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	default:
		return false
	}
}

// Options configures BuildReport.
type Options struct {
	// IncludeByFile includes the per-file table.
	IncludeByFile bool

	// IncludeByRule includes the per-rule table.
	IncludeByRule bool

	// SortBy specifies how to sort ByFile and ByRule.
	SortBy SortField

	// SortDesc sorts counts highest first.
	SortDesc bool

	// RuleFormat controls how rule identifiers appear.
	RuleFormat config.RuleFormat

	// WorkingDir is the directory paths are made relative to.
	// If empty, paths are kept as-is.
	WorkingDir string

	// Registry resolves rule names. Defaults to lint.DefaultRegistry.
	Registry *lint.Registry
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeByFile: true,
		IncludeByRule: true,
		SortBy:        SortByCount,
		SortDesc:      true,
		RuleFormat:    config.RuleFormatName,
	}
}

func (o Options) registry() *lint.Registry {
	if o.Registry == nil {
		return lint.DefaultRegistry
	}
	return o.Registry
}
