package reporter

import (
	"io"
	"os"
	"path/filepath"

	"github.com/yaklabco/beamerlint/pkg/analysis"
	"github.com/yaklabco/beamerlint/pkg/config"
	"github.com/yaklabco/beamerlint/pkg/lint"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowContext prints the source line with a caret under each violation.
	ShowContext bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses compact/minified output where applicable.
	Compact bool

	// Width bounds the text and table output. Zero detects the terminal width.
	Width int

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat config.RuleFormat

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string

	// Registry resolves rule names and descriptions. Defaults to lint.DefaultRegistry.
	Registry *lint.Registry

	// ToolVersion is reported in SARIF output.
	ToolVersion string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: false,
		ShowSummary: true,
		Compact:     false,
		RuleFormat:  config.RuleFormatName,
		ToolVersion: "dev",
	}
}

func (o Options) registry() *lint.Registry {
	if o.Registry == nil {
		return lint.DefaultRegistry
	}
	return o.Registry
}

func (o Options) ruleName(ruleID string) string {
	if rule, ok := o.registry().Get(ruleID); ok {
		return rule.Name()
	}
	return ""
}

func (o Options) analysisOptions() analysis.Options {
	opts := analysis.DefaultOptions()
	opts.RuleFormat = o.RuleFormat
	opts.WorkingDir = o.WorkingDir
	opts.Registry = o.Registry
	return opts
}

// displayPath makes path relative to WorkingDir when possible.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil {
		return path
	}
	return rel
}
