// Package runner lints and fixes a set of documents concurrently.
package runner

import (
	"github.com/yaklabco/beamerlint/pkg/config"
	"github.com/yaklabco/beamerlint/pkg/lint"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified files or directories, in report order.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of accepted extensions (lowercase, with leading dot).
	// Defaults to config.DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skip matching files and directories during directory walks.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs bounds how many files are processed at once. 0 means GOMAXPROCS.
	Jobs int

	// Rules are the rules to run, in catalog order.
	Rules []lint.Rule

	// FixableRules restricts which rules' fixes may be applied. Nil allows all.
	FixableRules map[string]bool

	// Fix computes the fixed document and writes it.
	Fix bool

	// DryRun computes the fixed document without writing it.
	DryRun bool

	// OutputPath overrides where the fixed document is written. Only valid
	// with a single input.
	OutputPath string

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// fixing reports whether the fixer runs at all.
func (o Options) fixing() bool {
	return o.Fix || o.DryRun
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
