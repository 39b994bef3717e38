package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/beamerlint/internal/configloader"
	"github.com/yaklabco/beamerlint/internal/logging"
	"github.com/yaklabco/beamerlint/pkg/config"
	"github.com/yaklabco/beamerlint/pkg/lint"
	"github.com/yaklabco/beamerlint/pkg/reporter"
	"github.com/yaklabco/beamerlint/pkg/runner"
)

type checkFlags struct {
	format      string
	output      string
	inPlace     bool
	suffix      string
	failOn      string
	ruleFormat  string
	ignore      []string
	enable      []string
	disable     []string
	showContext bool
	noSummary   bool
	compact     bool
}

func newCheckCommand(info BuildInfo) *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "check [paths...]",
		Aliases: []string{"lint"},
		Short:   "Check Beamer sources against the slide style conventions",
		Long:    checkLongDescription + envHelp(),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags, info)
		},
	}

	addCheckFlags(cmd, &cfg, flags)

	return cmd
}

const checkLongDescription = `Check Beamer/LaTeX slide sources for style violations.

Every violation is reported with its severity (Critical, Important, Minor),
the offending text, and the suggested replacement. With --fix, Critical and
Important violations that carry a fix are rewritten and the result is saved
beside the input as <name>_fixed.tex. Minor violations are reported only.

By default, checks all .tex files under the current directory.

Examples:
  beamerlint check talk.tex                  # Report violations
  beamerlint check talk.tex --fix            # Write talk_fixed.tex
  beamerlint check talk.tex --fix -o out.tex # Write the fixed file to out.tex
  beamerlint check slides/ --fix --in-place  # Rewrite inputs, keeping backups
  beamerlint check talk.tex --dry-run        # Show the fixes as a diff
  beamerlint check --format json             # Machine-readable report
  beamerlint check --fail-on critical        # Only Critical violations fail the run`

// envHelp lists the supported environment variables for the long help.
func envHelp() string {
	vars := configloader.ListEnvVars()
	names := slices.Sorted(maps.Keys(vars))

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	var builder strings.Builder
	builder.WriteString("\n\nEnvironment:\n")
	for _, name := range names {
		fmt.Fprintf(&builder, "  %-*s  %s\n", width, name, vars[name])
	}
	return strings.TrimSuffix(builder.String(), "\n")
}

func runCheck(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *checkFlags, info BuildInfo) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	if err := applyCheckFlags(cmd, cliCfg, flags); err != nil {
		return err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	cfg := loadResult.Config
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	threshold, err := lint.ParseSeverity(cfg.FailOn)
	if err != nil {
		return fmt.Errorf("%w: %w", configloader.ErrInvalidConfig, err)
	}

	format := cfg.Format
	if format == "" {
		format = config.FormatText
		if cfg.DryRun {
			format = config.FormatDiff
		}
	}
	repFormat, err := reporter.ParseFormat(string(format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	logger.Debug("configuration resolved",
		logging.FieldFix, cfg.Fix,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldFailOn, threshold,
	)

	resolved := lint.ResolveRules(lint.DefaultRegistry, cfg)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: flags.ignore,
		Jobs:         cfg.Jobs,
		Rules:        lint.Rules(resolved),
		FixableRules: lint.FixableRuleIDs(resolved),
		Fix:          cfg.Fix,
		DryRun:       cfg.DryRun,
		OutputPath:   absPath(workDir, cfg.OutputPath),
		Config:       cfg,
	}

	logger.Debug("starting check",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := runner.New().Run(logging.WithLogger(ctx, logger), runOpts)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      repFormat,
		Color:       colorMode,
		ShowContext: flags.showContext,
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
		RuleFormat:  cfg.RuleFormat,
		WorkingDir:  workDir,
		Registry:    lint.DefaultRegistry,
		ToolVersion: info.Version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	logFileErrors(logger, result)

	switch ExitCodeFromResult(result, threshold) {
	case ExitIOError:
		return errors.Join(ErrFilesFailed, errors.Join(result.Errors()...))
	case ExitViolations:
		return ErrViolationsFound
	default:
		return nil
	}
}

// applyCheckFlags copies flags that need parsing or only count when set
// explicitly into the CLI config layer.
func applyCheckFlags(cmd *cobra.Command, cfg *config.Config, flags *checkFlags) error {
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
		if !configloader.IsValidFormat(cfg.Format) {
			return fmt.Errorf("%w: unknown format %q", ErrInvalidUsage, flags.format)
		}
	}
	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}
	if changed("fail-on") {
		if !configloader.IsValidFailOn(flags.failOn) {
			return fmt.Errorf("%w: --fail-on must be critical, important, or minor, got %q", ErrInvalidUsage, flags.failOn)
		}
		cfg.FailOn = strings.ToLower(flags.failOn)
	}
	if changed("suffix") {
		cfg.Output.Suffix = flags.suffix
	}

	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.OutputPath = flags.output
	cfg.Output.InPlace = flags.inPlace

	if flags.output != "" && flags.inPlace {
		return fmt.Errorf("%w: --output and --in-place are mutually exclusive", ErrInvalidUsage)
	}

	// Choosing a destination implies fixing, unless only a preview was asked for.
	if (flags.output != "" || flags.inPlace) && !cfg.DryRun {
		cfg.Fix = true
	}

	return nil
}

func addCheckFlags(cmd *cobra.Command, cfg *config.Config, flags *checkFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "apply eligible fixes and write the fixed document")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "compute fixes and show them without writing")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the fixed document here (single input only)")
	cmd.Flags().BoolVar(&flags.inPlace, "in-place", false, "rewrite inputs instead of writing <name>_fixed.tex")
	cmd.Flags().StringVar(&flags.suffix, "suffix", config.DefaultSuffix, "suffix appended to fixed document names")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backups when rewriting in place")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, table, json, sarif, diff, summary")
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip when walking directories")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().StringVar(&flags.failOn, "fail-on", "minor", "lowest severity that fails the run: critical, important, minor")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().BoolVar(&flags.showContext, "show-context", false, "print the source line with a caret under each violation")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the run summary")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
}

// logFileErrors reports per-file failures that the chosen format may not show.
func logFileErrors(logger *log.Logger, result *runner.Result) {
	for _, err := range result.Errors() {
		logger.Error("file failed", logging.FieldError, err)
	}
}

func absPath(workDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}
