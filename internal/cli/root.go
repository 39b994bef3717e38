// Package cli provides the Cobra command structure for beamerlint.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/beamerlint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root beamerlint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "beamerlint",
		Short: "A style checker and fixer for Beamer slides",
		Long: `beamerlint checks Beamer/LaTeX slide sources against a fixed set of
presentation style conventions: color shortcuts, item spacing commands,
text formatting, unnumbered equations, booktabs tables, and braced math
subscripts.

Each violation is ranked Critical, Important, or Minor. Critical and
Important violations that carry a suggested fix can be applied
automatically; the fixed document is written beside the input.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch color {
			case "auto", "always", "never":
			default:
				return fmt.Errorf("%w: --color must be auto, always, or never, got %q", ErrInvalidUsage, color)
			}

			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	})

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand(info))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newRestoreCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}
