package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/beamerlint/internal/configloader"
	"github.com/yaklabco/beamerlint/internal/logging"
	"github.com/yaklabco/beamerlint/pkg/config"
	"github.com/yaklabco/beamerlint/pkg/lint"
	"github.com/yaklabco/beamerlint/pkg/lint/rules"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	user   bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a beamerlint configuration file",
		Long: `Create a .beamerlint.yml configuration file in the current directory
with the defaults and every rule documented. Edit it to disable rules,
turn off individual fixes, or change where fixed documents are written.

Examples:
  beamerlint init                   Create .beamerlint.yml
  beamerlint init --format toml     Create .beamerlint.toml instead
  beamerlint init --user            Create the per-user config under $XDG_CONFIG_HOME
  beamerlint init -o custom.yml     Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.user, "user", false, "write the per-user configuration instead of a project file")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "file format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: .beamerlint.yml or .beamerlint.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()
	logger.SetOutput(cmd.ErrOrStderr())

	if flags.format != "yaml" && flags.format != "toml" {
		return fmt.Errorf("%w: invalid format %q: must be yaml or toml", ErrInvalidUsage, flags.format)
	}

	outputPath, err := initTarget(flags)
	if err != nil {
		return err
	}

	content, err := initContent(flags.format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := configloader.WriteConfig(outputPath, content, flags.force); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'beamerlint rules' to see all available rules")

	return nil
}

// initTarget resolves where the new config file goes.
func initTarget(flags *initFlags) (string, error) {
	name := ".beamerlint.yml"
	if flags.format == "toml" {
		name = ".beamerlint.toml"
	}

	switch {
	case flags.output != "":
		name = flags.output
	case flags.user:
		dir := configloader.UserConfigDir()
		if dir == "" {
			return "", fmt.Errorf("%w: cannot determine the user config directory", ErrInvalidUsage)
		}
		name = filepath.Join(dir, "config."+flags.format)
	}

	absPath, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	return absPath, nil
}

// initContent renders the default configuration. YAML gets the commented
// template; TOML gets the plain defaults under the same header.
func initContent(format string) ([]byte, error) {
	if format == "yaml" {
		return config.GenerateTemplate(func() []config.RuleInfo {
			return rules.RuleInfos(lint.DefaultRegistry)
		}), nil
	}

	body, err := config.NewConfig().ToTOML()
	if err != nil {
		return nil, fmt.Errorf("generate template: %w", err)
	}
	return append([]byte(config.DefaultTemplateHeader()+"\n\n"), body...), nil
}
