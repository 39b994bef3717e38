// Package config defines core configuration types for beamerlint.
// These types are pure data structures with no dependency on the loaders.
package config

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled *bool `mapstructure:"enabled" yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	AutoFix *bool `mapstructure:"auto_fix" yaml:"auto_fix,omitempty" toml:"auto_fix,omitempty"`
}

// BackupsConfig controls backup behavior when fixing files in place.
type BackupsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	Mode    string `mapstructure:"mode" yaml:"mode" toml:"mode" validate:"omitempty,oneof=sidecar none"`
}

// OutputConfig controls where fixed documents are written.
type OutputConfig struct {
	// Suffix is appended to the input base name to form the fixed file name.
	Suffix string `mapstructure:"suffix" yaml:"suffix" toml:"suffix" validate:"required_without=InPlace,excludesall=/\\"`

	// InPlace rewrites the input file instead of writing a sibling.
	InPlace bool `mapstructure:"in_place" yaml:"in_place" toml:"in_place"`
}

// OutputFormat specifies the output format for reports.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "color-command"
	RuleFormatID       RuleFormat = "id"       // "BL001"
	RuleFormatCombined RuleFormat = "combined" // "BL001/color-command"
)

// DefaultSuffix is appended to the base name of a fixed document.
const DefaultSuffix = "_fixed"

// Config is the root configuration structure for beamerlint.
type Config struct {
	// Extensions lists accepted input extensions (lowercase, with leading dot).
	Extensions []string `mapstructure:"extensions" yaml:"extensions" toml:"extensions" validate:"min=1,dive,startswith=."`

	// FailOn is the lowest severity that makes the run fail: critical, important, or minor.
	FailOn string `mapstructure:"fail_on" yaml:"fail_on" toml:"fail_on" validate:"omitempty,oneof=critical important minor"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `mapstructure:"rules" yaml:"rules,omitempty" toml:"rules,omitempty"`

	// Output configures fixed document placement.
	Output OutputConfig `mapstructure:"output" yaml:"output" toml:"output"`

	// Backups configures backup behavior when fixing in place.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups" toml:"backups"`

	// CLI-level options (not persisted to config files).

	// Fix enables writing the fixed document.
	Fix bool `mapstructure:"-" yaml:"-" toml:"-"`

	// DryRun computes fixes and shows a diff without writing anything.
	DryRun bool `mapstructure:"-" yaml:"-" toml:"-"`

	// Format specifies the output format. Empty means text, or diff for a dry run.
	Format OutputFormat `mapstructure:"-" yaml:"-" toml:"-" validate:"omitempty,oneof=text table json sarif diff summary"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `mapstructure:"-" yaml:"-" toml:"-" validate:"omitempty,oneof=name id combined"`

	// Jobs is the number of parallel workers (0 = auto, 1 = sequential).
	Jobs int `mapstructure:"-" yaml:"-" toml:"-" validate:"gte=0"`

	// OutputPath overrides the fixed document path (single input only).
	OutputPath string `mapstructure:"-" yaml:"-" toml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `mapstructure:"-" yaml:"-" toml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `mapstructure:"-" yaml:"-" toml:"-"`

	// NoBackups disables backup creation when fixing in place.
	NoBackups bool `mapstructure:"-" yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Extensions: DefaultExtensions(),
		FailOn:     "minor",
		Rules:      make(map[string]RuleConfig),
		Output: OutputConfig{
			Suffix: DefaultSuffix,
		},
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		RuleFormat: RuleFormatName,
		Jobs:       0,
	}
}

// DefaultExtensions returns the default set of accepted document extensions.
func DefaultExtensions() []string {
	return []string{".tex"}
}
