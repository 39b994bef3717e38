package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/beamerlint/pkg/config"
	"github.com/yaklabco/beamerlint/pkg/lint"
	_ "github.com/yaklabco/beamerlint/pkg/lint/rules" // Register rules
)

func noEnv(string) (string, bool) { return "", false }

func envMap(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

// isolated returns options that only look at dir.
func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		LookupEnv:          noEnv,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(t.TempDir()))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, []string{".tex"}, result.Config.Extensions)
	assert.Equal(t, "minor", result.Config.FailOn)
	assert.Equal(t, config.DefaultSuffix, result.Config.Output.Suffix)
	assert.False(t, result.Config.Output.InPlace)
	assert.True(t, result.Config.Backups.Enabled)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".beamerlint.yml"), `
fail_on: important
output:
  suffix: _clean
backups:
  enabled: false
rules:
  BL001:
    enabled: false
`)

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)

	cfg := result.Config
	assert.Equal(t, "important", cfg.FailOn)
	assert.Equal(t, "_clean", cfg.Output.Suffix)
	assert.False(t, cfg.Backups.Enabled, "file config can switch a default off")
	assert.Equal(t, "sidecar", cfg.Backups.Mode, "absent keys keep their default")

	bl001, ok := cfg.Rules["BL001"]
	require.True(t, ok)
	require.NotNil(t, bl001.Enabled)
	assert.False(t, *bl001.Enabled)

	assert.Len(t, result.LoadedFrom, 1)
}

func TestLoad_ProjectConfigSearchesUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	writeFile(t, filepath.Join(root, ".beamerlint.toml"), "fail_on = \"critical\"\n")

	nested := filepath.Join(root, "lectures", "week1")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(context.Background(), isolated(nested))
	require.NoError(t, err)

	assert.Equal(t, "critical", result.Config.FailOn)
	assert.Equal(t, filepath.Join(root, ".beamerlint.toml"), result.Paths.Project)
}

func TestLoad_TOMLConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".beamerlint.toml"), `
extensions = [".tex", ".ltx"]

[output]
in_place = true

[rules.tables]
auto_fix = false
`)

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)

	cfg := result.Config
	assert.Equal(t, []string{".tex", ".ltx"}, cfg.Extensions)
	assert.True(t, cfg.Output.InPlace)

	tables, ok := cfg.Rules["BL005"]
	require.True(t, ok, "rule names are normalized to IDs")
	require.NotNil(t, tables.AutoFix)
	assert.False(t, *tables.AutoFix)
}

func TestLoad_UnknownKeysRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", ".beamerlint.yml", "flavor: gfm\n"},
		{"toml", ".beamerlint.toml", "flavor = \"gfm\"\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			writeFile(t, filepath.Join(tmpDir, tc.file), tc.content)

			_, err := Load(context.Background(), isolated(tmpDir))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_EmptyConfigFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".beamerlint.yml"), "")

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSuffix, result.Config.Output.Suffix)
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".beamerlint.yml"), "fail_on: minor\noutput:\n  suffix: _project\n")

	customPath := filepath.Join(tmpDir, "custom.yml")
	writeFile(t, customPath, "fail_on: critical\n")

	opts := isolated(tmpDir)
	opts.ExplicitPath = customPath

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "critical", result.Config.FailOn)
	assert.Equal(t, config.DefaultSuffix, result.Config.Output.Suffix, "project config is skipped")
	assert.Equal(t, []string{customPath}, result.LoadedFrom)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	customPath := filepath.Join(tmpDir, "custom.json")
	writeFile(t, customPath, "{}\n")

	opts := isolated(tmpDir)
	opts.ExplicitPath = customPath

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "unsupported config file type")
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	opts := isolated(t.TempDir())
	opts.ExplicitPath = filepath.Join(t.TempDir(), "missing.yml")

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".beamerlint.yml"), "fail_on: minor\n")

	opts := isolated(tmpDir)
	opts.LookupEnv = envMap(map[string]string{
		"BEAMERLINT_FAIL_ON":    "Critical",
		"BEAMERLINT_JOBS":       "3",
		"BEAMERLINT_IN_PLACE":   "true",
		"BEAMERLINT_EXTENSIONS": ".tex, .ltx",
	})

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	cfg := result.Config
	assert.Equal(t, "critical", cfg.FailOn)
	assert.Equal(t, 3, cfg.Jobs)
	assert.True(t, cfg.Output.InPlace)
	assert.Equal(t, []string{".tex", ".ltx"}, cfg.Extensions)
}

func TestLoad_DotEnv(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".env"), "BEAMERLINT_FAIL_ON=important\nBEAMERLINT_OUTPUT_SUFFIX=_dotenv\n")

	opts := isolated(tmpDir)
	opts.LookupEnv = envMap(map[string]string{"BEAMERLINT_OUTPUT_SUFFIX": "_process"})

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "important", result.Config.FailOn)
	assert.Equal(t, "_process", result.Config.Output.Suffix, "process environment shadows .env")
	assert.Equal(t, filepath.Join(tmpDir, ".env"), result.Paths.DotEnv)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Parallel()

	opts := isolated(t.TempDir())
	opts.LookupEnv = envMap(map[string]string{"BEAMERLINT_JOBS": "many"})

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "BEAMERLINT_JOBS")
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".beamerlint.yml"), "fail_on: minor\n")

	opts := isolated(tmpDir)
	opts.CLIConfig = &config.Config{
		FailOn:       "critical",
		Jobs:         8,
		Fix:          true,
		DisableRules: []string{"BL002"},
	}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	cfg := result.Config
	assert.Equal(t, "critical", cfg.FailOn)
	assert.Equal(t, 8, cfg.Jobs)
	assert.True(t, cfg.Fix)
	assert.Equal(t, []string{"BL002"}, cfg.DisableRules)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"fail_on", "fail_on: fatal\n", "fail_on"},
		{"backup mode", "backups:\n  mode: git\n", "backups.mode"},
		{"extension without dot", "extensions: [tex]\n", "extensions[0]"},
		{"no extensions", "extensions: []\n", "extensions"},
		{"suffix with separator", "output:\n  suffix: out/x\n", "output.suffix"},
		{"empty suffix", "output:\n  suffix: \"\"\n", "output.suffix"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			writeFile(t, filepath.Join(tmpDir, ".beamerlint.yml"), tc.content)

			_, err := Load(context.Background(), isolated(tmpDir))
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Contains(t, verr.FilePath, ".beamerlint.yml")
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_EmptySuffixAllowedInPlace(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".beamerlint.yml"), "output:\n  suffix: \"\"\n  in_place: true\n")

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)
	assert.True(t, result.Config.Output.InPlace)
}

func TestLoad_UnknownCLIRule(t *testing.T) {
	t.Parallel()

	opts := isolated(t.TempDir())
	opts.CLIConfig = &config.Config{EnableRules: []string{"BL999"}}

	_, err := Load(context.Background(), opts)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "enable", verr.Field)
}

func TestLoad_UnknownConfigRuleWarns(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".beamerlint.yml"), "rules:\n  no-such-rule:\n    enabled: false\n")

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `unknown rule "no-such-rule"`)
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolated(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoader_NormalizesRuleKeys(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".beamerlint.yml"), `
rules:
  color-command:
    enabled: false
  math-subscript:
    enabled: true
    auto_fix: false
`)

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)

	rules := result.Config.Rules
	assert.Contains(t, rules, "BL001")
	assert.NotContains(t, rules, "color-command")

	bl006, ok := rules["BL006"]
	require.True(t, ok)
	require.NotNil(t, bl006.Enabled)
	assert.True(t, *bl006.Enabled)
	require.NotNil(t, bl006.AutoFix)
	assert.False(t, *bl006.AutoFix)
}

func TestLoader_WarnsDuplicateRules(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".beamerlint.yml"), `
rules:
  BL001:
    enabled: false
  color-command:
    enabled: true
`)

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "duplicate") && strings.Contains(w, "BL001") {
			found = true
		}
	}
	assert.True(t, found, "warnings: %v", result.Warnings)

	bl001 := result.Config.Rules["BL001"]
	require.NotNil(t, bl001.Enabled)
	assert.False(t, *bl001.Enabled, "the ID entry wins")
}

func TestLoad_RulesResolveAfterLoad(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".beamerlint.yml"), "rules:\n  spacing-command:\n    enabled: false\n")

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)

	var ids []string
	for _, rr := range lint.ResolveRules(lint.DefaultRegistry, result.Config) {
		ids = append(ids, rr.Rule.ID())
	}
	assert.NotContains(t, ids, "BL002")
	assert.Contains(t, ids, "BL001")
}
