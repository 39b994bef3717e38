package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/beamerlint/pkg/config"
)

func TestFormatRuleID(t *testing.T) {
	tests := []struct {
		name     string
		format   config.RuleFormat
		ruleID   string
		ruleName string
		want     string
	}{
		{"name format", config.RuleFormatName, "BL001", "color-command", "color-command"},
		{"id format", config.RuleFormatID, "BL001", "color-command", "BL001"},
		{"combined format", config.RuleFormatCombined, "BL001", "color-command", "BL001/color-command"},
		{"name format empty name", config.RuleFormatName, "BL001", "", "BL001"},
		{"default to name", config.RuleFormat(""), "BL001", "color-command", "color-command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FormatRuleID(tt.format, tt.ruleID, tt.ruleName)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputFormat_IsValid(t *testing.T) {
	for _, f := range []config.OutputFormat{config.FormatText, config.FormatTable, config.FormatJSON, config.FormatSARIF, config.FormatDiff, config.FormatSummary} {
		assert.True(t, f.IsValid(), f)
	}
	assert.False(t, config.OutputFormat("xml").IsValid())
	assert.False(t, config.OutputFormat("").IsValid())
}
