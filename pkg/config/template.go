package config

import (
	"bytes"
	"fmt"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severities  []string
	CanFix      bool
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// GenerateTemplate creates a commented YAML configuration file.
// Rules are listed in the order the provider returns them.
func GenerateTemplate(provider RuleInfoProvider) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Accepted document extensions
extensions:
  - .tex

# Lowest severity that fails the run: critical, important, or minor
fail_on: minor

# Where fixed documents go. The suffix is appended to the input base name,
# so talk.tex becomes talk_fixed.tex.
output:
  suffix: _fixed
  in_place: false

# Backups are only taken when rewriting files in place
backups:
  enabled: true
  mode: sidecar
`)

	var rules []RuleInfo
	if provider != nil {
		rules = provider()
	}
	if len(rules) == 0 {
		return buf.Bytes()
	}

	buf.WriteString("\n# Rule-specific configuration\nrules:\n")
	for _, rule := range rules {
		fmt.Fprintf(&buf, "\n  # %s: %s\n", rule.ID, rule.Name)
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(rule.Description, commentWrapWidth))
		if len(rule.Severities) > 0 {
			fmt.Fprintf(&buf, "  # Severity: %s\n", strings.Join(rule.Severities, ", "))
		}
		if rule.CanFix {
			buf.WriteString("  # Auto-fix: yes\n")
		}
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", rule.Enabled)
		if rule.CanFix {
			buf.WriteString("    auto_fix: true\n")
		}
	}

	return buf.Bytes()
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# beamerlint configuration
# See: https://github.com/yaklabco/beamerlint`
}
