package lint

import (
	"fmt"
	"strings"
)

// Severity ranks a violation. The zero value is not a valid severity.
type Severity int

// Severity levels in report order.
const (
	SeverityCritical Severity = iota + 1
	SeverityImportant
	SeverityMinor
)

// Severities returns every severity in report order: Critical, Important, Minor.
func Severities() []Severity {
	return []Severity{SeverityCritical, SeverityImportant, SeverityMinor}
}

// String returns the display name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "Critical"
	case SeverityImportant:
		return "Important"
	case SeverityMinor:
		return "Minor"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// IsValid reports whether s is one of the defined severities.
func (s Severity) IsValid() bool {
	return s >= SeverityCritical && s <= SeverityMinor
}

// Eligible reports whether violations of this severity may be fixed automatically.
// Minor violations are reported but never applied.
func (s Severity) Eligible() bool {
	return s == SeverityCritical || s == SeverityImportant
}

// AtLeast reports whether s is as severe as other or more.
func (s Severity) AtLeast(other Severity) bool {
	return s.IsValid() && s <= other
}

// ParseSeverity parses a severity name, case-insensitively.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "critical":
		return SeverityCritical, nil
	case "important":
		return SeverityImportant, nil
	case "minor":
		return SeverityMinor, nil
	default:
		return 0, fmt.Errorf("unknown severity %q; valid severities: critical, important, minor", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
