package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Critical", SeverityCritical.String())
	assert.Equal(t, "Important", SeverityImportant.String())
	assert.Equal(t, "Minor", SeverityMinor.String())
	assert.Equal(t, "Severity(9)", Severity(9).String())
}

func TestSeverity_Eligible(t *testing.T) {
	t.Parallel()

	assert.True(t, SeverityCritical.Eligible())
	assert.True(t, SeverityImportant.Eligible())
	assert.False(t, SeverityMinor.Eligible())
	assert.False(t, Severity(0).Eligible())
}

func TestSeverity_AtLeast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sev, threshold Severity
		want           bool
	}{
		{SeverityCritical, SeverityMinor, true},
		{SeverityMinor, SeverityMinor, true},
		{SeverityMinor, SeverityImportant, false},
		{SeverityImportant, SeverityCritical, false},
		{Severity(0), SeverityMinor, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sev.AtLeast(tt.threshold), "%s >= %s", tt.sev, tt.threshold)
	}
}

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Severity
		wantErr bool
	}{
		{"critical", SeverityCritical, false},
		{"Important", SeverityImportant, false},
		{" MINOR ", SeverityMinor, false},
		{"warning", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSeverity(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity_TextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, sev := range Severities() {
		text, err := sev.MarshalText()
		require.NoError(t, err)

		var got Severity
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, sev, got)
	}

	_, err := Severity(0).MarshalText()
	assert.Error(t, err)
}

func TestCategory_Title(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Color Command", CategoryColorCommand.Title())
	assert.Equal(t, "Equation Environment", CategoryEquationEnvironment.Title())
	assert.Equal(t, "Math Subscript", CategoryMathSubscript.Title())
}

func TestViolation_Eligible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		viol Violation
		want bool
	}{
		{"critical with fix", Violation{Severity: SeverityCritical, SuggestedFix: "x"}, true},
		{"important with fix", Violation{Severity: SeverityImportant, SuggestedFix: "x"}, true},
		{"minor with fix", Violation{Severity: SeverityMinor, SuggestedFix: "x"}, false},
		{"critical without fix", Violation{Severity: SeverityCritical}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.viol.Eligible(), tt.name)
	}
}
