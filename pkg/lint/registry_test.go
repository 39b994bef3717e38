package lint

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRule(id, name string, fix string) *PatternRule {
	return NewPatternRule(id, name, "test rule",
		Pattern{
			Expr:     regexp.MustCompile(regexp.QuoteMeta(name)),
			Scope:    ScopeMatch,
			Category: CategoryTextFormatting,
			Severity: SeverityImportant,
			Message:  "found " + name,
			Fix:      fix,
		},
	)
}

func TestRegistry_OrderAndLookup(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newTestRule("T002", "second", ""))
	reg.Register(newTestRule("T001", "first", ""))

	assert.Equal(t, []string{"T002", "T001"}, reg.IDs())
	assert.Equal(t, 2, reg.Len())

	got, ok := reg.Get("T001")
	require.True(t, ok)
	assert.Equal(t, "first", got.Name())

	got, ok = reg.Get("second")
	require.True(t, ok)
	assert.Equal(t, "T002", got.ID())

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_ReplaceKeepsPosition(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newTestRule("T001", "one", ""))
	reg.Register(newTestRule("T002", "two", ""))
	reg.Register(newTestRule("T001", "uno", ""))

	assert.Equal(t, []string{"T001", "T002"}, reg.IDs())

	_, ok := reg.Get("one")
	assert.False(t, ok, "old name must be dropped")

	got, ok := reg.Get("uno")
	require.True(t, ok)
	assert.Equal(t, "T001", got.ID())
}

func TestRegistry_RulesReturnsCopy(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newTestRule("T001", "one", ""))

	rules := reg.Rules()
	rules[0] = nil

	assert.NotNil(t, reg.Rules()[0])
}
