package lint

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scannerRules() []Rule {
	return []Rule{
		newTestRule("T001", "alpha", "ALPHA"),
		newTestRule("T002", "beta", ""),
		NewPatternRule("T003", "gamma", "",
			Pattern{
				Expr:     regexp.MustCompile(`alpha`),
				Scope:    ScopeLine,
				Category: CategoryColorCommand,
				Severity: SeverityMinor,
				Message:  "alpha again",
			}),
	}
}

func TestScanner_OrderIsRuleThenLine(t *testing.T) {
	t.Parallel()

	lines := []string{"beta alpha", "alpha", "beta"}
	got, err := NewScanner(scannerRules()).Scan(context.Background(), lines)
	require.NoError(t, err)

	var order []string
	for _, v := range got {
		order = append(order, fmt.Sprintf("%s:%d", v.RuleID, v.Line))
	}
	assert.Equal(t, []string{
		"T001:1", "T001:2",
		"T002:1", "T002:3",
		"T003:1", "T003:2",
	}, order)
}

func TestScanner_OverlappingRulesAreNotDeduplicated(t *testing.T) {
	t.Parallel()

	got, err := NewScanner(scannerRules()).Scan(context.Background(), []string{"alpha"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestScanner_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	var lines []string
	for i := range 200 {
		lines = append(lines, fmt.Sprintf("line %d alpha beta %d", i, i%7))
	}

	seq, err := NewScanner(scannerRules()).Scan(context.Background(), lines)
	require.NoError(t, err)

	for _, jobs := range []int{0, 2, 8} {
		scanner := NewScanner(scannerRules())
		scanner.Jobs = jobs

		par, err := scanner.Scan(context.Background(), lines)
		require.NoError(t, err)
		assert.Equal(t, seq, par, "jobs=%d", jobs)
	}
}

func TestScanner_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	lines := []string{"alpha", "beta"}
	snapshot := append([]string(nil), lines...)

	_, err := NewScanner(scannerRules()).Scan(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, snapshot, lines)
}

func TestScanner_Idempotent(t *testing.T) {
	t.Parallel()

	lines := []string{"alpha beta", "", "beta"}
	scanner := NewScanner(scannerRules())

	first, err := scanner.Scan(context.Background(), lines)
	require.NoError(t, err)
	second, err := scanner.Scan(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScanner_EmptyDocument(t *testing.T) {
	t.Parallel()

	got, err := NewScanner(scannerRules()).Scan(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScanner_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner(scannerRules()).Scan(ctx, []string{"alpha"})
	require.ErrorIs(t, err, context.Canceled)
}
