package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/beamerlint/pkg/fix"
)

func TestGenerateDiff_NoChanges(t *testing.T) {
	t.Parallel()

	assert.Nil(t, fix.GenerateDiff("a.tex", nil, nil))
	assert.Nil(t, fix.GenerateDiff("a.tex", []string{"x"}, []string{"x"}))

	var diff *fix.Diff
	assert.False(t, diff.HasChanges())
	assert.Empty(t, diff.String())
	assert.Empty(t, diff.FullString())
}

func TestGenerateDiff_SingleLineChange(t *testing.T) {
	t.Parallel()

	original := []string{"a", "b", `\hline`, "c"}
	modified := []string{"a", "b", `\midrule`, "c"}

	diff := fix.GenerateDiff("talk.tex", original, modified)
	require.NotNil(t, diff)
	assert.True(t, diff.HasChanges())
	assert.Equal(t, 1, diff.Additions)
	assert.Equal(t, 1, diff.Deletions)

	want := "--- a/talk.tex\n" +
		"+++ b/talk.tex\n" +
		"@@ -1,4 +1,4 @@\n" +
		" a\n" +
		" b\n" +
		"-\\hline\n" +
		"+\\midrule\n" +
		" c\n"
	assert.Equal(t, want, diff.String())
	assert.Equal(t, "diff --git a/talk.tex b/talk.tex\n"+want, diff.FullString())
}

func TestGenerateDiff_SeparateHunks(t *testing.T) {
	t.Parallel()

	var original, modified []string
	for i := range 20 {
		line := string(rune('a' + i))
		original = append(original, line)
		modified = append(modified, line)
	}
	modified[1] = "B"
	modified[17] = "R"

	diff := fix.GenerateDiff("x.tex", original, modified)
	require.NotNil(t, diff)
	require.Len(t, diff.Hunks, 2)

	first := diff.Hunks[0]
	assert.Equal(t, 1, first.OriginalStart)
	assert.Equal(t, 5, first.OriginalCount)

	second := diff.Hunks[1]
	assert.Equal(t, 15, second.OriginalStart)
	assert.Equal(t, 15, second.ModifiedStart)
	assert.Equal(t, 6, second.OriginalCount)
	assert.Equal(t, 6, second.ModifiedCount)
}

func TestGenerateDiff_CloseChangesMerge(t *testing.T) {
	t.Parallel()

	original := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	modified := []string{"1", "X", "3", "4", "5", "Y", "7", "8"}

	diff := fix.GenerateDiff("x.tex", original, modified)
	require.NotNil(t, diff)
	assert.Len(t, diff.Hunks, 1)
	assert.Equal(t, 2, diff.Additions)
	assert.Equal(t, 2, diff.Deletions)
}

func TestGenerateDiff_AddedAndRemovedLines(t *testing.T) {
	t.Parallel()

	diff := fix.GenerateDiff("x.tex", []string{"a"}, []string{"a", "b"})
	require.NotNil(t, diff)
	assert.Equal(t, 1, diff.Additions)
	assert.Equal(t, 0, diff.Deletions)

	diff = fix.GenerateDiff("x.tex", []string{"a", "b"}, nil)
	require.NotNil(t, diff)
	assert.Equal(t, 2, diff.Deletions)
}
