package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/beamerlint/pkg/runner"
	"github.com/yaklabco/beamerlint/pkg/source"
)

func TestDiscover_ExplicitFilesKeepArgumentOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	b := writeDoc(t, dir, "b.tex", "")
	a := writeDoc(t, dir, "a.tex", "")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"b.tex", "a.tex", "b.tex"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{b, a}, files)
}

func TestDiscover_DirectoryIsSorted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "slides/week2.tex", "")
	writeDoc(t, dir, "slides/week1.tex", "")
	writeDoc(t, dir, "slides/notes.md", "")
	writeDoc(t, dir, "slides/.hidden.tex", "")
	writeDoc(t, dir, "slides/.git/x.tex", "")
	writeDoc(t, dir, "slides/build/out.tex", "")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"slides"},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"slides/build/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "slides", "week1.tex"),
		filepath.Join(dir, "slides", "week2.tex"),
	}, files)
}

func TestDiscover_DefaultsToWorkingDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeDoc(t, dir, "talk.tex", "")

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "talk.tex", "")
	ltx := writeDoc(t, dir, "talk.ltx", "")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".ltx"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{ltx}, files)
}

func TestDiscover_MissingInputIsFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "talk.tex", "")

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"talk.tex", "gone.tex"},
		WorkingDir: dir,
	})
	require.ErrorIs(t, err, source.ErrNotFound)
}

func TestDiscover_ExplicitForeignExtensionIsFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "notes.md", "")

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"notes.md"},
		WorkingDir: dir,
	})
	require.ErrorIs(t, err, source.ErrUnsupportedType)
}

func TestDiscover_SymlinkedDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := t.TempDir()
	writeDoc(t, target, "linked.tex", "")
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = runner.Discover(context.Background(), runner.Options{
		WorkingDir:     dir,
		FollowSymlinks: true,
	})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
