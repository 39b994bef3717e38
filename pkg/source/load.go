package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/beamerlint/pkg/fsutil"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the input path does not exist.
	ErrNotFound = fsutil.ErrNotFound

	// ErrIsDirectory indicates the input path is a directory.
	ErrIsDirectory = fsutil.ErrIsDirectory

	// ErrUnsupportedType indicates the input extension is not an accepted markup type.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Load reads and decodes the document at path.
//
// The file must exist and carry one of exts. Both checks happen before any
// content is scanned.
func Load(ctx context.Context, path string, exts []string) (*Document, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	if !fsutil.HasExtension(path, exts) {
		return nil, fmt.Errorf("%w: %s (extension %q, want one of %v)",
			ErrUnsupportedType, path, filepath.Ext(path), exts)
	}

	doc := Parse(path, content)
	doc.Info = info
	return doc, nil
}
