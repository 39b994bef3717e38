package fsutil

import (
	"path/filepath"
	"slices"
	"strings"
)

// FixedPath returns the sibling path a fixed document is written to:
// the input's stem with suffix appended, keeping the extension.
// "slides/talk.tex" with suffix "_fixed" becomes "slides/talk_fixed.tex".
func FixedPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// HasExtension reports whether path ends in one of exts, ignoring case.
// Extensions carry their leading dot.
func HasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	return slices.ContainsFunc(exts, func(candidate string) bool {
		return strings.ToLower(candidate) == ext
	})
}
