// Package source loads markup documents into memory as ordered lines.
//
// Loading is strict about the file itself and lenient about its bytes:
// a missing file or a foreign extension is an error, while malformed UTF-8 is
// dropped during decoding.
package source

import (
	"bytes"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/yaklabco/beamerlint/pkg/fsutil"
	"github.com/yaklabco/beamerlint/pkg/langdetect"
)

// Line endings recognized when splitting a document.
const (
	LF   = "\n"
	CRLF = "\r\n"
)

// Document is an in-memory markup document.
// Lines are 1-indexed for reporting; Lines[0] is line 1.
type Document struct {
	// Path is where the document was loaded from. Empty for in-memory documents.
	Path string

	// Lines holds the decoded text without line terminators.
	Lines []string

	// Newline is the line terminator used when the document is written back.
	Newline string

	// TrailingNewline records whether the last line was terminated.
	TrailingNewline bool

	// Language is the detected language, usually "tex".
	Language string

	// Dialect is the detected TeX dialect: beamer, latex, or fragment.
	Dialect string

	// Info is the file state at load time. Nil for in-memory documents.
	Info *fsutil.FileInfo
}

// Parse decodes raw bytes into a Document.
//
// A UTF-8 byte order mark is stripped and malformed byte sequences are
// dropped. The line terminator is taken from the first line break; if it is
// CRLF, a trailing carriage return is removed from every line.
func Parse(path string, content []byte) *Document {
	text := decode(content)

	doc := &Document{
		Path:     path,
		Newline:  LF,
		Language: langdetect.Detect(path, []byte(text)),
		Dialect:  langdetect.Dialect([]byte(text)),
	}

	if idx := strings.IndexByte(text, '\n'); idx > 0 && text[idx-1] == '\r' {
		doc.Newline = CRLF
	}

	if text == "" {
		doc.Lines = []string{}
		return doc
	}

	if strings.HasSuffix(text, LF) {
		doc.TrailingNewline = true
		text = text[:len(text)-1]
	}

	doc.Lines = strings.Split(text, LF)
	if doc.Newline == CRLF {
		for idx, line := range doc.Lines {
			doc.Lines[idx] = strings.TrimSuffix(line, "\r")
		}
	}
	return doc
}

// FromLines builds an in-memory document from already split lines.
func FromLines(lines []string) *Document {
	return &Document{
		Lines:           slices.Clone(lines),
		Newline:         LF,
		TrailingNewline: true,
	}
}

// Bytes renders the document with its original line terminator.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	for idx, line := range d.Lines {
		if idx > 0 {
			buf.WriteString(d.Newline)
		}
		buf.WriteString(line)
	}
	if d.TrailingNewline && len(d.Lines) > 0 {
		buf.WriteString(d.Newline)
	}
	return buf.Bytes()
}

// WithLines returns a copy of the document holding lines instead of its own.
// The receiver is not modified.
func (d *Document) WithLines(lines []string) *Document {
	clone := *d
	clone.Lines = slices.Clone(lines)
	return &clone
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

func decode(content []byte) string {
	decoder := transform.Chain(
		unicode.UTF8BOM.NewDecoder(),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
	)

	out, _, err := transform.Bytes(decoder, content)
	if err != nil {
		// Neither transformer reports errors on malformed input; keep the
		// valid runes if one ever does.
		return strings.ToValidUTF8(string(content), "")
	}
	return string(out)
}
