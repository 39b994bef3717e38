// Package langdetect identifies the language and TeX dialect of an input file.
// It uses go-enry for the language and a few markup patterns for the dialect.
package langdetect

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language names returned by Detect.
const (
	LangTeX  = "tex"
	LangText = "text"
)

// Dialects returned by Dialect.
const (
	DialectBeamer   = "beamer"
	DialectLaTeX    = "latex"
	DialectFragment = "fragment"
)

// candidates limits the classifier to languages a slide source could be
// mistaken for.
var candidates = []string{"TeX", "Markdown", "Text"}

var (
	beamerClassPattern = regexp.MustCompile(`^\s*\\documentclass(\[[^\]]*\])?\{beamer\}`)
	documentPattern    = regexp.MustCompile(`^\s*\\(documentclass|begin\{document\})`)
)

// Detect returns the lowercased language of a file from its name, falling
// back to the content classifier when the extension is unknown or ambiguous.
// Returns "text" when neither is confident.
func Detect(path string, content []byte) string {
	if lang, safe := enry.GetLanguageByExtension(path); safe && lang != "" {
		return normalize(lang)
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return LangText
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return LangText
}

// Dialect reports what kind of TeX source the content is: a beamer
// presentation, another LaTeX document, or a fragment meant for \input.
func Dialect(content []byte) string {
	sawDocument := false
	for line := range bytes.Lines(content) {
		if beamerClassPattern.Match(line) {
			return DialectBeamer
		}
		if documentPattern.Match(line) {
			sawDocument = true
		}
	}
	if sawDocument {
		return DialectLaTeX
	}
	return DialectFragment
}

func normalize(lang string) string {
	return strings.ToLower(lang)
}
