package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/beamerlint/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{
			name:    "tex extension",
			path:    "talk.tex",
			content: `\begin{frame}`,
			want:    langdetect.LangTeX,
		},
		{
			name:    "upper case extension",
			path:    "TALK.TEX",
			content: "",
			want:    langdetect.LangTeX,
		},
		{
			name:    "unknown extension and empty content",
			path:    "notes.zzz",
			content: "   ",
			want:    langdetect.LangText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, langdetect.Detect(tt.path, []byte(tt.content)))
		})
	}
}

func TestDialect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "beamer class with options",
			content: "% slides\n\\documentclass[11pt,aspectratio=169]{beamer}\n\\begin{document}\n",
			want:    langdetect.DialectBeamer,
		},
		{
			name:    "beamer class",
			content: "\\documentclass{beamer}",
			want:    langdetect.DialectBeamer,
		},
		{
			name:    "article",
			content: "\\documentclass{article}\n\\begin{document}\n",
			want:    langdetect.DialectLaTeX,
		},
		{
			name:    "fragment",
			content: "\\begin{frame}{Intro}\n\\end{frame}\n",
			want:    langdetect.DialectFragment,
		},
		{
			name:    "commented class is ignored",
			content: "% \\documentclass{beamer}\n",
			want:    langdetect.DialectFragment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, langdetect.Dialect([]byte(tt.content)))
		})
	}
}
