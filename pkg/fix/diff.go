package fix

import (
	"fmt"
	"slices"
	"strings"
)

// Diff is a unified diff between a document and its fixed version.
type Diff struct {
	// Path is shown in the a/ and b/ headers.
	Path string

	Hunks []DiffHunk

	Additions int
	Deletions int
}

// DiffHunk is one @@ block. Starts are 1-based.
type DiffHunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []DiffLine
}

// DiffLine is one line of a hunk.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffLineKind is the unified diff prefix of a line: ' ', '+' or '-'.
type DiffLineKind int

const (
	DiffLineContext DiffLineKind = iota
	DiffLineAdd
	DiffLineRemove
)

// hunkContext is the number of unchanged lines kept around each change.
const hunkContext = 3

// GenerateDiff diffs two documents given as lines. Returns nil if they are identical.
func GenerateDiff(path string, original, modified []string) *Diff {
	if slices.Equal(original, modified) {
		return nil
	}

	edits := editScript(original, modified)
	diff := &Diff{Path: path, Hunks: hunksOf(edits)}
	for _, edit := range edits {
		switch edit.Kind {
		case DiffLineAdd:
			diff.Additions++
		case DiffLineRemove:
			diff.Deletions++
		}
	}
	return diff
}

// editScript returns a shortest edit script from original to modified.
// Fixes touch few lines, so the shared head and tail are matched directly and
// only the middle goes through the quadratic table.
func editScript(original, modified []string) []DiffLine {
	head := 0
	for head < len(original) && head < len(modified) && original[head] == modified[head] {
		head++
	}
	tail := 0
	for tail < len(original)-head && tail < len(modified)-head &&
		original[len(original)-1-tail] == modified[len(modified)-1-tail] {
		tail++
	}

	orig := original[head : len(original)-tail]
	mod := modified[head : len(modified)-tail]

	// common[i][j] is the longest common subsequence of orig[i:] and mod[j:].
	common := make([][]int, len(orig)+1)
	for i := range common {
		common[i] = make([]int, len(mod)+1)
	}
	for i := len(orig) - 1; i >= 0; i-- {
		for j := len(mod) - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				common[i][j] = common[i+1][j+1] + 1
			} else {
				common[i][j] = max(common[i+1][j], common[i][j+1])
			}
		}
	}

	edits := make([]DiffLine, 0, len(original)+len(mod))
	for _, line := range original[:head] {
		edits = append(edits, DiffLine{Kind: DiffLineContext, Content: line})
	}

	i, j := 0, 0
	for i < len(orig) || j < len(mod) {
		switch {
		case i < len(orig) && j < len(mod) && orig[i] == mod[j]:
			edits = append(edits, DiffLine{Kind: DiffLineContext, Content: orig[i]})
			i++
			j++
		case j == len(mod) || (i < len(orig) && common[i+1][j] >= common[i][j+1]):
			edits = append(edits, DiffLine{Kind: DiffLineRemove, Content: orig[i]})
			i++
		default:
			edits = append(edits, DiffLine{Kind: DiffLineAdd, Content: mod[j]})
			j++
		}
	}

	for _, line := range original[len(original)-tail:] {
		edits = append(edits, DiffLine{Kind: DiffLineContext, Content: line})
	}
	return edits
}

// hunksOf cuts an edit script into hunks. Each change claims hunkContext
// lines on either side; changes whose windows touch share a hunk.
func hunksOf(edits []DiffLine) []DiffHunk {
	var hunks []DiffHunk

	start, end := -1, -1
	for idx, edit := range edits {
		if edit.Kind == DiffLineContext {
			continue
		}
		lo := max(idx-hunkContext, 0)
		hi := min(idx+hunkContext+1, len(edits))
		if start >= 0 && lo > end {
			hunks = append(hunks, newHunk(edits, start, end))
			start = -1
		}
		if start < 0 {
			start = lo
		}
		end = hi
	}
	if start >= 0 {
		hunks = append(hunks, newHunk(edits, start, end))
	}
	return hunks
}

// newHunk builds the hunk covering edits[start:end].
func newHunk(edits []DiffLine, start, end int) DiffHunk {
	hunk := DiffHunk{OriginalStart: 1, ModifiedStart: 1, Lines: edits[start:end]}
	for _, edit := range edits[:start] {
		if edit.Kind != DiffLineAdd {
			hunk.OriginalStart++
		}
		if edit.Kind != DiffLineRemove {
			hunk.ModifiedStart++
		}
	}
	for _, edit := range hunk.Lines {
		if edit.Kind != DiffLineAdd {
			hunk.OriginalCount++
		}
		if edit.Kind != DiffLineRemove {
			hunk.ModifiedCount++
		}
	}
	return hunk
}

// GitHeader returns the "diff --git" line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String renders the diff in unified format, without the git header.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n+++ b/%s\n", path, path)
	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount, hunk.ModifiedStart, hunk.ModifiedCount)
		for _, line := range hunk.Lines {
			builder.WriteByte(line.Kind.prefix())
			builder.WriteString(line.Content)
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

// FullString renders the git header followed by the unified diff.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// HasChanges reports whether the diff has at least one hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

func (k DiffLineKind) prefix() byte {
	switch k {
	case DiffLineAdd:
		return '+'
	case DiffLineRemove:
		return '-'
	default:
		return ' '
	}
}
