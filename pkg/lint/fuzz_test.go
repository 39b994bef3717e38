package lint_test

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/yaklabco/beamerlint/pkg/lint"
	"github.com/yaklabco/beamerlint/pkg/lint/rules"
)

func FuzzScan(f *testing.F) {
	f.Add("Use \\textcolor{blue}{important text} here.")
	f.Add("\\medskip \\item Second\n\\vfill\\item Last")
	f.Add("\\textbf{\\textit{both}} \\hline\\hline $a_{ij}$ $x_ij$")
	f.Add("\\begin{equation}\n$$ x $$\n\\end{equation}")
	f.Add("")
	f.Add("\xff\xfe\\textcolor{")

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	sequential := lint.NewScanner(registry.Rules())
	parallel := &lint.Scanner{Rules: registry.Rules(), Jobs: 4}

	f.Fuzz(func(t *testing.T, text string) {
		lines := strings.Split(text, "\n")
		original := slices.Clone(lines)

		got, err := sequential.Scan(context.Background(), lines)
		if err != nil {
			t.Fatalf("Scan: %v", err)
		}
		if !slices.Equal(lines, original) {
			t.Fatal("scan modified its input")
		}

		for _, viol := range got {
			if viol.Line < 1 || viol.Line > len(lines) {
				t.Fatalf("violation outside document: %+v", viol)
			}
			if viol.Column < 1 {
				t.Fatalf("non-positive column: %+v", viol)
			}
			if !viol.Severity.IsValid() {
				t.Fatalf("invalid severity: %+v", viol)
			}
		}

		again, err := parallel.Scan(context.Background(), lines)
		if err != nil {
			t.Fatalf("parallel Scan: %v", err)
		}
		if !slices.Equal(got, again) {
			t.Fatal("parallel scan order differs from sequential")
		}
	})
}
