//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const (
	binary  = "bin/beamerlint"
	mainPkg = "./cmd/beamerlint"
	sample  = "testdata/sample.tex"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":     Build,
	"t":     Test.Default,
	"l":     Lint.Default,
	"c":     Check,
	"i":     Install,
	"fmt":   Lint.Fmt,
	"fuzz":  Test.Fuzz,
	"smoke": Test.Smoke,
}

type (
	Test st.Namespace
	Lint st.Namespace
	CI   st.Namespace
)

// fuzzTargets lists every fuzz function by package.
//
//nolint:gochecknoglobals // Read-only lookup table.
var fuzzTargets = []struct{ pkg, name string }{
	{"./pkg/fix", "FuzzApply"},
	{"./pkg/fix", "FuzzGenerateDiff"},
	{"./pkg/fsutil", "FuzzWriteAtomic"},
	{"./pkg/lint", "FuzzScan"},
	{"./pkg/source", "FuzzNormalize"},
}

// releasePlatforms are the GOOS/GOARCH pairs CI cross-compiles.
//
//nolint:gochecknoglobals // Read-only lookup table.
var releasePlatforms = []string{
	"linux/amd64", "linux/arm64",
	"darwin/amd64", "darwin/arm64",
	"windows/amd64",
}

// Build compiles bin/beamerlint with version info, skipping up-to-date builds.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	fmt.Println("Building beamerlint...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, mainPkg)
}

// Check formats, lints, tests, then smoke-tests the binary.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default, Test.Smoke)
}

// Clean removes build and coverage output.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install runs go install with version info.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Coverage writes coverage.html from a full test run.
func Coverage() error {
	st.Deps(Test.Default)
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Default runs the race-enabled suite with coverage.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails")
}

// Verbose is Default with every test name printed.
func (Test) Verbose() error {
	return gotestsum("standard-verbose")
}

// Fuzz runs each fuzz target for FUZZTIME (default 20s).
func (Test) Fuzz() error {
	fuzzTime := cmp.Or(os.Getenv("FUZZTIME"), "20s")
	for _, tgt := range fuzzTargets {
		fmt.Printf("Fuzzing %s in %s for %s...\n", tgt.name, tgt.pkg, fuzzTime)
		err := sh.RunV("go", "test", "-run", "^$", "-fuzz", "^"+tgt.name+"$", "-fuzztime", fuzzTime, tgt.pkg)
		if err != nil {
			return fmt.Errorf("fuzz %s: %w", tgt.name, err)
		}
	}
	return nil
}

// Smoke runs the built binary against the sample deck. The deck has
// violations, so check must exit 1 and a dry run must print a diff.
func (Test) Smoke() error {
	st.Deps(Build)

	if code, _ := runBinary("check", "--color", "never", sample); code != 1 {
		return fmt.Errorf("check %s: exit status %d, want 1", sample, code)
	}

	code, out := runBinary("check", "--dry-run", "--color", "never", sample)
	if code != 1 {
		return fmt.Errorf("dry run: exit status %d, want 1", code)
	}
	if !strings.Contains(out, `+  \begin{equation*}`) || !strings.Contains(out, `+  \end{equation*}`) {
		return fmt.Errorf("dry run diff does not star both equation tags:\n%s", out)
	}

	if code, out := runBinary("rules", "--format", "json"); code != 0 || !strings.Contains(out, `"BL006"`) {
		return fmt.Errorf("rules: exit status %d, output:\n%s", code, out)
	}

	fmt.Println("✓ Smoke check OK")
	return nil
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck fails when any file needs gofmt.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s\nrun 'stave lint:fmt'", out)
	}
	return nil
}

// Gate runs every CI check without modifying the tree.
func (CI) Gate() {
	st.SerialDeps(
		Lint.FmtCheck,
		CI.Vet,
		CI.Lint,
		Build,
		Test.Default,
		Test.Smoke,
		CI.ModTidy,
		CI.Cross,
	)
}

// Vet runs go vet.
func (CI) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Lint runs golangci-lint without auto-fix.
func (CI) Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// ModTidy fails when go mod tidy would change go.mod or go.sum.
func (CI) ModTidy() error {
	before, err := readModFiles()
	if err != nil {
		return err
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	after, err := readModFiles()
	if err != nil {
		return err
	}
	if !bytes.Equal(before, after) {
		return errors.New("go.mod or go.sum changed after 'go mod tidy'")
	}
	return nil
}

// Cross builds the binary for every release platform.
func (CI) Cross() error {
	for _, platform := range releasePlatforms {
		goos, goarch, _ := strings.Cut(platform, "/")
		env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}
		if err := sh.RunWith(env, "go", "build", "-o", os.DevNull, mainPkg); err != nil {
			return fmt.Errorf("build %s: %w", platform, err)
		}
	}
	return nil
}

func gotestsum(format string) error {
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go",
		"tool", "gotestsum",
		"-f", format,
		"--",
		"-race",
		"-p", nCores,
		"-parallel", nCores,
		"./...",
		"-coverprofile=coverage.out",
		"-covermode=atomic",
	)
}

// runBinary runs the built binary and returns its exit status and stdout.
// A binary that cannot start reports status -1.
func runBinary(args ...string) (int, string) {
	var stdout bytes.Buffer
	cmd := exec.Command(binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, stdout.String()
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), stdout.String()
	default:
		return -1, stdout.String()
	}
}

func readModFiles() ([]byte, error) {
	mod, err := os.ReadFile("go.mod")
	if err != nil {
		return nil, fmt.Errorf("read go.mod: %w", err)
	}
	sum, err := os.ReadFile("go.sum")
	if err != nil {
		return nil, fmt.Errorf("read go.sum: %w", err)
	}
	return append(mod, sum...), nil
}

// ldflags injects version, commit and build date into main.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s", version, commit, date)
}

func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}
