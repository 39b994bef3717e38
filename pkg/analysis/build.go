package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/beamerlint/pkg/config"
	"github.com/yaklabco/beamerlint/pkg/lint"
	"github.com/yaklabco/beamerlint/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	ruleMap   map[string]*RuleAnalysis
	fileMap   map[string]*FileAnalysis
	ruleFiles map[string]map[string]bool
	fileRules map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		ruleMap:   make(map[string]*RuleAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		ruleFiles: make(map[string]map[string]bool),
		fileRules: make(map[string]map[string]bool),
	}
}

// add increments the counter matching sev.
func (t *SeverityTotals) add(sev lint.Severity) {
	switch sev {
	case lint.SeverityCritical:
		t.Critical++
	case lint.SeverityImportant:
		t.Important++
	case lint.SeverityMinor:
		t.Minor++
	}
}

// Count returns the counter matching sev.
func (t SeverityTotals) Count(sev lint.Severity) int {
	switch sev {
	case lint.SeverityCritical:
		return t.Critical
	case lint.SeverityImportant:
		return t.Important
	case lint.SeverityMinor:
		return t.Minor
	default:
		return 0
	}
}

func (ctx *analysisContext) fileAnalysis(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileRules[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

func (ctx *analysisContext) ruleAnalysis(ruleID, rule string) *RuleAnalysis {
	if _, ok := ctx.ruleMap[ruleID]; !ok {
		ctx.ruleMap[ruleID] = &RuleAnalysis{RuleID: ruleID, Rule: rule}
		ctx.ruleFiles[ruleID] = make(map[string]bool)
	}
	return ctx.ruleMap[ruleID]
}

func (ctx *analysisContext) buildByRule(opts Options) []RuleAnalysis {
	result := make([]RuleAnalysis, 0, len(ctx.ruleMap))
	for ruleID, ra := range ctx.ruleMap {
		for f := range ctx.ruleFiles[ruleID] {
			ra.Files = append(ra.Files, f)
		}
		slices.Sort(ra.Files)
		result = append(result, *ra)
	}
	sortRuleAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range ctx.fileMap {
		if fa.Violations == 0 {
			continue
		}
		for r := range ctx.fileRules[path] {
			fa.Rules = append(fa.Rules, r)
		}
		slices.Sort(fa.Rules)
		result = append(result, *fa)
	}
	sortFileAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// ruleLabel formats a rule ID for display using the registry to find its name.
func ruleLabel(opts Options, ruleID string) string {
	name := ""
	if rule, ok := opts.registry().Get(ruleID); ok {
		name = rule.Name()
	}
	return config.FormatRuleID(opts.RuleFormat, ruleID, name)
}

// Entry converts a violation into its report form.
func Entry(viol lint.Violation, opts Options) ViolationEntry {
	return ViolationEntry{
		RuleID:       viol.RuleID,
		Rule:         ruleLabel(opts, viol.RuleID),
		Category:     string(viol.Category),
		Severity:     viol.Severity.String(),
		Line:         viol.Line,
		Column:       viol.Column,
		Message:      viol.Message,
		Matched:      viol.Matched,
		SuggestedFix: viol.SuggestedFix,
		Eligible:     viol.Eligible(),
	}
}

// BuildReport transforms a runner.Result into a Report.
// It performs a single pass through the violations to compute all views.
func BuildReport(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	report.Fixing = result.Fixing
	ctx := newAnalysisContext()

	for _, file := range result.Files {
		report.Totals.Files++
		displayPath := makeRelativePath(file.Path, opts.WorkingDir)
		entry := FileReport{Path: displayPath, Violations: []ViolationEntry{}}

		if file.Error != nil {
			report.Totals.FilesErrored++
			entry.Error = file.Error.Error()
			report.Files = append(report.Files, entry)
			continue
		}

		if file.Document != nil {
			entry.Language = file.Document.Language
			entry.Dialect = file.Document.Dialect
			entry.Lines = file.Document.LineCount()
		}
		if len(file.Violations) > 0 {
			report.Totals.FilesWithViolations++
		}

		fa := ctx.fileAnalysis(displayPath)
		for _, viol := range file.Violations {
			report.Totals.Violations++
			report.Totals.add(viol.Severity)
			entry.Counts.add(viol.Severity)
			fa.add(viol.Severity)
			fa.Violations++
			ctx.fileRules[displayPath][viol.RuleID] = true

			ra := ctx.ruleAnalysis(viol.RuleID, ruleLabel(opts, viol.RuleID))
			ra.Violations++
			ra.add(viol.Severity)
			if viol.HasFix() {
				report.Totals.Fixable++
				ra.Fixable = true
			}
			ctx.ruleFiles[viol.RuleID][displayPath] = true

			entry.Violations = append(entry.Violations, Entry(viol, opts))
		}

		if file.Fix != nil {
			entry.Fix = buildFixReport(file, opts)
			report.Totals.Eligible += file.Fix.Eligible
			report.Totals.Applied += file.Fix.Applied
			report.Totals.Skipped += len(file.Fix.Skipped)
		}

		report.Files = append(report.Files, entry)
	}

	if opts.IncludeByRule {
		report.ByRule = ctx.buildByRule(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

func buildFixReport(file runner.FileOutcome, opts Options) *FixReport {
	fr := &FixReport{
		Eligible: file.Fix.Eligible,
		Applied:  file.Fix.Applied,
	}
	if file.OutputPath != "" {
		fr.OutputPath = makeRelativePath(file.OutputPath, opts.WorkingDir)
	}
	for _, skip := range file.Fix.Skipped {
		fr.Skipped = append(fr.Skipped, SkipEntry{
			RuleID:  skip.Violation.RuleID,
			Line:    skip.Violation.Line,
			Matched: skip.Violation.Matched,
			Reason:  string(skip.Reason),
		})
	}
	return fr
}

func sortRuleAnalysis(rules []RuleAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(rules, func(left, right RuleAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending
			return cmp.Compare(left.RuleID, right.RuleID)
		case SortBySeverity:
			return compareSeverity(left.SeverityTotals, right.SeverityTotals,
				left.Violations, right.Violations, left.RuleID, right.RuleID)
		default:
			return compareCount(left.Violations, right.Violations, desc, left.RuleID, right.RuleID)
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Path, right.Path)
		case SortBySeverity:
			return compareSeverity(left.SeverityTotals, right.SeverityTotals,
				left.Violations, right.Violations, left.Path, right.Path)
		default:
			return compareCount(left.Violations, right.Violations, desc, left.Path, right.Path)
		}
	})
}

// compareSeverity orders Critical first, then Important, then total count.
// Keys break ties so the output is deterministic.
func compareSeverity(left, right SeverityTotals, leftTotal, rightTotal int, leftKey, rightKey string) int {
	if c := cmp.Compare(right.Critical, left.Critical); c != 0 {
		return c
	}
	if c := cmp.Compare(right.Important, left.Important); c != 0 {
		return c
	}
	if c := cmp.Compare(rightTotal, leftTotal); c != 0 {
		return c
	}
	return cmp.Compare(leftKey, rightKey)
}

func compareCount(left, right int, desc bool, leftKey, rightKey string) int {
	result := cmp.Compare(left, right)
	if desc {
		result = -result
	}
	if result == 0 {
		result = cmp.Compare(leftKey, rightKey)
	}
	return result
}
