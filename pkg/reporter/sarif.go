package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/yaklabco/beamerlint/pkg/lint"
	"github.com/yaklabco/beamerlint/pkg/runner"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes a rule (linter check).
type SARIFRule struct {
	ID               string               `json:"id"`
	Name             string               `json:"name,omitempty"`
	ShortDescription SARIFMultiformatText `json:"shortDescription,omitempty"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
	Properties       map[string]any       `json:"properties,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult represents a single violation.
type SARIFResult struct {
	RuleID     string          `json:"ruleId"`
	Level      string          `json:"level"`
	Message    SARIFMessage    `json:"message"`
	Locations  []SARIFLocation `json:"locations"`
	Fixes      []SARIFFix      `json:"fixes,omitempty"`
	Properties map[string]any  `json:"properties,omitempty"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

// SARIFFix represents a proposed fix.
type SARIFFix struct {
	Description     SARIFMessage          `json:"description"`
	ArtifactChanges []SARIFArtifactChange `json:"artifactChanges"`
}

// SARIFArtifactChange describes changes to a file.
type SARIFArtifactChange struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Replacements     []SARIFReplacement    `json:"replacements"`
}

// SARIFReplacement describes a text replacement.
type SARIFReplacement struct {
	DeletedRegion   SARIFRegion           `json:"deletedRegion"`
	InsertedContent *SARIFInsertedContent `json:"insertedContent,omitempty"`
}

// SARIFInsertedContent contains the replacement text.
type SARIFInsertedContent struct {
	Text string `json:"text"`
}

// SARIFReporter formats results as SARIF.
type SARIFReporter struct {
	opts Options
	out  io.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{
		opts: opts,
		out:  opts.Writer,
	}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.out)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}

	return len(output.Runs[0].Results), nil
}

func (r *SARIFReporter) buildOutput(result *runner.Result) *SARIFOutput {
	output := &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs: []SARIFRun{{
			Tool: SARIFTool{
				Driver: SARIFDriver{
					Name:           "beamerlint",
					Version:        r.opts.ToolVersion,
					InformationURI: "https://github.com/yaklabco/beamerlint",
					Rules:          make([]SARIFRule, 0),
				},
			},
			Results: make([]SARIFResult, 0),
		}},
	}

	if result == nil {
		return output
	}

	rulesSeen := make(map[string]bool)

	for _, file := range result.Files {
		if file.Error != nil {
			continue
		}
		uri := filepath.ToSlash(r.opts.displayPath(file.Path))

		for _, viol := range file.Violations {
			if !rulesSeen[viol.RuleID] {
				output.Runs[0].Tool.Driver.Rules = append(output.Runs[0].Tool.Driver.Rules, r.sarifRule(viol))
				rulesSeen[viol.RuleID] = true
			}

			region := SARIFRegion{
				StartLine:   viol.Line,
				StartColumn: viol.Column,
				EndLine:     viol.Line,
				EndColumn:   viol.Column + len(viol.Matched),
			}

			sarifResult := SARIFResult{
				RuleID:  viol.RuleID,
				Level:   severityToSARIFLevel(viol.Severity),
				Message: SARIFMessage{Text: viol.Message},
				Locations: []SARIFLocation{{
					PhysicalLocation: SARIFPhysicalLocation{
						ArtifactLocation: SARIFArtifactLocation{URI: uri},
						Region:           region,
					},
				}},
				Properties: map[string]any{
					"category": string(viol.Category),
					"severity": viol.Severity.String(),
				},
			}

			if viol.HasFix() {
				sarifResult.Fixes = []SARIFFix{{
					Description: SARIFMessage{Text: "Replace with " + viol.SuggestedFix},
					ArtifactChanges: []SARIFArtifactChange{{
						ArtifactLocation: SARIFArtifactLocation{URI: uri},
						Replacements: []SARIFReplacement{{
							DeletedRegion:   region,
							InsertedContent: &SARIFInsertedContent{Text: viol.SuggestedFix},
						}},
					}},
				}}
			}

			output.Runs[0].Results = append(output.Runs[0].Results, sarifResult)
		}
	}

	return output
}

func (r *SARIFReporter) sarifRule(viol lint.Violation) SARIFRule {
	rule := SARIFRule{
		ID:               viol.RuleID,
		ShortDescription: SARIFMultiformatText{Text: viol.Message},
		DefaultConfig:    &SARIFRuleConfig{Level: severityToSARIFLevel(viol.Severity)},
	}
	if registered, ok := r.opts.registry().Get(viol.RuleID); ok {
		rule.Name = registered.Name()
		rule.ShortDescription.Text = registered.Description()
		rule.Properties = map[string]any{"fixable": registered.CanFix()}
	}
	return rule
}

// severityToSARIFLevel converts a severity to a SARIF level.
func severityToSARIFLevel(severity lint.Severity) string {
	switch severity {
	case lint.SeverityCritical:
		return "error"
	case lint.SeverityImportant:
		return "warning"
	case lint.SeverityMinor:
		return "note"
	default:
		return "warning"
	}
}
