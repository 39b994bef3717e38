package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/beamerlint/internal/logging"
	"github.com/yaklabco/beamerlint/pkg/config"
	"github.com/yaklabco/beamerlint/pkg/lint"
)

type rulesFlags struct {
	ruleFormat string
	format     string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Severities  []string `json:"severities"`
	Fixable     bool     `json:"fixable"`
	Enabled     bool     `json:"enabled"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the style rules",
		Long: `List every style rule in catalog order with its ID, the severities it
reports, and whether it proposes fixes. Only Critical and Important
fixes are ever applied.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()

			switch flags.format {
			case formatJSON:
				return outputRulesJSON(cmd.OutOrStdout(), rules)
			case "text":
			default:
				return fmt.Errorf("%w: unknown format %q; valid formats: text, json", ErrInvalidUsage, flags.format)
			}

			logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")

			if len(rules) == 0 {
				logger.Info("no rules registered")
				return nil
			}

			ruleFormat := config.RuleFormat(flags.ruleFormat)
			for _, rule := range rules {
				fixable := "-"
				if rule.CanFix() {
					fixable = "yes"
				}

				logger.Info(config.FormatRuleID(ruleFormat, rule.ID(), rule.Name()),
					logging.FieldSeverity, strings.Join(severityNames(rule), ","),
					logging.FieldFixable, fixable,
					logging.FieldDescription, rule.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "combined",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

func severityNames(rule lint.Rule) []string {
	sevs := rule.Severities()
	names := make([]string, 0, len(sevs))
	for _, sev := range sevs {
		names = append(names, sev.String())
	}
	return names
}

// outputRulesJSON writes rules as a JSON array.
func outputRulesJSON(w io.Writer, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		categories := make([]string, 0, len(rule.Categories()))
		for _, cat := range rule.Categories() {
			categories = append(categories, string(cat))
		}
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Categories:  categories,
			Severities:  severityNames(rule),
			Fixable:     rule.CanFix(),
			Enabled:     rule.DefaultEnabled(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
