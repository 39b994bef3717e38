package rules

import (
	"github.com/yaklabco/beamerlint/pkg/config"
	"github.com/yaklabco/beamerlint/pkg/lint"
)

// RegisterAll registers all built-in rules with the given registry.
// Registration order is the catalog order.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewColorCommandRule())   // BL001
	registry.Register(NewSpacingCommandRule()) // BL002
	registry.Register(NewTextFormattingRule()) // BL003
	registry.Register(NewEquationRule())       // BL004
	registry.Register(NewBooktabsRule())       // BL005
	registry.Register(NewSubscriptRule())      // BL006
}

// RuleInfos describes the rules of a registry for config templates.
func RuleInfos(registry *lint.Registry) []config.RuleInfo {
	rules := registry.Rules()
	infos := make([]config.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		sevs := make([]string, 0, len(rule.Severities()))
		for _, sev := range rule.Severities() {
			sevs = append(sevs, sev.String())
		}
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Enabled:     rule.DefaultEnabled(),
			Severities:  sevs,
			CanFix:      rule.CanFix(),
		})
	}
	return infos
}

//nolint:gochecknoinits // Built-in rules register themselves with the default registry.
func init() {
	RegisterAll(lint.DefaultRegistry)
}
