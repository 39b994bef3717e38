package lint

import "github.com/yaklabco/beamerlint/pkg/config"

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// AutoFix indicates whether the rule's suggested fixes may be applied.
	AutoFix bool
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules, in catalog order.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
// Config keys may name a rule by ID or by name.
func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:    rule,
		Enabled: rule.DefaultEnabled(),
		AutoFix: rule.CanFix(),
	}

	if cfg == nil {
		return rr
	}

	for _, key := range []string{rule.ID(), rule.Name()} {
		ruleCfg, ok := cfg.Rules[key]
		if !ok {
			continue
		}
		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.AutoFix != nil {
			rr.AutoFix = *ruleCfg.AutoFix && rule.CanFix()
		}
	}

	// CLI flags take precedence over config files.
	for _, key := range cfg.EnableRules {
		if key == rule.ID() || key == rule.Name() {
			rr.Enabled = true
		}
	}
	for _, key := range cfg.DisableRules {
		if key == rule.ID() || key == rule.Name() {
			rr.Enabled = false
		}
	}

	return rr
}

// Rules extracts the rules from a resolved set.
func Rules(resolved []ResolvedRule) []Rule {
	out := make([]Rule, 0, len(resolved))
	for _, rr := range resolved {
		out = append(out, rr.Rule)
	}
	return out
}

// FixableRuleIDs returns the IDs of resolved rules whose fixes may be applied.
func FixableRuleIDs(resolved []ResolvedRule) map[string]bool {
	out := make(map[string]bool, len(resolved))
	for _, rr := range resolved {
		if rr.AutoFix {
			out[rr.Rule.ID()] = true
		}
	}
	return out
}
