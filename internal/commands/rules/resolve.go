package rules

import (
	"strconv"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// FindRule looks up a rule by ID in the fetched catalog
func FindRule(catalog []models.Rule, id string) *models.Rule {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

// AddCandidates filters the requested IDs down to the ones worth adding:
// the ID must exist in the remote catalog and must not already be filtered.
// Order follows the arguments; repeated tokens collapse to one.
func AddCandidates(args []string, catalog []models.Rule, cfg *models.GuildConfig) []string {
	seen := make(map[string]bool, len(args))
	var candidates []string
	for _, id := range args {
		if seen[id] {
			continue
		}
		seen[id] = true
		if FindRule(catalog, id) == nil {
			continue
		}
		if cfg.HasRuleFilter(id) {
			continue
		}
		candidates = append(candidates, id)
	}
	return candidates
}

// RemoveCandidates resolves removal tokens against the guild's current
// filter ordering. Numeric tokens are 1-based positions into ruleFilters;
// anything else is a literal rule ID. Tokens that resolve to nothing, to a
// rule absent from the catalog or to a rule not currently filtered are
// dropped silently.
func RemoveCandidates(args []string, catalog []models.Rule, cfg *models.GuildConfig) []models.Rule {
	seen := make(map[string]bool, len(args))
	var candidates []models.Rule
	for _, token := range args {
		id := token
		if pos, err := strconv.Atoi(token); err == nil {
			resolved, ok := cfg.RuleAtPosition(pos)
			if !ok {
				continue
			}
			id = resolved
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		rule := FindRule(catalog, id)
		if rule == nil {
			continue
		}
		if !cfg.HasRuleFilter(rule.ID) {
			continue
		}
		candidates = append(candidates, *rule)
	}
	return candidates
}
