package communities

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// FindCommunity looks up a community by ID in the fetched catalog
func FindCommunity(catalog []models.Community, id string) *models.Community {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

// AddCandidates filters the requested IDs down to the ones worth adding:
// the ID must exist in the remote catalog and must not already be trusted.
// Order follows the arguments; repeated tokens collapse to one.
func AddCandidates(args []string, catalog []models.Community, cfg *models.GuildConfig) []string {
	seen := make(map[string]bool, len(args))
	var candidates []string
	for _, id := range args {
		if seen[id] {
			continue
		}
		seen[id] = true
		if FindCommunity(catalog, id) == nil {
			continue
		}
		if cfg.HasTrustedCommunity(id) {
			continue
		}
		candidates = append(candidates, id)
	}
	return candidates
}

// RemoveCandidates filters the requested IDs down to the ones currently
// trusted; IDs not in the filter are dropped silently.
func RemoveCandidates(args []string, cfg *models.GuildConfig) []string {
	seen := make(map[string]bool, len(args))
	var candidates []string
	for _, id := range args {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !cfg.HasTrustedCommunity(id) {
			continue
		}
		candidates = append(candidates, id)
	}
	return candidates
}
