package modapi

import (
	"context"
	"net/http"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// RulesClient accesses the read-only rule catalog
type RulesClient struct {
	c *Client
}

// FetchAll returns every rule known to the moderation API
func (rc *RulesClient) FetchAll(ctx context.Context) ([]models.Rule, error) {
	var rules []models.Rule
	if err := rc.c.do(ctx, http.MethodGet, "/rules", "", nil, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// ResolveID fetches a single rule by ID. Unknown IDs resolve to nil rather
// than an error so candidate filtering can silently drop them.
func (rc *RulesClient) ResolveID(ctx context.Context, id string) (*models.Rule, error) {
	var rule models.Rule
	err := rc.c.do(ctx, http.MethodGet, "/rules/"+id, "", nil, &rule)
	if err == errNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}
