package modapi

import (
	"context"
	"net/http"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// CommunitiesClient accesses the read-only community catalog
type CommunitiesClient struct {
	c *Client
}

// FetchAll returns every community registered with the moderation API
func (cc *CommunitiesClient) FetchAll(ctx context.Context) ([]models.Community, error) {
	var communities []models.Community
	if err := cc.c.do(ctx, http.MethodGet, "/communities", "", nil, &communities); err != nil {
		return nil, err
	}
	return communities, nil
}

// ResolveID fetches a single community by ID, returning nil when the ID is
// unknown to the API
func (cc *CommunitiesClient) ResolveID(ctx context.Context, id string) (*models.Community, error) {
	var community models.Community
	err := cc.c.do(ctx, http.MethodGet, "/communities/"+id, "", nil, &community)
	if err == errNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &community, nil
}
