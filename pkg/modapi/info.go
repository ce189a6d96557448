package modapi

import (
	"context"
	"net/http"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// InfoClient accesses the guild-facing informational endpoints
type InfoClient struct {
	c *Client
}

// AddWebhook registers a Discord webhook with the moderation API so report
// notifications get delivered to the guild. Requires the guild's API key;
// a rejected key surfaces as *AuthError.
func (ic *InfoClient) AddWebhook(ctx context.Context, apikey string, webhook models.Webhook) error {
	payload := struct {
		WebhookID    string `json:"webhookId"`
		WebhookToken string `json:"webhookToken"`
	}{
		WebhookID:    webhook.ID,
		WebhookToken: webhook.Token,
	}
	return ic.c.do(ctx, http.MethodPost, "/informatics/webhook", apikey, payload, nil)
}
