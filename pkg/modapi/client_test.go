package modapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

func webhookFixture() models.Webhook {
	return models.Webhook{ID: "wh-1", Token: "tok-1"}
}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL), server
}

func TestCommunitiesFetchAll(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/communities" {
			t.Errorf("path = %v, want %v", r.URL.Path, "/communities")
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header to be set")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"XuciBx7","name":"Alpha","contact":"mod#0001"},{"id":"XuciBx9","name":"Beta","contact":"mod#0002"}]`))
	})
	defer server.Close()

	communities, err := client.Communities.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() returned error: %v", err)
	}

	if len(communities) != 2 {
		t.Fatalf("len(communities) = %v, want %v", len(communities), 2)
	}
	if communities[0].ID != "XuciBx7" || communities[0].Name != "Alpha" {
		t.Errorf("communities[0] = %+v, want ID XuciBx7 / Name Alpha", communities[0])
	}
}

func TestRulesResolveIDUnknownIsNil(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	defer server.Close()

	rule, err := client.Rules.ResolveID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("ResolveID() returned error: %v", err)
	}
	if rule != nil {
		t.Errorf("rule = %+v, want nil for an unknown ID", rule)
	}
}

func TestRulesResolveIDKnown(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rules/r1" {
			t.Errorf("path = %v, want %v", r.URL.Path, "/rules/r1")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"r1","shortdesc":"Griefing","longdesc":"Destroying another player's base"}`))
	})
	defer server.Close()

	rule, err := client.Rules.ResolveID(context.Background(), "r1")
	if err != nil {
		t.Fatalf("ResolveID() returned error: %v", err)
	}
	if rule == nil {
		t.Fatal("rule is nil, want a resolved rule")
	}
	if rule.ShortDesc != "Griefing" {
		t.Errorf("ShortDesc = %v, want %v", rule.ShortDesc, "Griefing")
	}
}

func TestAddWebhookSendsAuthorization(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %v, want %v", r.Method, http.MethodPost)
		}
		if got := r.Header.Get("Authorization"); got != "Token secret-key" {
			t.Errorf("Authorization = %v, want %v", got, "Token secret-key")
		}
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	err := client.Info.AddWebhook(context.Background(), "secret-key", webhookFixture())
	if err != nil {
		t.Fatalf("AddWebhook() returned error: %v", err)
	}
}

func TestAddWebhookAuthRejected(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid api key"}`))
	})
	defer server.Close()

	err := client.Info.AddWebhook(context.Background(), "bad-key", webhookFixture())
	if err == nil {
		t.Fatal("AddWebhook() returned nil, want *AuthError")
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error type = %T, want *AuthError", err)
	}
	if authErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %v, want %v", authErr.Status, http.StatusUnauthorized)
	}
	if authErr.Message != "invalid api key" {
		t.Errorf("Message = %v, want %v", authErr.Message, "invalid api key")
	}
}

func TestServerErrorIsNotAuthError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.Rules.FetchAll(context.Background())
	if err == nil {
		t.Fatal("FetchAll() returned nil, want error")
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		t.Error("a 500 response must not be classified as an auth rejection")
	}
}
