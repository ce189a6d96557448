// Package modapi is the HTTP client for the shared moderation API.
// It exposes the read-only community and rule catalogs plus the webhook
// registration endpoint consumed by the bot's commands.
package modapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// AuthError is returned when the API rejects the guild's stored API key.
// Commands match it with errors.As to report the specific "key not
// recognized" message instead of a generic failure.
type AuthError struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api key rejected (status %d)", e.Status)
	}
	return fmt.Sprintf("api key rejected (status %d): %s", e.Status, e.Message)
}

// errNotFound marks a 404 so resolve-by-ID lookups can map it to a nil
// entity instead of an error.
var errNotFound = fmt.Errorf("entity not found")

// Client talks to the moderation API. Every call is attempted exactly
// once; retry policy belongs to the user confirming the action again.
type Client struct {
	baseURL string
	http    *http.Client

	Communities *CommunitiesClient
	Rules       *RulesClient
	Info        *InfoClient
}

var (
	client *Client
	once   sync.Once
)

// Init initializes the global API client
func Init(baseURL string) *Client {
	once.Do(func() {
		client = NewClient(baseURL)
	})
	return client
}

// Get returns the global API client
func Get() *Client {
	return client
}

// NewClient creates a new moderation API client
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	c.Communities = &CommunitiesClient{c: c}
	c.Rules = &RulesClient{c: c}
	c.Info = &InfoClient{c: c}
	return c
}

// do performs a single request. apikey is attached as an Authorization
// token when non-empty; out is decoded from the JSON response when non-nil.
func (c *Client) do(ctx context.Context, method, path, apikey string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apikey != "" {
		req.Header.Set("Authorization", "Token "+apikey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("moderation api unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		msg := readErrorMessage(resp.Body)
		logger.Warn(fmt.Sprintf("API %s %s returned %d: %s", method, path, resp.StatusCode, msg), "ModAPI")
		return fmt.Errorf("moderation api returned %d: %s", resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readErrorMessage pulls the "message" field out of an error payload,
// falling back to the raw body
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(data))
}
