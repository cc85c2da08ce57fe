package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mcoot/decklist-exporter/internal/model"
)

// Client is an HTTP client for the decklist backend API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the request timeout of the underlying http.Client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a new API client
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListPlayers fetches every player known to the backend
func (c *Client) ListPlayers(ctx context.Context) ([]model.Player, error) {
	var players []model.Player
	if err := c.do(ctx, http.MethodGet, "/api/players", nil, &players); err != nil {
		return nil, err
	}
	if players == nil {
		players = []model.Player{}
	}
	return players, nil
}

// UpdatePlayer applies a partial update to a player
func (c *Client) UpdatePlayer(ctx context.Context, id model.PlayerID, update model.PlayerUpdate) (*model.Player, error) {
	var player model.Player
	if err := c.do(ctx, http.MethodPut, playerPath(id), update, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// DeletePlayer removes a player
func (c *Client) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	return c.do(ctx, http.MethodDelete, playerPath(id), nil, nil)
}

// SubmitDeck exports a decklist code and returns the resolved deck
func (c *Client) SubmitDeck(ctx context.Context, sub model.DeckSubmission) (*model.Deck, error) {
	var deck model.Deck
	if err := c.do(ctx, http.MethodPost, "/api/decks", sub, &deck); err != nil {
		return nil, err
	}
	return &deck, nil
}

func playerPath(id model.PlayerID) string {
	return "/api/players/" + url.PathEscape(string(id))
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
