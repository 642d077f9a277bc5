// Package client is a typed HTTP client for the flashdeck JSON API. It
// checks status codes and response shapes the same way the browser UI does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/flashdeck/internal/api"
	"github.com/phrazzld/flashdeck/internal/domain"
)

// DefaultBaseURL is where the server listens by default.
const DefaultBaseURL = "http://localhost:8088"

// ErrBadResponse is returned when a 200 response does not have the expected shape.
var ErrBadResponse = errors.New("unexpected response shape")

// APIError is a non-200 response. Message is the plain-text body.
type APIError struct {
	Path       string
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.Path, e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to a flashdeck server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListDecks returns deck names in creation order.
func (c *Client) ListDecks(ctx context.Context) ([]string, error) {
	var resp struct {
		FlashcardDeckNames *[]string `json:"flashcardDeckNames"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/listDecks", nil, &resp); err != nil {
		return nil, err
	}
	if resp.FlashcardDeckNames == nil {
		return nil, fmt.Errorf("listDecks: %w: flashcardDeckNames is not an array", ErrBadResponse)
	}
	return *resp.FlashcardDeckNames, nil
}

// ListScores returns scores in recording order.
func (c *Client) ListScores(ctx context.Context) ([]domain.Score, error) {
	var resp struct {
		Scores *[]domain.Score `json:"scores"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/listScores", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Scores == nil {
		return nil, fmt.Errorf("listScores: %w: scores is not an array", ErrBadResponse)
	}
	return *resp.Scores, nil
}

// LoadDeck returns the cards of the named deck.
func (c *Client) LoadDeck(ctx context.Context, name string) ([]domain.Card, error) {
	var resp struct {
		DeckName string         `json:"deckName"`
		Value    *[]domain.Card `json:"value"`
	}
	path := "/api/loadDeck?deckName=" + url.QueryEscape(name)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Value == nil {
		return nil, fmt.Errorf("loadDeck: %w: value is not an array", ErrBadResponse)
	}
	return *resp.Value, nil
}

// SaveDeck creates a deck.
func (c *Client) SaveDeck(ctx context.Context, name string, cards []domain.Card) error {
	req := api.SaveDeckRequest{Name: name, Value: cards}
	var resp api.SaveDeckResponse
	return c.do(ctx, http.MethodPost, "/api/saveDeck", req, &resp)
}

// SaveScore records a score.
func (c *Client) SaveScore(ctx context.Context, username, deckName string, percentage int) error {
	req := api.SaveScoreRequest{Name: username, DeckName: deckName, Percentage: percentage}
	var resp api.SaveScoreResponse
	return c.do(ctx, http.MethodPost, "/api/saveScore", req, &resp)
}

// GenerateDeck asks the server to build cards from notes. Nothing is saved.
func (c *Client) GenerateDeck(ctx context.Context, text string) ([]domain.Card, error) {
	req := api.GenerateDeckRequest{Text: text}
	var resp struct {
		Value *[]domain.Card `json:"value"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/generateDeck", req, &resp); err != nil {
		return nil, err
	}
	if resp.Value == nil {
		return nil, fmt.Errorf("generateDeck: %w: value is not an array", ErrBadResponse)
	}
	return *resp.Value, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		message, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			Path:       endpoint(path),
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(message)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: %v", endpoint(path), ErrBadResponse, err)
	}
	return nil
}

func endpoint(path string) string {
	path, _, _ = strings.Cut(path, "?")
	return path
}
