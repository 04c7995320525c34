// Package client calls the search and export endpoints on behalf of a
// session.
package client

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

	"github.com/pthm/backlog/internal/backlog"
)

// Client talks to the backend over HTTP. It satisfies backlog.Searcher and
// backlog.Exporter.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for baseURL. A zero timeout means requests are only
// bounded by their context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type searchResponse struct {
	Results []backlog.Game `json:"results"`
	Error   string         `json:"error"`
}

// Search issues GET /api/search. A non-2xx reply becomes *backlog.ServerError
// carrying the body's error field; any other failure is a transport or
// decoding error.
func (c *Client) Search(ctx context.Context, query, externalID string) ([]backlog.Game, error) {
	params := url.Values{"q": {query}}
	if externalID != "" {
		params.Set("steamid", externalID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("client: build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: search: %w", err)
	}
	defer resp.Body.Close()

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("client: decode search response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &backlog.ServerError{Status: resp.StatusCode, Message: body.Error}
	}

	// Records without a name cannot be keyed.
	games := body.Results[:0]
	for _, g := range body.Results {
		if g.Name != "" {
			games = append(games, g)
		}
	}
	return games, nil
}

// Export issues POST /export and returns the spreadsheet bytes. A non-2xx
// reply becomes *backlog.ServerError carrying the body text.
func (c *Client) Export(ctx context.Context, payload backlog.ExportPayload) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("client: encode export payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/export", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("client: build export request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: export: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: read export response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &backlog.ServerError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}
	return body, nil
}
