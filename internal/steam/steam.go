// Package steam reads a player's owned games from the Steam Web API.
package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultURL is the Steam Web API host.
const DefaultURL = "http://api.steampowered.com"

const requestTimeout = 15 * time.Second

// Client calls IPlayerService with an API key.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
}

// New returns a client for baseURL using key.
func New(baseURL, key string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type ownedGamesResponse struct {
	Response struct {
		Games []struct {
			AppID int    `json:"appid"`
			Name  string `json:"name"`
		} `json:"games"`
	} `json:"response"`
}

// OwnedGames returns the lowercased names of the games steamID owns,
// free-to-play titles included.
func (c *Client) OwnedGames(ctx context.Context, steamID string) (map[string]struct{}, error) {
	params := url.Values{
		"key":                       {c.key},
		"steamid":                   {steamID},
		"include_appinfo":           {"1"},
		"include_played_free_games": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/IPlayerService/GetOwnedGames/v0001/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("steam: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("steam: owned games: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("steam: owned games: unexpected status %d", resp.StatusCode)
	}

	var out ownedGamesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("steam: decode response: %w", err)
	}

	owned := make(map[string]struct{}, len(out.Response.Games))
	for _, g := range out.Response.Games {
		owned[strings.ToLower(g.Name)] = struct{}{}
	}
	return owned, nil
}
