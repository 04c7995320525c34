// Package hltb searches HowLongToBeat for completion times.
package hltb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"
)

// Game is a HowLongToBeat search hit. Times are in hours, rounded to two
// decimals; zero means no data.
type Game struct {
	Name        string
	MainStory   float64
	MainExtra   float64
	ReviewScore int
	ImageURL    string
}

// Client is a HowLongToBeat search client.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the site at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type searchRequest struct {
	SearchType    string        `json:"searchType"`
	SearchTerms   []string      `json:"searchTerms"`
	SearchPage    int           `json:"searchPage"`
	Size          int           `json:"size"`
	SearchOptions searchOptions `json:"searchOptions"`
}

type searchOptions struct {
	Games struct {
		UserID        int    `json:"userId"`
		Platform      string `json:"platform"`
		SortCategory  string `json:"sortCategory"`
		RangeCategory string `json:"rangeCategory"`
	} `json:"games"`
	Filter     string `json:"filter"`
	Sort       int    `json:"sort"`
	Randomizer int    `json:"randomizer"`
}

type searchResponse struct {
	Data []struct {
		Name        string `json:"game_name"`
		Image       string `json:"game_image"`
		CompMain    int    `json:"comp_main"`
		CompPlus    int    `json:"comp_plus"`
		ReviewScore int    `json:"review_score"`
	} `json:"data"`
}

// Search looks up query. Results come back in the site's relevance order.
func (c *Client) Search(ctx context.Context, query string) ([]Game, error) {
	body := searchRequest{
		SearchType:  "games",
		SearchTerms: strings.Fields(query),
		SearchPage:  1,
		Size:        20,
	}
	body.SearchOptions.Games.SortCategory = "popular"
	body.SearchOptions.Games.RangeCategory = "main"

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("hltb: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/search", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("hltb: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", c.baseURL+"/")
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; backlog)")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hltb: search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hltb: search: unexpected status %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("hltb: decode response: %w", err)
	}

	games := make([]Game, 0, len(out.Data))
	for _, d := range out.Data {
		g := Game{
			Name:        d.Name,
			MainStory:   hours(d.CompMain),
			MainExtra:   hours(d.CompPlus),
			ReviewScore: d.ReviewScore,
		}
		if d.Image != "" {
			g.ImageURL = c.baseURL + "/games/" + d.Image
		}
		games = append(games, g)
	}
	return games, nil
}

func hours(seconds int) float64 {
	return math.Round(float64(seconds)/3600*100) / 100
}
