package api

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/pthm/backlog/internal/backlog"
	"github.com/pthm/backlog/internal/hltb"
)

// MinQueryLength is the shortest accepted search term.
const MinQueryLength = 2

type searchError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type searchResults struct {
	Results []backlog.Game `json:"results"`
}

// Search handles GET /api/search?q=<title>[&steamid=<id>].
//
// The title search and the owned-games lookup run concurrently. A failing
// title search is logged and yields no results; a failing owned-games lookup
// fails the request.
func (h *Handler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	steamID := strings.TrimSpace(c.QueryParam("steamid"))

	if utf8.RuneCountInString(q) < MinQueryLength {
		return c.JSON(http.StatusBadRequest, searchError{
			Error: "Please enter a search term with at least 2 characters.",
		})
	}

	ctx := c.Request().Context()
	g, gctx := errgroup.WithContext(ctx)

	var found []hltb.Game
	g.Go(func() error {
		games, err := h.games.Search(gctx, q)
		if err != nil {
			h.log.ErrorContext(gctx, "game search failed", "query", q, "err", err)
			return nil
		}
		found = games
		return nil
	})

	var owned map[string]struct{}
	if steamID != "" && h.library != nil {
		g.Go(func() error {
			var err error
			owned, err = h.library.OwnedGames(gctx, steamID)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		h.log.ErrorContext(ctx, "owned games lookup failed", "steamid", steamID, "err", err)
		return c.JSON(http.StatusBadGateway, searchError{Error: "Could not load owned games from Steam."})
	}

	return c.JSON(http.StatusOK, searchResults{Results: h.enrich(found, owned)})
}

// enrich drops games without a main story time, applies the limit and marks
// owned games.
func (h *Handler) enrich(found []hltb.Game, owned map[string]struct{}) []backlog.Game {
	results := make([]backlog.Game, 0, h.limit)
	for _, g := range found {
		if len(results) == h.limit {
			break
		}
		if g.MainStory <= 0 {
			continue
		}
		_, isOwned := owned[strings.ToLower(g.Name)]
		results = append(results, backlog.Game{
			Name:      g.Name,
			MainStory: figure(g.MainStory),
			MainExtra: figure(g.MainExtra),
			Score:     score(g.ReviewScore),
			ImageURL:  g.ImageURL,
			Owned:     g.Name != "" && isOwned,
		})
	}
	return results
}

// figure formats hours the way the page shows them: "N/A" when unknown and
// always with a decimal part.
func figure(hours float64) backlog.Figure {
	if hours <= 0 {
		return backlog.TextFigure("N/A")
	}
	s := strconv.FormatFloat(hours, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return backlog.TextFigure(s)
}

func score(v int) backlog.Figure {
	if v <= 0 {
		return backlog.TextFigure("N/A")
	}
	return backlog.TextFigure(strconv.Itoa(v))
}
