// Package api serves the JSON search endpoint and the spreadsheet export
// endpoint the page talks to.
package api

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/pthm/backlog/internal/hltb"
)

// GameSearcher finds games by title.
type GameSearcher interface {
	Search(ctx context.Context, query string) ([]hltb.Game, error)
}

// Library reports the lowercased names of the games an account owns.
type Library interface {
	OwnedGames(ctx context.Context, steamID string) (map[string]struct{}, error)
}

// DefaultLimit caps the number of search results.
const DefaultLimit = 8

// Handler serves /api/search and /export.
type Handler struct {
	games   GameSearcher
	library Library
	limit   int
	log     *slog.Logger
}

// New creates a handler. library may be nil, in which case no game is ever
// marked as owned.
func New(games GameSearcher, library Library, limit int, log *slog.Logger) *Handler {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if log == nil {
		log = slog.Default()
	}
	return &Handler{games: games, library: library, limit: limit, log: log}
}

// Register adds the routes to e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/api/search", h.Search)
	e.POST("/export", h.Export)
}
