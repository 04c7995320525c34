package components

import (
	"log/slog"

	"github.com/pthm/backlog/internal/backlog"
	"github.com/pthm/backlog/internal/hx"
)

// Catalog is the backend the page searches and exports through.
type Catalog interface {
	backlog.Searcher
	backlog.Exporter
}

// App groups the page's components.
type App struct {
	Results   *Results
	Selection *Selection
	Modal     *Modal
	Export    *Export
}

// Init creates every component with its dependencies and registers them.
// Call this once at application startup before handling requests.
func Init(reg *hx.Registry, sessions *backlog.Sessions, catalog Catalog, log *slog.Logger) *App {
	modal := NewModal(sessions)
	app := &App{
		Results:   NewResults(sessions, catalog, modal),
		Selection: NewSelection(sessions),
		Modal:     modal,
		Export:    NewExport(sessions, catalog, log),
	}
	reg.Add(app.Results, app.Selection, app.Modal, app.Export)
	return app
}
