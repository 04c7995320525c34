package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pthm/backlog/internal/backlog"
	"github.com/pthm/backlog/internal/components"
	"github.com/pthm/backlog/internal/sheet"
)

// Pages serves the page itself and parked exports.
type Pages struct {
	sessions *backlog.Sessions
	app      *components.App
}

// NewPages creates the page handlers.
func NewPages(sessions *backlog.Sessions, app *components.App) *Pages {
	return &Pages{sessions: sessions, app: app}
}

// Register adds the routes to e.
func (p *Pages) Register(e *echo.Echo) {
	e.GET("/", p.Index)
	e.GET("/download/:sid/:token", p.Download)
}

// Index starts a fresh session for every page load.
func (p *Pages) Index(c echo.Context) error {
	s := p.sessions.New()
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return Render(c, p.app.Page(s))
}

// Download hands out an exported workbook once.
func (p *Pages) Download(c echo.Context) error {
	s, err := p.sessions.Get(c.Param("sid"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "download not found")
	}
	data, ok := s.TakeDownload(c.Param("token"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "download not found")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+components.DownloadFilename+`"`)
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.Blob(http.StatusOK, sheet.ContentType, data)
}
