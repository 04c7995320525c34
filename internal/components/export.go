package components

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/pthm/backlog/internal/backlog"
	"github.com/pthm/backlog/internal/hx"
)

// DownloadFilename is the name the exported workbook is saved under.
const DownloadFilename = "games_backlog.xlsx"

// DownloadURL is where a parked export is fetched from.
func DownloadURL(sessionID, token string) string {
	return "/download/" + sessionID + "/" + token
}

// Export is the export button.
type Export struct {
	*hx.Component[Props]
	sessions *backlog.Sessions
	exporter backlog.Exporter
	log      *slog.Logger
}

// NewExport creates a new Export component.
func NewExport(sessions *backlog.Sessions, exporter backlog.Exporter, log *slog.Logger) *Export {
	if log == nil {
		log = slog.Default()
	}
	c := &Export{sessions: sessions, exporter: exporter, log: log}
	c.Component = hx.New[Props]("export", c).Sensitive()
	c.Action("export", c.handleExport)
	return c
}

// Hydrate loads the session.
func (c *Export) Hydrate(ctx context.Context, props *Props) error {
	s, err := loadSession(c.sessions, props.SessionID)
	if err != nil {
		return err
	}
	props.Session = s
	return nil
}

// Render produces the HTML output.
func (c *Export) Render(ctx context.Context, props Props) templ.Component {
	return exportTemplate(c, props)
}

// handleExport builds the workbook and sends the browser to fetch it.
func (c *Export) handleExport(ctx context.Context, props Props, r *http.Request) hx.Result[Props] {
	token, err := props.Session.Export(ctx, c.exporter)

	var se *backlog.ServerError
	switch {
	case errors.Is(err, backlog.ErrEmptySelection):
		return hx.Skip[Props]().Flash(hx.FlashError, backlog.MsgEmptySelection)
	case errors.As(err, &se):
		return hx.Skip[Props]().Flash(hx.FlashError, backlog.MsgExportFailed+se.Message)
	case err != nil:
		c.log.ErrorContext(ctx, "export request failed", "session", props.SessionID, "err", err)
		return hx.Skip[Props]().Flash(hx.FlashError, backlog.MsgExportFailed+"the export service could not be reached.")
	}

	return hx.Redirect[Props](DownloadURL(props.SessionID, token))
}
