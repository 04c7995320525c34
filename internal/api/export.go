package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pthm/backlog/internal/backlog"
	"github.com/pthm/backlog/internal/sheet"
)

// ExportFilename is the attachment name of the workbook.
const ExportFilename = "game_backlog.xlsx"

// Export handles POST /export with a JSON {games:[...]} body and replies
// with the workbook as an attachment.
func (h *Handler) Export(c echo.Context) error {
	var payload backlog.ExportPayload
	if err := c.Bind(&payload); err != nil {
		h.log.WarnContext(c.Request().Context(), "bad export payload", "err", err)
		return c.String(http.StatusBadRequest, "Invalid export payload.")
	}

	data, err := sheet.Build(payload.Games)
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "build workbook failed", "games", len(payload.Games), "err", err)
		return c.String(http.StatusInternalServerError, "Could not build the spreadsheet.")
	}

	h.log.InfoContext(c.Request().Context(), "exported backlog", "games", len(payload.Games), "bytes", len(data))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+ExportFilename+`"`)
	return c.Blob(http.StatusOK, sheet.ContentType, data)
}
