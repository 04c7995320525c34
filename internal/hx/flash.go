package hx

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Flash levels for toast notifications.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash represents a one-time notification message. It stands in for the
// browser alert(): every user-facing failure that is not part of a
// component's own markup is reported this way.
type Flash struct {
	Level   string // success, error, info
	Message string
}

// RenderFlashesOOB renders flashes as an out-of-band swap appended to #toasts.
//
// The data-auto-dismiss attribute is read by the page script, which removes
// the toast after the given delay (milliseconds).
func RenderFlashesOOB(flashes []Flash) string {
	if len(flashes) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<div id="toasts" hx-swap-oob="beforeend">`)

	for _, f := range flashes {
		sb.WriteString(`<div class="toast toast-`)
		sb.WriteString(html.EscapeString(f.Level))
		sb.WriteString(`" role="alert" data-auto-dismiss="5000">`)
		sb.WriteString(html.EscapeString(f.Message))
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}

// ToastContainer returns the container flash messages are swapped into.
// Add it once to the page layout.
func ToastContainer() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="toasts" class="toast-container" aria-live="polite"></div>`)
		return err
	})
}
