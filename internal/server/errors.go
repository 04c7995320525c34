package server

import (
	"log/slog"
	"net/http"

	"github.com/pthm/backlog/internal/hx"
)

// Toast texts shown when a component request fails.
const (
	MsgSessionExpired = "This page has expired. Reload to start again."
	MsgBadRequest     = "That request could not be read. Reload the page."
	MsgInternal       = "Something went wrong. Check the server log."
)

// onError reports component failures. htmx ignores error statuses, so an
// htmx request gets a 200 that swaps nothing and shows a toast instead.
func onError(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		status, msg := classify(err)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.Log(r.Context(), level, "component request failed",
			"method", r.Method, "path", r.URL.Path, "status", status, "err", err)

		if !hx.IsHTMX(r) {
			http.Error(w, http.StatusText(status), status)
			return
		}

		w.Header().Set("HX-Reswap", string(hx.SwapNone))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(hx.RenderFlashesOOB([]hx.Flash{{Level: hx.FlashError, Message: msg}})))
	}
}

func classify(err error) (int, string) {
	switch {
	case hx.IsNotFound(err):
		return http.StatusNotFound, MsgSessionExpired
	case hx.IsDecryptionError(err):
		return http.StatusBadRequest, MsgBadRequest
	}
	return http.StatusInternalServerError, MsgInternal
}
