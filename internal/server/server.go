// Package server assembles the echo instance: request logging, the
// component routes, the page and the download endpoint.
package server

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pthm/backlog/internal/hx"
)

// New creates an echo instance that logs requests to log.
func New(log *slog.Logger) *echo.Echo {
	if log == nil {
		log = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("path", v.URIPath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.Any("err", v.Error),
			)
			return nil
		},
	}))

	return e
}

// Option configures Mount.
type Option func(*options)

type options struct {
	path string
}

// WithPath sets the URL path prefix for component routes.
// Defaults to "/_c/".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// Mount creates a registry keyed with key and mounts its handler on e.
// Component failures are logged to log.
//
//	reg := server.Mount(e, key, log)
//	app := components.Init(reg, sessions, catalog, log)
func Mount(e *echo.Echo, key []byte, log *slog.Logger, opts ...Option) *hx.Registry {
	o := &options{path: "/_c/"}
	for _, opt := range opts {
		opt(o)
	}
	if log == nil {
		log = slog.Default()
	}

	reg := hx.NewRegistry(key)
	reg.OnError = onError(log)
	e.Any(o.path+"*", echo.WrapHandler(reg.Handler()))
	return reg
}

// Render writes a templ component to the echo response.
func Render(c echo.Context, component templ.Component) error {
	return hx.Render(c.Response(), c.Request(), component)
}
