package hx

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
)

// Hydrater is implemented by components to reconstruct rich state from the
// ids carried in props. Called before every handler, including plain renders.
//
//	func (c *Selection) Hydrate(ctx context.Context, props *SelectionProps) error {
//	    props.Session = c.sessions.Get(props.SessionID)
//	    return nil
//	}
type Hydrater[P any] interface {
	Hydrate(ctx context.Context, props *P) error
}

// Renderer is implemented by components to produce templ output.
//
// Render receives fully-hydrated props and should be pure: identical props
// and state give identical markup.
type Renderer[P any] interface {
	Render(ctx context.Context, props P) templ.Component
}

// Lifecycle is what a concrete component hands to New so the embedded
// Component can drive it.
type Lifecycle[P any] interface {
	Hydrater[P]
	Renderer[P]
}

// HXComponent is implemented by every *Component[P] (and so by every type
// embedding one). The registry routes requests through it.
type HXComponent interface {
	HXPrefix() string
	HXServeHTTP(w http.ResponseWriter, r *http.Request)
}
