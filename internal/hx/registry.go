package hx

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/pthm/backlog/internal/hx/encoding"
)

// binder is satisfied by every type embedding *Component[P].
type binder interface {
	HXComponent
	bind(reg *Registry)
}

// Registry manages component registration and routing.
type Registry struct {
	mu         sync.RWMutex
	mux        *http.ServeMux
	encoder    *encoding.Encoder
	components map[string]HXComponent

	// OnError is called when a component fails to decode props, hydrate,
	// render, or returns an Err result.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// NewRegistry creates a new component registry keyed with key.
func NewRegistry(key []byte) *Registry {
	enc, err := encoding.NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("hx: failed to create encoder: %v", err))
	}

	return &Registry{
		mux:        http.NewServeMux(),
		encoder:    enc,
		components: make(map[string]HXComponent),
		OnError:    defaultOnError,
	}
}

// Add registers components with the registry.
// Panics on a prefix collision or a component that does not embed *Component[P].
func (reg *Registry) Add(components ...HXComponent) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, comp := range components {
		b, ok := comp.(binder)
		if !ok {
			panic(fmt.Sprintf("hx: %T does not embed *hx.Component[P]", comp))
		}

		prefix := comp.HXPrefix()
		if _, exists := reg.components[prefix]; exists {
			panic(fmt.Sprintf("hx: prefix collision for %q", prefix))
		}

		b.bind(reg)
		reg.components[prefix] = comp
		reg.mux.HandleFunc(prefix+"/", comp.HXServeHTTP)
	}
}

// Len returns the number of registered components.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.components)
}

// Handler returns the HTTP handler for component routes.
// Mount it at "/_c/".
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CSRF protection: mutating methods require the htmx request header.
		if r.Method != http.MethodGet && r.Method != http.MethodHead && !IsHTMX(r) {
			http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
			return
		}

		reg.mux.ServeHTTP(w, r)
	})
}
