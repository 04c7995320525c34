package hx

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/backlog/internal/hx/encoding"
)

// Handler is the signature of an action handler.
type Handler[P any] func(ctx context.Context, props P, r *http.Request) Result[P]

// actionDef holds metadata about a registered action.
type actionDef[P any] struct {
	name    string
	method  string
	handler Handler[P]
}

// Component[P] is the base type embedded by components.
//
//	func NewSelection(sessions *backlog.Sessions) *Selection {
//	    c := &Selection{sessions: sessions}
//	    c.Component = hx.New[SelectionProps]("selection", c)
//	    c.Action("remove", c.handleRemove)
//	    return c
//	}
type Component[P any] struct {
	name      string
	prefix    string
	sensitive bool
	actions   map[string]*actionDef[P]
	lifecycle Lifecycle[P]
	encoder   *encoding.Encoder
	registry  *Registry
}

// New creates a component with the given name, driven by lc.
//
// The URL prefix is derived from the name and the file:line where New is
// called, so two instances of the same component type get distinct routes.
func New[P any](name string, lc Lifecycle[P]) *Component[P] {
	return &Component[P]{
		name:      name,
		prefix:    "/_c/" + name + "-" + componentHash(name, 1),
		actions:   make(map[string]*actionDef[P]),
		lifecycle: lc,
	}
}

// Sensitive switches props from signed to encrypted.
func (c *Component[P]) Sensitive() *Component[P] {
	c.sensitive = true
	return c
}

// HXPrefix returns the URL prefix every route of this component lives under.
func (c *Component[P]) HXPrefix() string {
	return c.prefix
}

// Action registers a named action handler with default POST method.
//
//	c.Action("rate", c.handleRate)
//	c.Action("filter", c.handleFilter).Method(http.MethodGet)
func (c *Component[P]) Action(name string, handler Handler[P]) *ActionBuilder {
	def := &actionDef[P]{name: name, method: http.MethodPost, handler: handler}
	c.actions[name] = def
	return &ActionBuilder{method: &def.method}
}

// Refresh returns an action builder for the default render (GET).
func (c *Component[P]) Refresh(props P) *Action {
	return NewAction(c.buildURL("", props), http.MethodGet)
}

// Call returns an action builder for a registered action. Calling an
// unregistered action is a programming error and panics.
func (c *Component[P]) Call(action string, props P) *Action {
	def, ok := c.actions[action]
	if !ok {
		panic(fmt.Sprintf("hx: %s has no action %q", c.name, action))
	}
	return NewAction(c.buildURL(action, props), def.method)
}

// bind attaches the registry's encoder and error handler. Called by Registry.Add.
func (c *Component[P]) bind(reg *Registry) {
	c.encoder = reg.encoder
	c.registry = reg
}

// HXServeHTTP decodes props, hydrates, routes to the action handler and
// writes the result.
func (c *Component[P]) HXServeHTTP(w http.ResponseWriter, r *http.Request) {
	if c.encoder == nil {
		c.fail(w, r, ErrNotRegistered)
		return
	}

	var props P
	if encoded := r.URL.Query().Get("p"); encoded != "" {
		if err := c.encoder.Decode(encoded, c.sensitive, &props); err != nil {
			c.fail(w, r, wrapEncodingError(err))
			return
		}
	}

	if err := c.lifecycle.Hydrate(r.Context(), &props); err != nil {
		c.fail(w, r, fmt.Errorf("%w: %w", ErrHydrationFailed, err))
		return
	}

	name := strings.Trim(strings.TrimPrefix(r.URL.Path, c.prefix), "/")
	if name == "" {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		c.render(w, r, c.lifecycle.Render(r.Context(), props), nil)
		return
	}

	def, ok := c.actions[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if r.Method != def.method {
		w.Header().Set("Allow", def.method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c.handleResult(w, r, def.handler(r.Context(), props, r))
}

func (c *Component[P]) handleResult(w http.ResponseWriter, r *http.Request, res Result[P]) {
	if res.err != nil {
		c.fail(w, r, res.err)
		return
	}

	h := w.Header()
	if trigger := BuildTriggerHeader(res.event, res.detail); trigger != "" {
		h.Set("HX-Trigger", trigger)
	}
	if res.url != "" {
		h.Set("HX-Redirect", res.url)
	}

	switch {
	case res.url != "" || res.skip:
		writeFragment(w, RenderFlashesOOB(res.flashes))
	case res.fragment != nil:
		c.render(w, r, res.fragment, res.flashes)
	default:
		c.render(w, r, c.lifecycle.Render(r.Context(), res.props), res.flashes)
	}
}

// render buffers the output so a failing template still produces a clean
// error response.
func (c *Component[P]) render(w http.ResponseWriter, r *http.Request, body templ.Component, flashes []Flash) {
	var buf bytes.Buffer
	if err := body.Render(r.Context(), &buf); err != nil {
		c.fail(w, r, err)
		return
	}
	buf.WriteString(RenderFlashesOOB(flashes))
	writeFragment(w, buf.String())
}

func (c *Component[P]) fail(w http.ResponseWriter, r *http.Request, err error) {
	if c.registry != nil && c.registry.OnError != nil {
		c.registry.OnError(w, r, err)
		return
	}
	defaultOnError(w, r, err)
}

// buildURL constructs the URL for an action with encoded props.
// Empty action string means default render (GET).
func (c *Component[P]) buildURL(action string, props P) string {
	path := c.prefix + "/" + action

	if c.encoder == nil {
		return path
	}

	encoded, err := c.encoder.Encode(props, c.sensitive)
	if err != nil {
		return path
	}

	return path + "?p=" + encoded
}

func writeFragment(w http.ResponseWriter, body string) {
	if body == "" {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

// componentHash generates a deterministic hash from the component name and
// the source location of the caller skip frames up.
func componentHash(name string, skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	input := name
	if ok {
		// Base filename only, so the hash is stable across checkouts.
		input = fmt.Sprintf("%s:%d:%s", filepath.Base(file), line, name)
	}
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:4])
}
