package hx

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// ActionBuilder configures action registration (e.g., HTTP method override).
//
//	c.Action("rate", handler)  // POST by default
//	c.Action("filter", handler).Method(http.MethodGet)
type ActionBuilder struct {
	method *string
}

// Method overrides the default POST method for an action.
func (ab *ActionBuilder) Method(m string) *ActionBuilder {
	*ab.method = m
	return ab
}

// Action is a fluent builder for the htmx attributes that call a component
// route. Obtain one from Component.Call or Component.Refresh.
//
//	c.Call("remove", props).Vals(map[string]any{"name": name}).Target("#selectedList").Attrs()
type Action struct {
	url       string
	method    string
	target    string
	swap      SwapMode
	trigger   string
	include   string
	indicator string
	sync      string
	vals      map[string]any
}

// NewAction creates an action for url with the given method.
func NewAction(url, method string) *Action {
	return &Action{url: url, method: method, swap: SwapOuter}
}

// URL returns the action's URL (props included).
func (a *Action) URL() string {
	return a.url
}

// Method returns the HTTP method, GET when unset.
func (a *Action) Method() string {
	if a.method == "" {
		return http.MethodGet
	}
	return a.method
}

// Target sets hx-target.
func (a *Action) Target(selector string) *Action {
	a.target = selector
	return a
}

// Swap sets hx-swap.
func (a *Action) Swap(mode SwapMode) *Action {
	a.swap = mode
	return a
}

// SwapOuter replaces the target element (the default).
func (a *Action) SwapOuter() *Action { return a.Swap(SwapOuter) }

// SwapNone discards the response body; headers (events, redirects, OOB
// flashes) still apply.
func (a *Action) SwapNone() *Action { return a.Swap(SwapNone) }

// Trigger sets a raw hx-trigger value, e.g. "keyup[key=='Enter']".
func (a *Action) Trigger(spec string) *Action {
	a.trigger = spec
	return a
}

// OnEvent fires the action when event bubbles up to body, which is where
// HX-Trigger events from other components land.
func (a *Action) OnEvent(event string) *Action {
	return a.Trigger(event + " from:body")
}

// Include sets hx-include, pulling other inputs into the request.
func (a *Action) Include(selector string) *Action {
	a.include = selector
	return a
}

// Indicator sets hx-indicator.
func (a *Action) Indicator(selector string) *Action {
	a.indicator = selector
	return a
}

// Sync sets hx-sync, e.g. "#intrigueModal:queue last", so requests from
// elements sharing a sync target do not race each other.
func (a *Action) Sync(spec string) *Action {
	a.sync = spec
	return a
}

// Vals adds static values to the request (hx-vals).
func (a *Action) Vals(vals map[string]any) *Action {
	if a.vals == nil {
		a.vals = make(map[string]any, len(vals))
	}
	for k, v := range vals {
		a.vals[k] = v
	}
	return a
}

// Attrs builds the htmx attributes.
func (a *Action) Attrs() templ.Attributes {
	attrs := templ.Attributes{}

	switch a.Method() {
	case http.MethodGet:
		attrs["hx-get"] = a.url
	case http.MethodPost:
		attrs["hx-post"] = a.url
	case http.MethodPut:
		attrs["hx-put"] = a.url
	case http.MethodPatch:
		attrs["hx-patch"] = a.url
	case http.MethodDelete:
		attrs["hx-delete"] = a.url
	}

	if a.target != "" {
		attrs["hx-target"] = a.target
	}
	if a.swap != "" {
		attrs["hx-swap"] = string(a.swap)
	}
	if a.trigger != "" {
		attrs["hx-trigger"] = a.trigger
	}
	if a.include != "" {
		attrs["hx-include"] = a.include
	}
	if a.indicator != "" {
		attrs["hx-indicator"] = a.indicator
	}
	if a.sync != "" {
		attrs["hx-sync"] = a.sync
	}
	if len(a.vals) > 0 {
		if data, err := json.Marshal(a.vals); err == nil {
			attrs["hx-vals"] = string(data)
		}
	}

	return attrs
}
