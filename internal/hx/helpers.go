package hx

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Use for pages outside the component routes; component handlers render
// automatically.
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// BuildTriggerHeader builds an HX-Trigger header value.
//
//  1. Simple event name: "selection:changed" -> "selection:changed"
//  2. Event with data: "selection:changed" + {"name": "Hades"} -> {"selection:changed": {"name": "Hades"}}
func BuildTriggerHeader(trigger string, triggerData map[string]any) string {
	if trigger == "" {
		return ""
	}
	if triggerData == nil {
		return trigger
	}

	data, err := json.Marshal(map[string]any{trigger: triggerData})
	if err != nil {
		return trigger
	}
	return string(data)
}
