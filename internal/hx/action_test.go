package hx

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestNewAction(t *testing.T) {
	a := NewAction("/test/url", http.MethodPost)

	if a.URL() != "/test/url" {
		t.Errorf("URL() = %q, want %q", a.URL(), "/test/url")
	}

	attrs := a.Attrs()
	if attrs["hx-post"] != "/test/url" {
		t.Errorf("hx-post = %q, want %q", attrs["hx-post"], "/test/url")
	}

	// Default swap should be outerHTML
	if attrs["hx-swap"] != "outerHTML" {
		t.Errorf("hx-swap = %q, want %q", attrs["hx-swap"], "outerHTML")
	}
}

func TestActionMethods(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		wantAttr string
	}{
		{"GET", http.MethodGet, "hx-get"},
		{"POST", http.MethodPost, "hx-post"},
		{"PUT", http.MethodPut, "hx-put"},
		{"PATCH", http.MethodPatch, "hx-patch"},
		{"DELETE", http.MethodDelete, "hx-delete"},
		{"empty defaults to GET", "", "hx-get"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := NewAction("/url", tt.method).Attrs()

			if _, ok := attrs[tt.wantAttr]; !ok {
				t.Errorf("Expected attribute %q not found in %v", tt.wantAttr, attrs)
			}
		})
	}
}

func TestActionTargetAndSwap(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*Action) *Action
		wantTarget string
		wantSwap   string
	}{
		{"Target", func(a *Action) *Action { return a.Target("#selectedList") }, "#selectedList", "outerHTML"},
		{"Target with SwapNone", func(a *Action) *Action { return a.Target("#intrigueModal").SwapNone() }, "#intrigueModal", "none"},
		{"SwapNone", func(a *Action) *Action { return a.SwapNone() }, "", "none"},
		{"SwapOuter after SwapNone", func(a *Action) *Action { return a.SwapNone().SwapOuter() }, "", "outerHTML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := tt.setup(NewAction("/url", http.MethodPost)).Attrs()

			if tt.wantTarget == "" {
				if _, ok := attrs["hx-target"]; ok {
					t.Errorf("hx-target should be unset, got %q", attrs["hx-target"])
				}
			} else if attrs["hx-target"] != tt.wantTarget {
				t.Errorf("hx-target = %q, want %q", attrs["hx-target"], tt.wantTarget)
			}
			if attrs["hx-swap"] != tt.wantSwap {
				t.Errorf("hx-swap = %q, want %q", attrs["hx-swap"], tt.wantSwap)
			}
		})
	}
}

func TestActionTriggers(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*Action) *Action
		expect string
	}{
		{"OnEvent", func(a *Action) *Action { return a.OnEvent("selection:changed") }, "selection:changed from:body"},
		{"Trigger", func(a *Action) *Action { return a.Trigger("keyup[key=='Enter']") }, "keyup[key=='Enter']"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := tt.setup(NewAction("/url", http.MethodPost)).Attrs()

			if attrs["hx-trigger"] != tt.expect {
				t.Errorf("hx-trigger = %q, want %q", attrs["hx-trigger"], tt.expect)
			}
		})
	}
}

func TestActionVals(t *testing.T) {
	a := NewAction("/url", http.MethodPost).
		Vals(map[string]any{"name": "Hades"}).
		Vals(map[string]any{"intrigue": 7})

	raw, ok := a.Attrs()["hx-vals"].(string)
	if !ok {
		t.Fatal("hx-vals not set")
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("hx-vals is not JSON: %v", err)
	}
	if got["name"] != "Hades" {
		t.Errorf("name = %v, want Hades", got["name"])
	}
	if got["intrigue"] != float64(7) {
		t.Errorf("intrigue = %v, want 7", got["intrigue"])
	}
}

func TestActionChaining(t *testing.T) {
	a := NewAction("/_c/search-1234/search", http.MethodPost).
		Target("#searchPanel").
		Include("#searchInput, #steamIdInput").
		Indicator("#searching")

	attrs := a.Attrs()

	if attrs["hx-post"] != "/_c/search-1234/search" {
		t.Error("hx-post not set correctly")
	}
	if attrs["hx-target"] != "#searchPanel" {
		t.Error("hx-target not set correctly")
	}
	if attrs["hx-include"] != "#searchInput, #steamIdInput" {
		t.Error("hx-include not set correctly")
	}
	if attrs["hx-indicator"] != "#searching" {
		t.Error("hx-indicator not set correctly")
	}
}

func TestActionSync(t *testing.T) {
	attrs := NewAction("/url", http.MethodPost).Attrs()
	if _, ok := attrs["hx-sync"]; ok {
		t.Errorf("hx-sync should be unset, got %q", attrs["hx-sync"])
	}

	attrs = NewAction("/url", http.MethodPost).SwapNone().Sync("#intrigueModal:queue last").Attrs()
	if attrs["hx-sync"] != "#intrigueModal:queue last" {
		t.Errorf("hx-sync = %q", attrs["hx-sync"])
	}
}
