package hx

// SwapMode defines htmx swap strategies for how response HTML replaces the target.
//
// See https://htmx.org/attributes/hx-swap/ for visual examples.
type SwapMode string

const (
	// SwapOuter replaces the entire element including its tag (outerHTML).
	// This is the default swap mode.
	SwapOuter SwapMode = "outerHTML"

	// SwapNone performs no swap - response is discarded.
	// Useful for actions with only side effects (events, redirects, OOB toasts).
	SwapNone SwapMode = "none"
)
