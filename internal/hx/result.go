package hx

import "github.com/a-h/templ"

// Result is what an action handler returns. It decides whether the
// component re-renders and which htmx headers go out with the response.
//
//	return hx.OK(props)
//	return hx.OK(props).Trigger(EventSelectionChanged)
//	return hx.Skip[Props]().Flash(hx.FlashError, "No games selected to export.")
//	return hx.Redirect[Props]("/download/...")
//	return hx.Fragment[Props](preview)
//
// Failures go through Err and end up at the registry's OnError.
type Result[P any] struct {
	props    P
	err      error
	skip     bool
	url      string
	fragment templ.Component
	event    string
	detail   map[string]any
	flashes  []Flash
}

// OK re-renders the component with props.
func OK[P any](props P) Result[P] {
	return Result[P]{props: props}
}

// Err hands err to the registry's error handler.
func Err[P any](props P, err error) Result[P] {
	return Result[P]{props: props, err: err}
}

// Skip renders nothing. Headers and flashes still apply.
func Skip[P any]() Result[P] {
	return Result[P]{skip: true}
}

// Fragment writes c in place of the component. Use it for responses made
// only of out-of-band swaps, where replacing the requesting element would
// re-fire its trigger.
func Fragment[P any](c templ.Component) Result[P] {
	return Result[P]{fragment: c}
}

// Redirect sends the browser to url through HX-Redirect.
func Redirect[P any](url string) Result[P] {
	return Result[P]{url: url}
}

// Flash queues a toast. Calls accumulate.
func (r Result[P]) Flash(level, message string) Result[P] {
	r.flashes = append(r.flashes[:len(r.flashes):len(r.flashes)], Flash{Level: level, Message: message})
	return r
}

// Trigger emits event through HX-Trigger, optionally with a detail payload.
func (r Result[P]) Trigger(event string, detail ...map[string]any) Result[P] {
	r.event = event
	r.detail = nil
	if len(detail) > 0 {
		r.detail = detail[0]
	}
	return r
}
