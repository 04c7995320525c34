// Package hx is the component kernel behind the backlog UI: server-rendered
// components written with templ and driven from the browser by htmx.
//
// # Core Concepts
//
// Components embed *Component[P] where P is the Props type. Props travel in
// component URLs and should contain only ids; everything else is
// reconstructed during hydration.
//
//	type Search struct {
//	    *hx.Component[SearchProps]
//	    sessions *backlog.Sessions
//	}
//
// The lifecycle is formalized through two interfaces:
//   - Hydrater[P]: Hydrate(ctx, *P) reconstructs rich state from ids
//   - Renderer[P]: Render(ctx, P) produces the templ.Component output
//
// Hydrate runs before any handler, so handlers always see complete props.
// Render runs for GET requests and after every successful action.
//
// # Actions and Routing
//
// Actions are registered with semantic names:
//
//	c.Action("toggle", c.handleToggle)
//	c.Action("filter", c.handleFilter).Method(http.MethodGet)
//
// and referenced from templates through the Action builder:
//
//	c.Call("toggle", props).Vals(map[string]any{"name": g.Name}).Attrs()
//
// Each component gets a URL prefix derived from its name and the source
// location of its constructor. The registry rejects prefix collisions.
//
// # Security Model
//
// Props are msgpack-encoded and either HMAC-signed (default) or AES-GCM
// encrypted (Sensitive). Mutating methods require the HX-Request header that
// htmx sends, which keeps cross-origin form posts out.
//
// # Component Communication
//
// Handlers broadcast events with Result.Trigger; other components refresh
// themselves by listening with Action.OnEvent. Flash messages are appended to
// responses as out-of-band swaps into #toasts.
package hx
