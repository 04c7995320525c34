package components

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/a-h/templ"

	"github.com/pthm/backlog/internal/backlog"
	"github.com/pthm/backlog/internal/hx"
)

// Selection is the list of selected games with inline rating editors.
type Selection struct {
	*hx.Component[ListProps]
	sessions *backlog.Sessions
}

// NewSelection creates a new Selection component.
func NewSelection(sessions *backlog.Sessions) *Selection {
	c := &Selection{sessions: sessions}
	c.Component = hx.New[ListProps]("selection", c).Sensitive()
	c.Action("filter", c.handleFilter).Method(http.MethodGet)
	c.Action("rate", c.handleRate)
	c.Action("remove", c.handleRemove)
	return c
}

// Hydrate loads the session and snapshots it.
func (c *Selection) Hydrate(ctx context.Context, props *ListProps) error {
	s, err := loadSession(c.sessions, props.SessionID)
	if err != nil {
		return err
	}
	props.Session = s
	props.View = s.View()
	return nil
}

// Render produces the HTML output.
func (c *Selection) Render(ctx context.Context, props ListProps) templ.Component {
	return selectionTemplate(c, props, backlog.FilterEntries(props.View.Entries, props.Filter))
}

// FilterInput renders the list filter box.
func (c *Selection) FilterInput(props ListProps) templ.Component {
	return filterInputTemplate(c, props)
}

func (c *Selection) filterAction(props ListProps) *hx.Action {
	return c.Call("filter", props).Trigger("input").Target("#selectedList")
}

// refreshAction reloads the list when the selection changes, keeping the
// current filter.
func (c *Selection) refreshAction(props ListProps) *hx.Action {
	return c.Call("filter", props).OnEvent(EventSelectionChanged).Include("#listSearchInput")
}

func (c *Selection) rateAction(props ListProps, name string) *hx.Action {
	return c.Call("rate", props).
		Vals(map[string]any{"name": name}).
		Trigger("input, blur").
		Include("#listSearchInput").
		Target("#selectedList")
}

func (c *Selection) removeAction(props ListProps, name string) *hx.Action {
	return c.Call("remove", props).Vals(map[string]any{"name": name}).SwapNone()
}

// ratingInputID gives each rating editor a stable id so focus survives the
// list being swapped while the user types.
func ratingInputID(name string) string {
	h := sha256.Sum256([]byte(name))
	return "intrigue-" + hex.EncodeToString(h[:6])
}

// handleFilter re-renders with the current filter text. It also serves as
// the refresh when the selection changes elsewhere.
func (c *Selection) handleFilter(ctx context.Context, props ListProps, r *http.Request) hx.Result[ListProps] {
	props.Filter = r.FormValue("filter")
	return hx.OK(props)
}

// handleRate clamps the edited rating and writes it back.
func (c *Selection) handleRate(ctx context.Context, props ListProps, r *http.Request) hx.Result[ListProps] {
	props.Filter = r.FormValue("filter")
	props.Session.Rate(r.FormValue("name"), r.FormValue("intrigue"))
	props.View = props.Session.View()
	return hx.OK(props)
}

// handleRemove drops a game. Both panels refresh through the event.
func (c *Selection) handleRemove(ctx context.Context, props ListProps, r *http.Request) hx.Result[ListProps] {
	props.Session.Remove(r.FormValue("name"))
	return hx.Skip[ListProps]().Trigger(EventSelectionChanged)
}
