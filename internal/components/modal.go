package components

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/pthm/backlog/internal/backlog"
	"github.com/pthm/backlog/internal/hx"
)

// Modal is the intrigue rating dialog.
type Modal struct {
	*hx.Component[Props]
	sessions *backlog.Sessions
}

// NewModal creates a new Modal component.
func NewModal(sessions *backlog.Sessions) *Modal {
	c := &Modal{sessions: sessions}
	c.Component = hx.New[Props]("modal", c)
	c.Action("toggle", c.handleToggle)
	c.Action("hover", c.handleHover)
	c.Action("leave", c.handleLeave)
	c.Action("commit", c.handleCommit)
	c.Action("cancel", c.handleCancel)
	return c
}

// Hydrate loads the session and snapshots it.
func (c *Modal) Hydrate(ctx context.Context, props *Props) error {
	s, err := loadSession(c.sessions, props.SessionID)
	if err != nil {
		return err
	}
	props.Session = s
	props.View = s.View()
	return nil
}

// Render produces the HTML output.
func (c *Modal) Render(ctx context.Context, props Props) templ.Component {
	return modalTemplate(c, props)
}

// modalSync serialises every request that touches the dialog. Previews
// queue behind each other; a commit replaces whatever is in flight.
const modalSync = "#intrigueModal"

func (c *Modal) cancelAction(props Props) *hx.Action {
	return c.Call("cancel", props).Trigger("click target:#intrigueModal")
}

func (c *Modal) hoverAction(props Props, value int) *hx.Action {
	return c.Call("hover", props).
		Vals(map[string]any{"value": value}).
		Trigger("mouseenter").
		SwapNone().
		Sync(modalSync + ":queue last")
}

func (c *Modal) leaveAction(props Props) *hx.Action {
	return c.Call("leave", props).
		Trigger("mouseleave").
		SwapNone().
		Sync(modalSync + ":queue last")
}

func (c *Modal) commitAction(props Props, value int) *hx.Action {
	return c.Call("commit", props).
		Vals(map[string]any{"value": value}).
		Target("#intrigueModal").
		Sync(modalSync + ":replace")
}

func starID(value int) string {
	return "star-" + strconv.Itoa(value)
}

func ratingLabel(v int) string {
	if v == 0 {
		return "Pick a rating"
	}
	return strconv.Itoa(v) + "/10"
}

// handleToggle removes a selected game, or opens the dialog for an
// unselected one.
func (c *Modal) handleToggle(ctx context.Context, props Props, r *http.Request) hx.Result[Props] {
	outcome, err := props.Session.Toggle(r.FormValue("name"))
	props.View = props.Session.View()

	switch {
	case errors.Is(err, backlog.ErrUnknownGame):
		return hx.OK(props).Flash(hx.FlashError, "That game is no longer in the search results.")
	case err != nil:
		return hx.Err(props, err)
	case outcome == backlog.Removed:
		return hx.OK(props).Trigger(EventSelectionChanged)
	}
	return hx.OK(props)
}

// handleHover previews the hovered star.
func (c *Modal) handleHover(ctx context.Context, props Props, r *http.Request) hx.Result[Props] {
	v, err := strconv.Atoi(r.FormValue("value"))
	if err != nil {
		return hx.Skip[Props]()
	}
	props.Session.Hover(v)
	return c.preview(props)
}

func (c *Modal) handleLeave(ctx context.Context, props Props, r *http.Request) hx.Result[Props] {
	props.Session.Leave()
	return c.preview(props)
}

// preview swaps only the star buttons and the label, out of band. The slots
// carrying the mouseenter triggers stay in place, so a preview never
// re-fires the hover that produced it.
func (c *Modal) preview(props Props) hx.Result[Props] {
	props.View = props.Session.View()
	if !props.View.Modal.IsOpen() {
		return hx.Skip[Props]()
	}
	return hx.Fragment[Props](starPreview(c, props))
}

// handleCommit stores the clicked rating and closes the dialog.
func (c *Modal) handleCommit(ctx context.Context, props Props, r *http.Request) hx.Result[Props] {
	v, err := strconv.Atoi(r.FormValue("value"))
	if err != nil {
		return hx.OK(props)
	}

	_, err = props.Session.Commit(v)
	props.View = props.Session.View()
	if errors.Is(err, backlog.ErrNoPendingGame) {
		return hx.OK(props)
	}
	return hx.OK(props).Trigger(EventSelectionChanged)
}

func (c *Modal) handleCancel(ctx context.Context, props Props, r *http.Request) hx.Result[Props] {
	props.Session.Cancel()
	props.View = props.Session.View()
	return hx.OK(props)
}
