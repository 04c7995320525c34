package components

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	"github.com/pthm/backlog/internal/backlog"
	"github.com/pthm/backlog/internal/hx"
)

// Results is the search panel: status line and result cards.
type Results struct {
	*hx.Component[Props]
	sessions *backlog.Sessions
	catalog  backlog.Searcher
	modal    *Modal
}

// NewResults creates a new Results component. Cards open modal.
func NewResults(sessions *backlog.Sessions, catalog backlog.Searcher, modal *Modal) *Results {
	c := &Results{sessions: sessions, catalog: catalog, modal: modal}
	c.Component = hx.New[Props]("results", c)
	c.Action("search", c.handleSearch)
	return c
}

// Hydrate loads the session and snapshots it.
func (c *Results) Hydrate(ctx context.Context, props *Props) error {
	s, err := loadSession(c.sessions, props.SessionID)
	if err != nil {
		return err
	}
	props.Session = s
	props.View = s.View()
	return nil
}

// Render produces the HTML output.
func (c *Results) Render(ctx context.Context, props Props) templ.Component {
	return resultsTemplate(c, props)
}

// Controls renders the search inputs. They live outside the panel so a
// refresh never clears what the user typed.
func (c *Results) Controls(props Props) templ.Component {
	return searchControlsTemplate(c, props)
}

func (c *Results) searchAction(props Props) *hx.Action {
	return c.Call("search", props).
		Target("#resultsPanel").
		Include("#searchInput, #steamIdInput").
		Indicator("#resultsPanel")
}

func (c *Results) toggleAction(props Props, g backlog.Game) *hx.Action {
	return c.modal.Call("toggle", Props{SessionID: props.SessionID}).
		Vals(map[string]any{"name": g.Name}).
		Target("#intrigueModal")
}

// handleSearch runs the query from the search inputs.
func (c *Results) handleSearch(ctx context.Context, props Props, r *http.Request) hx.Result[Props] {
	props.Session.Search(ctx, c.catalog, r.FormValue("q"), r.FormValue("steamid"))
	props.View = props.Session.View()
	return hx.OK(props)
}
