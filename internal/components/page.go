package components

import (
	"github.com/a-h/templ"

	"github.com/pthm/backlog/internal/backlog"
)

// Title is the page title.
const Title = "Games Backlog Creator"

// Page renders the full page for a fresh session.
func (a *App) Page(s *backlog.Session) templ.Component {
	view := s.View()
	props := Props{SessionID: s.ID(), Session: s, View: view}
	list := ListProps{SessionID: s.ID(), Session: s, View: view}
	return pageTemplate(a, props, list)
}
