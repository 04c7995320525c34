package components

import (
	"fmt"

	"github.com/pthm/backlog/internal/backlog"
	"github.com/pthm/backlog/internal/hx"
)

// EventSelectionChanged is broadcast whenever a game enters or leaves the
// selection. The results panel and the selected list refresh on it.
const EventSelectionChanged = "selection:changed"

// Props is carried by every component that only needs the page session.
type Props struct {
	SessionID string `msgpack:"s"`

	// Hydrated data (not serialized)
	Session *backlog.Session `msgpack:"-"`
	View    backlog.View     `msgpack:"-"`
}

// ListProps are the selected list's props. The filter is read from the
// filter input on every request rather than carried in the URL.
type ListProps struct {
	SessionID string `msgpack:"s"`

	// Hydrated data (not serialized)
	Filter  string           `msgpack:"-"`
	Session *backlog.Session `msgpack:"-"`
	View    backlog.View     `msgpack:"-"`
}

// loadSession resolves a session id. An unknown id is reported as not found
// so the page can tell the user to reload.
func loadSession(sessions *backlog.Sessions, id string) (*backlog.Session, error) {
	s, err := sessions.Get(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", hx.ErrNotFound, err)
	}
	return s, nil
}
