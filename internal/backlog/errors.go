package backlog

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySelection = errors.New("backlog: no games selected")
	ErrNoPendingGame  = errors.New("backlog: no game is waiting for a rating")
	ErrUnknownGame    = errors.New("backlog: game is not in the last search results")
	ErrSessionExpired = errors.New("backlog: session expired")
)

// ServerError is a non-2xx reply from the search or export endpoint.
// Message is the server's error text, possibly empty.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backlog: server replied %d", e.Status)
	}
	return fmt.Sprintf("backlog: server replied %d: %s", e.Status, e.Message)
}

// User-facing messages.
const (
	StatusEmptyQuery   = "Type a game title first."
	StatusSearchFailed = "Search failed."
	StatusNetworkError = "Network error. Check the server log."
	StatusNoResults    = "No results found."

	MsgEmptySelection = "No games selected to export."
	MsgExportFailed   = "Export failed: "
)
