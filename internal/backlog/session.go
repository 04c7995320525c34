package backlog

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Searcher runs a catalog search. externalID is omitted from the request
// when empty.
type Searcher interface {
	Search(ctx context.Context, query, externalID string) ([]Game, error)
}

// Exporter turns a payload into a spreadsheet document.
type Exporter interface {
	Export(ctx context.Context, payload ExportPayload) ([]byte, error)
}

type download struct {
	data    []byte
	created time.Time
}

// Session is the state of one page load.
type Session struct {
	id  string
	log *slog.Logger
	now func() time.Time

	mu          sync.Mutex
	selection   *Selection
	modal       Modal
	results     []Game
	showResults bool
	status      string
	downloads   map[string]download
}

func newSession(id string, log *slog.Logger, now func() time.Time) *Session {
	return &Session{
		id:        id,
		log:       log.With("session", id),
		now:       now,
		selection: NewSelection(),
		downloads: make(map[string]download),
	}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Search runs a search and records its outcome. Failures are reported
// through the status line, never returned: the session stays usable.
//
// The catalog is called without holding the session lock, so concurrent
// searches race and the last response to arrive wins.
func (s *Session) Search(ctx context.Context, catalog Searcher, query, externalID string) {
	q := strings.TrimSpace(query)
	id := strings.TrimSpace(externalID)

	if q == "" {
		s.mu.Lock()
		s.status = StatusEmptyQuery
		s.showResults = false
		s.mu.Unlock()
		return
	}

	results, err := catalog.Search(ctx, q, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	var se *ServerError
	switch {
	case err == nil:
		s.results = results
		s.refreshResults()
	case errors.As(err, &se):
		s.status = se.Message
		if s.status == "" {
			s.status = StatusSearchFailed
		}
		s.showResults = false
	default:
		s.log.ErrorContext(ctx, "search request failed", "query", q, "err", err)
		s.status = StatusNetworkError
		s.showResults = false
	}
}

// refreshResults re-displays the last results. Caller holds s.mu.
func (s *Session) refreshResults() {
	s.showResults = true
	if len(s.results) == 0 {
		s.status = StatusNoResults
	} else {
		s.status = ""
	}
}

// ToggleOutcome tells the caller what Toggle did.
type ToggleOutcome int

const (
	Removed ToggleOutcome = iota + 1
	Opened
)

// Toggle removes name from the selection if present; otherwise it opens the
// rating modal for the matching record of the last results.
func (s *Session) Toggle(name string) (ToggleOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection.Has(name) {
		s.selection.Delete(name)
		s.refreshResults()
		return Removed, nil
	}

	for _, g := range s.results {
		if g.Name == name {
			s.modal.Open(g)
			return Opened, nil
		}
	}
	return 0, ErrUnknownGame
}

// Hover previews v stars in the open modal.
func (s *Session) Hover(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Hover(v)
}

// Leave reverts the star preview.
func (s *Session) Leave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Leave()
}

// Commit stores the pending game with rating v and closes the modal.
func (s *Session) Commit(v int) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.modal.Commit(v)
	if err != nil {
		return Entry{}, err
	}
	s.selection.Set(e.Name, e)
	s.refreshResults()
	return e, nil
}

// Cancel closes the modal without storing anything.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
}

// Rate clamps raw and stores it as the rating of name. ok is false if name
// is not selected.
func (s *Session) Rate(name, raw string) (rating int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.selection.Get(name)
	if !ok {
		return 0, false
	}
	e.Intrigue = ClampIntrigue(raw)
	s.selection.Set(name, e)
	return e.Intrigue, true
}

// Remove drops name from the selection.
func (s *Session) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Delete(name)
	s.refreshResults()
}

// Export sends the selection to exp and parks the document in a one-shot
// download slot, returning the slot token.
func (s *Session) Export(ctx context.Context, exp Exporter) (string, error) {
	s.mu.Lock()
	if s.selection.Len() == 0 {
		s.mu.Unlock()
		return "", ErrEmptySelection
	}
	payload := NewExportPayload(s.selection.Values())
	s.mu.Unlock()

	data, err := exp.Export(ctx, payload)
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.downloads[token] = download{data: data, created: s.now()}
	s.mu.Unlock()
	return token, nil
}

// TakeDownload returns the document parked under token and releases the
// slot.
func (s *Session) TakeDownload(token string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.downloads[token]
	if !ok {
		return nil, false
	}
	delete(s.downloads, token)
	return d.data, true
}

// releaseDownloads drops slots created before cutoff.
func (s *Session) releaseDownloads(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for token, d := range s.downloads {
		if d.created.Before(cutoff) {
			delete(s.downloads, token)
			n++
		}
	}
	return n
}

// View is a consistent copy of the session state for rendering.
type View struct {
	Status      string
	ShowResults bool
	Results     []Game
	Entries     []Entry
	Modal       Modal

	selected map[string]bool
}

// InList reports whether name is selected.
func (v View) InList(name string) bool {
	return v.selected[name]
}

// View snapshots the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Status:      s.status,
		ShowResults: s.showResults,
		Results:     append([]Game(nil), s.results...),
		Entries:     s.selection.Values(),
		Modal:       s.modal,
		selected:    make(map[string]bool, s.selection.Len()),
	}
	if s.modal.Pending != nil {
		g := *s.modal.Pending
		v.Modal.Pending = &g
	}
	for _, e := range v.Entries {
		v.selected[e.Name] = true
	}
	return v
}

// FilterEntries keeps entries whose name contains filter, case-insensitively.
// Order is preserved.
func FilterEntries(entries []Entry, filter string) []Entry {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), filter) {
			out = append(out, e)
		}
	}
	return out
}
