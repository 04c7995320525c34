package backlog

// Modal is the rating modal. It is open iff Pending is non-nil.
//
// Display is what the star row currently shows: a hover preview, or the
// committed preview (always 0, since a commit closes the modal).
type Modal struct {
	Pending   *Game
	Committed int
	Display   int
}

// IsOpen reports whether a game is waiting for a rating.
func (m *Modal) IsOpen() bool {
	return m.Pending != nil
}

// Open starts rating g. Any previous pending game and preview are dropped.
func (m *Modal) Open(g Game) {
	m.Pending = &g
	m.Committed = 0
	m.Display = 0
}

// Hover previews v stars without committing.
func (m *Modal) Hover(v int) {
	if !m.IsOpen() {
		return
	}
	m.Display = clampStars(v)
}

// Leave reverts the preview to the committed value.
func (m *Modal) Leave() {
	m.Display = m.Committed
}

// Commit closes the modal and returns the entry to store.
func (m *Modal) Commit(v int) (Entry, error) {
	if !m.IsOpen() {
		return Entry{}, ErrNoPendingGame
	}
	e := Entry{Game: *m.Pending, Intrigue: clampRating(float64(v))}
	m.Close()
	return e, nil
}

// Close discards the pending game.
func (m *Modal) Close() {
	m.Pending = nil
	m.Committed = 0
	m.Display = 0
}

func clampStars(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxIntrigue {
		return MaxIntrigue
	}
	return v
}
