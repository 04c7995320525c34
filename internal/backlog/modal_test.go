package backlog

import (
	"errors"
	"testing"
)

func TestModal(t *testing.T) {
	var m Modal
	if m.IsOpen() {
		t.Fatal("zero modal should be closed")
	}

	m.Hover(5)
	if m.Display != 0 {
		t.Errorf("hover on a closed modal changed the display to %d", m.Display)
	}

	m.Open(Game{Name: "Hades"})
	if !m.IsOpen() || m.Display != 0 {
		t.Fatalf("after Open: open=%v display=%d", m.IsOpen(), m.Display)
	}

	m.Hover(6)
	if m.Display != 6 {
		t.Errorf("Display = %d, want 6", m.Display)
	}
	m.Hover(42)
	if m.Display != 10 {
		t.Errorf("Display = %d, want 10", m.Display)
	}
	m.Leave()
	if m.Display != 0 {
		t.Errorf("Display after Leave = %d, want 0", m.Display)
	}

	// Reopening resets any preview.
	m.Hover(3)
	m.Open(Game{Name: "Celeste"})
	if m.Display != 0 || m.Pending.Name != "Celeste" {
		t.Errorf("reopen: display=%d pending=%v", m.Display, m.Pending.Name)
	}

	e, err := m.Commit(7)
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if e.Name != "Celeste" || e.Intrigue != 7 {
		t.Errorf("Commit() = %+v", e)
	}
	if m.IsOpen() {
		t.Error("modal should be closed after commit")
	}

	if _, err := m.Commit(7); !errors.Is(err, ErrNoPendingGame) {
		t.Errorf("Commit on closed modal error = %v, want ErrNoPendingGame", err)
	}
}

func TestModalCancel(t *testing.T) {
	var m Modal
	m.Open(Game{Name: "Hades"})
	m.Hover(9)
	m.Close()

	if m.IsOpen() || m.Display != 0 {
		t.Errorf("after Close: open=%v display=%d", m.IsOpen(), m.Display)
	}
}
