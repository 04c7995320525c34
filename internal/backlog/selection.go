package backlog

// Selection is an ordered map of selected games keyed by name. Overwriting
// an entry keeps its position. Not safe for concurrent use; Session
// serializes access.
type Selection struct {
	order   []string
	entries map[string]Entry
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{entries: make(map[string]Entry)}
}

func (s *Selection) Has(name string) bool {
	_, ok := s.entries[name]
	return ok
}

func (s *Selection) Get(name string) (Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Set inserts or overwrites the entry for name.
func (s *Selection) Set(name string, e Entry) {
	if _, ok := s.entries[name]; !ok {
		s.order = append(s.order, name)
	}
	s.entries[name] = e
}

// Delete removes name; it is a no-op if name is absent.
func (s *Selection) Delete(name string) {
	if _, ok := s.entries[name]; !ok {
		return
	}
	delete(s.entries, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Values returns the entries in insertion order.
func (s *Selection) Values() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, s.entries[n])
	}
	return out
}

func (s *Selection) Len() int {
	return len(s.order)
}
