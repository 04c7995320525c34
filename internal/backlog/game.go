package backlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Figure is a completion time or score as reported by the search backend:
// either a JSON number or a string such as "N/A". It keeps the kind it was
// read with so it is written back unchanged. The zero value means unset.
type Figure struct {
	text   string
	number bool
}

// TextFigure returns a figure that marshals as a JSON string.
func TextFigure(s string) Figure { return Figure{text: s} }

// NumberFigure returns a figure that marshals as a JSON number. s must be a
// valid JSON number literal.
func NumberFigure(s string) Figure { return Figure{text: s, number: true} }

func (f Figure) String() string { return f.text }

// IsNumber reports whether the figure was read as, and is written as, a
// JSON number.
func (f Figure) IsNumber() bool { return f.number }

// MarshalJSON writes numbers bare and everything else as a JSON string.
func (f Figure) MarshalJSON() ([]byte, error) {
	if f.number {
		return []byte(f.text), nil
	}
	return json.Marshal(f.text)
}

// UnmarshalJSON accepts a JSON string, number or null.
func (f *Figure) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = Figure{}
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = TextFigure(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("figure: %w", err)
		}
		*f = NumberFigure(n.String())
	}
	return nil
}

// Hours parses the figure as a number of hours. ok is false for blank and
// non-numeric figures.
func (f Figure) Hours() (hours float64, ok bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(f.text), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Game is a search result record. Name is the unique key.
type Game struct {
	Name      string `json:"game_name"`
	MainStory Figure `json:"main_story"`
	MainExtra Figure `json:"main_extra"`
	Score     Figure `json:"score"`
	ImageURL  string `json:"image_url"`
	Owned     bool   `json:"owned"`
}

// Entry is a selected game with its intrigue rating. Intrigue 0 means no
// rating has been given yet; real ratings are 1..10.
type Entry struct {
	Game
	Intrigue int
}

// OptionalInt is an integer that travels as "" when unset (zero).
type OptionalInt int

// MarshalJSON writes "" for zero and the number otherwise.
func (n OptionalInt) MarshalJSON() ([]byte, error) {
	if n == 0 {
		return []byte(`""`), nil
	}
	return []byte(strconv.Itoa(int(n))), nil
}

// UnmarshalJSON accepts a number, a numeric string, "" or null.
func (n *OptionalInt) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*n = 0
	case float64:
		*n = OptionalInt(v)
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("optional int: %q is not a number", v)
		}
		*n = OptionalInt(f)
	default:
		return fmt.Errorf("optional int: unexpected %T", raw)
	}
	return nil
}

// ExportEntry is one row of the export payload.
type ExportEntry struct {
	Name      string      `json:"game_name"`
	Intrigue  OptionalInt `json:"intrigue"`
	Owned     bool        `json:"owned"`
	MainExtra Figure      `json:"main_extra"`
}

// ExportPayload is the body POSTed to the export endpoint.
type ExportPayload struct {
	Games []ExportEntry `json:"games"`
}

// NewExportPayload builds the payload from entries, keeping their order.
func NewExportPayload(entries []Entry) ExportPayload {
	games := make([]ExportEntry, 0, len(entries))
	for _, e := range entries {
		games = append(games, ExportEntry{
			Name:      e.Name,
			Intrigue:  OptionalInt(e.Intrigue),
			Owned:     e.Owned,
			MainExtra: e.MainExtra,
		})
	}
	return ExportPayload{Games: games}
}
