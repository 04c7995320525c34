package backlog

import (
	"math"
	"strconv"
	"strings"
)

// Intrigue bounds.
const (
	MinIntrigue = 1
	MaxIntrigue = 10
)

// ClampIntrigue parses raw editor input into a rating. Non-numeric input
// gives MinIntrigue; numbers round half up and are clamped to
// [MinIntrigue, MaxIntrigue]. Blank input counts as 0 and so clamps to 1.
func ClampIntrigue(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return MinIntrigue
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) {
		return MinIntrigue
	}
	return clampRating(math.Floor(n + 0.5))
}

func clampRating(n float64) int {
	if n < MinIntrigue {
		return MinIntrigue
	}
	if n > MaxIntrigue {
		return MaxIntrigue
	}
	return int(n)
}
