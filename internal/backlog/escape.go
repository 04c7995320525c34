package backlog

import (
	"fmt"
	"strings"
)

// Escape coerces v to a string and escapes it for HTML text and attribute
// values. Ampersands go first so later entities are not escaped twice.
func Escape(v any) string {
	s := fmt.Sprint(v)
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#039;")
	return s
}
