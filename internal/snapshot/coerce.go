package snapshot

import (
	"strconv"
	"strings"
)

// Coerce converts a raw cell to a float64 on a best-effort basis.  Dollar
// signs, thousands separators and surrounding whitespace are tolerated; any
// cell that still fails to parse yields 0 rather than an error, so one bad
// row in a table of fifteen never blanks the whole dashboard.  The default
// is deliberately a named, tested policy instead of a side effect of a
// blanket error catch.
func Coerce(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
