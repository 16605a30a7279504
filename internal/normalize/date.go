package normalize

import (
	"strings"
	"time"
)

// pendingSentinel marks a transaction the source has not settled yet. It is
// a valid "no date" outcome, not a parse failure.
const pendingSentinel = "pending"

// explicitLayouts are tried in order before any fallback. 02/01/2006 is
// day-first on purpose: ambiguous dd/mm values always read day-before-month.
var explicitLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"02/01/2006",
	"2006-01-02",
}

// fallbackLayouts approximate a general best-effort parse for date strings
// the explicit list misses.
var fallbackLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	"2006-01-02 15:04:05",
	"02/01/2006 15:04",
	"2/1/2006 15:04",
	"2/1/2006",
	"02-01-2006",
	"2 Jan 2006",
	"2 January 2006",
}

// Date parses a heterogeneous date string into a UTC instant. Values that
// carry a zone offset are converted to UTC; naive values are interpreted as
// UTC local time (reference-zone policy, not auto-detection). The pending
// sentinel, empty input, and total parse failure all yield nil; callers
// treat that as a terminal state, never an error.
func Date(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, pendingSentinel) {
		return nil
	}

	for _, layout := range explicitLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}
