package timex

import (
	"strings"
	"time"
)

// ISOLayout matches the millisecond UTC form the backend expects for dates,
// e.g. 2024-05-01T00:00:00.000Z.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

var serverLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseServerTime parses the timestamp strings the backend produces. Strings
// without a zone are read as UTC. ok is false for blank or unparseable input.
func ParseServerTime(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range serverLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// FormatISO renders t in UTC using ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// SameDate reports whether a and b fall on the same calendar day in a's
// location.
func SameDate(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
