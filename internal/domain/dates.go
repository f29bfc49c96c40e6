package domain

import (
	"strings"
	"time"
)

// dateLayouts covers the formats the spreadsheet feed has been seen to
// emit. Order matters: more specific layouts first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"1/2/2006 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"02-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate parses a date-like feed value defensively. The second return
// is false when the value is empty or matches no known layout; callers
// treat such values as absent for date math while keeping the raw string
// for display.
func ParseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a feed date for display as e.g. "Jan 2, 2006".
// Unparseable values come back verbatim.
func FormatDate(value string) string {
	t, ok := ParseDate(value)
	if !ok {
		return strings.TrimSpace(value)
	}
	return t.Format("Jan 2, 2006")
}

// AgeDays returns the whole number of days between raised and now,
// truncated toward zero.
func AgeDays(raised, now time.Time) int {
	return int(now.Sub(raised) / (24 * time.Hour))
}
