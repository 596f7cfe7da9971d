package sources

import (
	"strings"
	"time"
)

// Layouts seen in registry responses and WHOIS output, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"02-Jan-2006",
	"02-Jan-2006 15:04:05 MST",
	"02-January-2006",
	"02.01.2006",
	"02/01/2006",
	"January 2 2006",
	"Jan 2 2006",
	"Mon Jan 2 15:04:05 MST 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// ParseDate parses a loosely formatted date and returns it as a calendar date
// (midnight in loc). Trailing annotations after the first field are tolerated.
func ParseDate(raw string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	s := strings.TrimSpace(strings.Trim(raw, "\r\n\t "))
	if s == "" {
		return time.Time{}, false
	}
	candidates := []string{s}
	if fields := strings.Fields(s); len(fields) > 1 {
		candidates = append(candidates, fields[0])
	}
	for _, c := range candidates {
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, c, loc); err == nil {
				return CalendarDate(t, loc), true
			}
		}
	}
	return time.Time{}, false
}

// CalendarDate truncates t to midnight of its day as observed in loc.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
