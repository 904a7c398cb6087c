// Package format converts raw domain values into the display strings the
// site renders. Every function is a pure transform over its arguments; the
// current time is always passed in explicitly so callers control the clock.
package format

import (
	"fmt"
	"time"
)

// DateStyle selects how Date renders a timestamp.
type DateStyle string

const (
	DateShort    DateStyle = "short"
	DateLong     DateStyle = "long"
	DateRelative DateStyle = "relative"
)

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 date string, returning the zero time.Time when
// the input does not parse. Callers that need strict validation must check
// IsZero themselves; formatters render a zero time as an empty string.
func ParseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Date renders t in the given style. An unknown style falls back to short.
func Date(t time.Time, style DateStyle, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	switch style {
	case DateLong:
		return t.Format("January 2, 2006")
	case DateRelative:
		return RelativeTime(t, now)
	default:
		return t.Format("Jan 2, 2006")
	}
}

// DateRange renders a start/end pair the way tournament cards show it:
// same day "Jan 2", same month "Jan 2 - 5", otherwise "Jan 2 - Feb 5".
// The year is never shown.
func DateRange(start, end time.Time) string {
	if start.IsZero() || end.IsZero() {
		return ""
	}
	switch {
	case sameDay(start, end):
		return start.Format("Jan 2")
	case start.Year() == end.Year() && start.Month() == end.Month():
		return fmt.Sprintf("%s - %d", start.Format("Jan 2"), end.Day())
	default:
		return start.Format("Jan 2") + " - " + end.Format("Jan 2")
	}
}

// RelativeTime buckets the time elapsed between t and now. Buckets are
// half-open with strict floor division: <60s "just now", then m, h, d,
// w (7d, up to 4), mo (30d, up to 12), y (365d).
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	seconds := int(now.Sub(t).Seconds())
	if seconds < 60 {
		return "just now"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dd ago", days)
	}
	if weeks := days / 7; weeks < 4 {
		return fmt.Sprintf("%dw ago", weeks)
	}
	if months := days / 30; months < 12 {
		return fmt.Sprintf("%dmo ago", months)
	}
	return fmt.Sprintf("%dy ago", days/365)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
