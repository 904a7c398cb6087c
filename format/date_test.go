package format_test

import (
	"testing"
	"time"

	"github.com/chessgrid/chess-stats/format"
)

var now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestDateRange(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{
			"same day",
			time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 3, 21, 0, 0, 0, time.UTC),
			"Jun 3",
		},
		{
			"same month",
			time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC),
			"Jun 3 - 9",
		},
		{
			"different months",
			time.Date(2025, time.June, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC),
			"Jun 28 - Jul 4",
		},
		{
			"same month different years",
			time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.December, 2, 0, 0, 0, 0, time.UTC),
			"Dec 30 - Dec 2",
		},
		{"zero start", time.Time{}, now, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format.DateRange(tt.start, tt.end); got != tt.want {
				t.Errorf("DateRange() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateRange_NeverShowsYear(t *testing.T) {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	got := format.DateRange(start, end)
	if got != "Mar 1 - 14" {
		t.Errorf("DateRange() = %q, want %q", got, "Mar 1 - 14")
	}
}

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds ago", 45 * time.Second, "just now"},
		{"boundary to minutes", 60 * time.Second, "1m ago"},
		{"minutes", 5 * time.Minute, "5m ago"},
		{"last minute before hours", 59*time.Minute + 59*time.Second, "59m ago"},
		{"hours", 3 * time.Hour, "3h ago"},
		{"last hour before days", 23 * time.Hour, "23h ago"},
		{"days", 2 * 24 * time.Hour, "2d ago"},
		{"weeks", 10 * 24 * time.Hour, "1w ago"},
		{"last week before months", 27 * 24 * time.Hour, "3w ago"},
		{"months", 45 * 24 * time.Hour, "1mo ago"},
		{"eleven months", 355 * 24 * time.Hour, "11mo ago"},
		{"years", 800 * 24 * time.Hour, "2y ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format.RelativeTime(now.Add(-tt.ago), now); got != tt.want {
				t.Errorf("RelativeTime(-%v) = %q, want %q", tt.ago, got, tt.want)
			}
		})
	}
}

func TestRelativeTime_Future(t *testing.T) {
	// Future timestamps land in the first bucket rather than erroring.
	if got := format.RelativeTime(now.Add(time.Hour), now); got != "just now" {
		t.Errorf("RelativeTime(future) = %q, want %q", got, "just now")
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		style format.DateStyle
		want  string
	}{
		{"short", format.DateShort, "Jun 3, 2025"},
		{"long", format.DateLong, "June 3, 2025"},
		{"relative", format.DateRelative, "1w ago"},
		{"unknown style falls back to short", format.DateStyle("fancy"), "Jun 3, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format.Date(d, tt.style, now); got != tt.want {
				t.Errorf("Date(%q) = %q, want %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantZero bool
	}{
		{"rfc3339", "2025-06-03T10:00:00Z", false},
		{"date only", "2025-06-03", false},
		{"no timezone", "2025-06-03T10:00:00", false},
		{"garbage", "not-a-date", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := format.ParseDate(tt.input)
			if got.IsZero() != tt.wantZero {
				t.Errorf("ParseDate(%q).IsZero() = %v, want %v", tt.input, got.IsZero(), tt.wantZero)
			}
		})
	}

	parsed := format.ParseDate("2025-06-03")
	if parsed.Year() != 2025 || parsed.Month() != time.June || parsed.Day() != 3 {
		t.Errorf("ParseDate(date only) = %v, want 2025-06-03", parsed)
	}
}
