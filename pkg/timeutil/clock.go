package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var clockPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// ParseClock parses a 24-hour wall-clock string (for example "09:30") and
// returns minutes from midnight.
func ParseClock(input string) (int, error) {
	matches := clockPattern.FindStringSubmatch(input)
	if len(matches) != 3 {
		return 0, fmt.Errorf("invalid clock time %q", input)
	}
	h, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock hour %q: %w", matches[1], err)
	}
	m, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, fmt.Errorf("invalid clock minute %q: %w", matches[2], err)
	}
	return h*60 + m, nil
}

// MinuteOfDay returns the wall-clock minute of the day for t, local time.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Span renders the length of the window between two clock times, for example
// "2h 30m" or "45m". A window that does not move forward renders as "0m"
// rather than an error; ordering is the caller's invariant, not ours.
func Span(start, end string) string {
	s, err := ParseClock(start)
	if err != nil {
		return FormatMinutes(0)
	}
	e, err := ParseClock(end)
	if err != nil {
		return FormatMinutes(0)
	}
	if e <= s {
		return FormatMinutes(0)
	}
	return FormatMinutes(e - s)
}

// ProgressPercent reports how far now sits within the [start, end) window as
// a value clamped to [0, 100]. Before start it is 0, at or after end it is
// 100. Malformed clock strings degrade to 0.
func ProgressPercent(start, end string, now time.Time) float64 {
	s, err := ParseClock(start)
	if err != nil {
		return 0
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0
	}
	if e <= s {
		return 0
	}
	n := MinuteOfDay(now)
	if n <= s {
		return 0
	}
	if n >= e {
		return 100
	}
	return float64(n-s) / float64(e-s) * 100
}

// GapMinutes returns the idle minutes between the end of one window and the
// start of the next. Back-to-back or overlapping windows yield 0; a negative
// gap never surfaces.
func GapMinutes(prevEnd, nextStart string) int {
	e, err := ParseClock(prevEnd)
	if err != nil {
		return 0
	}
	s, err := ParseClock(nextStart)
	if err != nil {
		return 0
	}
	if s <= e {
		return 0
	}
	return s - e
}

// FormatMinutes renders whole minutes, switching to hours and minutes once
// the count reaches an hour.
func FormatMinutes(n int) string {
	if n < 0 {
		n = 0
	}
	if n < 60 {
		return fmt.Sprintf("%dm", n)
	}
	h := n / 60
	m := n % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
