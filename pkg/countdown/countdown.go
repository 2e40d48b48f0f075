// Package countdown computes remaining time until the daily onboard
// deadline. Every tick is a pure recomputation from the current wall clock,
// so missed or reordered ticks self-correct.
package countdown

import (
	"fmt"
	"time"

	"tableflip.dev/escala/pkg/timeutil"
)

// Arrived is the terminal display once the deadline has passed.
const Arrived = "ALL ABOARD"

// Clock counts down to a fixed HH:MM deadline today. Once the deadline
// passes the clock stays arrived for the rest of the process; there is no
// day rollover.
type Clock struct {
	hour    int
	minute  int
	arrived bool
}

// New validates the deadline and returns a clock for it.
func New(deadline string) (*Clock, error) {
	mins, err := timeutil.ParseClock(deadline)
	if err != nil {
		return nil, fmt.Errorf("countdown: %w", err)
	}
	return &Clock{hour: mins / 60, minute: mins % 60}, nil
}

// Remaining returns the time left until the deadline and whether the clock
// has arrived. A negative remainder never surfaces.
func (c *Clock) Remaining(now time.Time) (time.Duration, bool) {
	if c.arrived {
		return 0, true
	}
	target := time.Date(now.Year(), now.Month(), now.Day(), c.hour, c.minute, 0, 0, now.Location())
	diff := target.Sub(now)
	if diff <= 0 {
		c.arrived = true
		return 0, true
	}
	return diff, false
}

// Display renders the countdown for now, either the zero-padded remainder or
// the terminal arrived text.
func (c *Clock) Display(now time.Time) string {
	diff, arrived := c.Remaining(now)
	if arrived {
		return Arrived
	}
	return Format(diff)
}

// Format renders a duration as zero-padded "HHh MMm SSs".
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02dh %02dm %02ds", h, m, s)
}
