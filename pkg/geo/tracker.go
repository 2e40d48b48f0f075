// Package geo tracks the latest known user position. The position source is
// external; this side only consumes whatever it last emitted.
package geo

import "tableflip.dev/escala/pkg/itinerary"

// Tracker holds the most recent position fix, or none. Consumers must handle
// the no-fix case explicitly; an absent position is a value, not an error.
type Tracker struct {
	pos   itinerary.Coordinates
	known bool
}

// Update records a new fix, replacing any previous one.
func (t *Tracker) Update(c itinerary.Coordinates) {
	t.pos = c
	t.known = true
}

// Clear forgets the current fix, e.g. when the source reports signal loss.
func (t *Tracker) Clear() {
	t.known = false
	t.pos = itinerary.Coordinates{}
}

// Latest returns the last known position and whether one exists.
func (t *Tracker) Latest() (itinerary.Coordinates, bool) {
	return t.pos, t.known
}
