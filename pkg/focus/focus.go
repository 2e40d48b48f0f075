// Package focus relays "show this location" requests from the schedule to
// whatever renders geography.
package focus

import "tableflip.dev/escala/pkg/itinerary"

// Renderer is the map collaborator; it receives the coordinate to center on
// and emits nothing back.
type Renderer interface {
	Focus(c itinerary.Coordinates)
}

// Coordinator forwards focus requests. It keeps only the last requested
// coordinate; a new request supersedes the previous one immediately, with no
// queue and no debounce.
type Coordinator struct {
	renderer Renderer
	last     *itinerary.Coordinates
}

func New(r Renderer) *Coordinator {
	return &Coordinator{renderer: r}
}

// Request relays the primary coordinate to the renderer. The end coordinate
// is accepted for callers that have one but is not part of the hand-off.
func (c *Coordinator) Request(coords itinerary.Coordinates, _ *itinerary.Coordinates) {
	cp := coords
	c.last = &cp
	if c.renderer != nil {
		c.renderer.Focus(coords)
	}
}

// Last returns the most recently requested coordinate, if any.
func (c *Coordinator) Last() (itinerary.Coordinates, bool) {
	if c.last == nil {
		return itinerary.Coordinates{}, false
	}
	return *c.last, true
}
