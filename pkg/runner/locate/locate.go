// Package locate provides the runner logic for map focus requests.
package locate

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/escala/pkg/focus"
	"tableflip.dev/escala/pkg/guide"
	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/schedule"
	"tableflip.dev/escala/pkg/store"
)

// Locate resolves an activity's coordinates and routes them through the
// focus coordinator. The terminal renderer emits a directions link in place
// of a map recenter.
type Locate struct {
	ID          string
	Persistence store.Persistence
	Renderer    focus.Renderer
}

func (n *Locate) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("can not locate, no activity id")
	}

	sched := schedule.New(ctx, itinerary.Genova(), n.Persistence)
	a := sched.Find(n.ID)
	if a == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("no activity with id %q\n", n.ID)
		return nil
	}

	r := n.Renderer
	if r == nil {
		r = terminalRenderer{title: a.Title, location: a.LocationName}
	}
	focus.New(r).Request(a.Coords, a.EndCoords)
	return nil
}

type terminalRenderer struct {
	title    string
	location string
}

func (t terminalRenderer) Focus(c itinerary.Coordinates) {
	fmt.Printf("%s (%s)\n", t.title, t.location)
	fmt.Printf("  %.4f, %.4f\n", c.Lat, c.Lng)
	fmt.Printf("  %s\n", guide.DirectionsURL(c))
}
