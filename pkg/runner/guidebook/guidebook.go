// Package guidebook provides the runner logic for the guide page: visit
// summary, phrasebook, and the SOS hand-off.
package guidebook

import (
	"context"
	"fmt"

	"tableflip.dev/escala/pkg/geo"
	"tableflip.dev/escala/pkg/guide"
	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/printers"
)

// Guidebook prints the offline guide content. The tracker's fix, when known,
// feeds the SOS message; without one the message still works.
type Guidebook struct {
	Tracker *geo.Tracker
}

func (n *Guidebook) Do(_ context.Context) error {
	pp := printers.PrettyPrint{}

	fmt.Println("")
	pp.Title("Visit Summary")
	pp.Summary(guide.Summarize(itinerary.Genova()))

	fmt.Println("")
	pp.Title("Walking Route")
	pp.Route(itinerary.Waypoints, itinerary.WalkTrack)

	fmt.Println("")
	pp.Title("Basic Italian")
	pp.Phrasebook(guide.Phrasebook)

	var pos *itinerary.Coordinates
	if n.Tracker != nil {
		if fix, ok := n.Tracker.Latest(); ok {
			pos = &fix
		}
	}

	fmt.Println("")
	pp.Title("SOS")
	fmt.Println(guide.SOSMessage(pos))
	fmt.Printf("share: %s\n", guide.SOSShareURL(pos))
	return nil
}
