// Package timeline provides the runner logic for printing the schedule.
package timeline

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/escala/pkg/countdown"
	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/printers"
	"tableflip.dev/escala/pkg/schedule"
	"tableflip.dev/escala/pkg/store"
)

// Timeline prints the reconciled itinerary with transfers and progress.
type Timeline struct {
	ShowID      bool
	Persistence store.Persistence
}

func (n *Timeline) Do(ctx context.Context) error {
	sched := schedule.New(ctx, itinerary.Genova(), n.Persistence)
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	now := time.Now()
	fmt.Println("")
	pp.Title(fmt.Sprintf("Port Call Genova, %s", itinerary.PortDate))
	if c, err := countdown.New(itinerary.OnboardTime); err == nil {
		fmt.Printf("all aboard %s, %s\n\n", itinerary.OnboardTime, c.Display(now))
	}
	pp.Timeline(now, sched.Activities()...)

	return nil
}
