// Package budget provides the runner logic for the spend breakdown.
package budget

import (
	"context"
	"fmt"

	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/printers"
	"tableflip.dev/escala/pkg/schedule"
	"tableflip.dev/escala/pkg/store"
)

// Budget prints the priced activities and the total.
type Budget struct {
	Persistence store.Persistence
}

func (n *Budget) Do(ctx context.Context) error {
	sched := schedule.New(ctx, itinerary.Genova(), n.Persistence)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Port Call Budget")
	pp.Budget(sched.Paid(), sched.TotalEUR())
	return nil
}
