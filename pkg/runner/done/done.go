// Package done provides the runner logic for toggling activity completion.
package done

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/printers"
	"tableflip.dev/escala/pkg/schedule"
	"tableflip.dev/escala/pkg/store"
)

// Done toggles the completion flag of one activity and reprints the timeline.
type Done struct {
	ID          string
	Persistence store.Persistence
}

func (n *Done) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not toggle, no persistence")
	}

	sched := schedule.New(ctx, itinerary.Genova(), n.Persistence)
	a, err := sched.Toggle(n.ID)
	if errors.Is(err, schedule.ErrNotFound) {
		// A caller contract miss, not a user error.
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("no activity with id %q\n", n.ID)
		return nil
	}
	if err != nil {
		return err
	}

	state := "pending again"
	if a.Completed {
		state = "done"
	}
	fmt.Printf("%s is %s\n\n", a.Title, state)

	pp := printers.PrettyPrint{ShowID: true}
	pp.Timeline(time.Now(), sched.Activities()...)
	return nil
}
