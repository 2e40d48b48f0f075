// Package clock provides the runner logic for the onboard countdown.
package clock

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/escala/pkg/countdown"
)

// Clock prints the countdown to the all-aboard deadline, either once or as a
// ticking watch.
type Clock struct {
	Deadline string
	Watch    bool
}

func (n *Clock) Do(ctx context.Context) error {
	c, err := countdown.New(n.Deadline)
	if err != nil {
		return err
	}

	if !n.Watch {
		fmt.Println(c.Display(time.Now()))
		return nil
	}

	// Each tick recomputes from the wall clock, so a suspended process
	// corrects itself on the next tick.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	fmt.Printf("\r%s ", c.Display(time.Now()))
	for {
		select {
		case <-ctx.Done():
			fmt.Println("")
			return nil
		case now := <-ticker.C:
			fmt.Printf("\r%s ", c.Display(now))
			if _, arrived := c.Remaining(now); arrived {
				fmt.Println("")
				return nil
			}
		}
	}
}
