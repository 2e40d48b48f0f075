package options

import (
	"github.com/spf13/cobra"
)

// ClockOptions
type ClockOptions struct {
	Deadline string
	Watch    bool
}

func AddClockArgs(cmd *cobra.Command, o *ClockOptions, defaultDeadline string) {
	cmd.Flags().StringVar(&o.Deadline, "deadline", defaultDeadline,
		"All-aboard deadline as HH:MM.")
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep the countdown on screen, updating every second.")
}
