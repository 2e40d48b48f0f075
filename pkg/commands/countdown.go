package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/escala/pkg/commands/options"
	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/runner/clock"
)

func addCountdown(topLevel *cobra.Command) {
	co := &options.ClockOptions{}

	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Time left until all aboard.",
		Example: `
escala countdown
escala countdown --watch
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := clock.Clock{
				Deadline: co.Deadline,
				Watch:    co.Watch,
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddClockArgs(cmd, co, itinerary.OnboardTime)

	topLevel.AddCommand(cmd)
}
