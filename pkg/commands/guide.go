package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/escala/pkg/commands/options"
	"tableflip.dev/escala/pkg/geo"
	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/runner/guidebook"
)

func addGuide(topLevel *cobra.Command) {
	po := &options.PositionOptions{}

	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Visit summary, phrasebook and the SOS message.",
		Example: `
escala guide
escala guide --lat 44.4095 --lng 8.9262
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker := &geo.Tracker{}
			if options.HasFix(cmd) {
				tracker.Update(itinerary.Coordinates{Lat: po.Lat, Lng: po.Lng})
			}
			s := guidebook.Guidebook{Tracker: tracker}
			return s.Do(context.Background())
		},
	}

	options.AddPositionArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
