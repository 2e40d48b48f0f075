package options

import (
	"github.com/spf13/cobra"
)

// PositionOptions
type PositionOptions struct {
	Lat float64
	Lng float64
}

func AddPositionArgs(cmd *cobra.Command, o *PositionOptions) {
	cmd.Flags().Float64Var(&o.Lat, "lat", 0,
		"Current latitude, for the SOS message.")
	cmd.Flags().Float64Var(&o.Lng, "lng", 0,
		"Current longitude, for the SOS message.")
}

// HasFix reports whether a position was given on the command line.
func HasFix(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng")
}
