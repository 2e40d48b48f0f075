package commands

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "escala",
		Short: "Shore day companion for the Genova port call.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addTimeline(topLevel)
	addDone(topLevel)
	addCountdown(topLevel)
	addBudget(topLevel)
	addGuide(topLevel)
	addWeather(topLevel)
	addLocate(topLevel)
	addVersion(topLevel)
}
