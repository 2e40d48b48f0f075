package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/escala/pkg/runner/forecast"
)

func addWeather(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Open-Meteo forecast for the port.",
		Example: `
escala weather
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := forecast.Forecast{}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
