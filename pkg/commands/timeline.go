package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/escala/pkg/commands/options"
	"tableflip.dev/escala/pkg/runner/timeline"
	"tableflip.dev/escala/pkg/store"
)

func addTimeline(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the day plan with live progress.",
		Example: `
escala timeline
escala timeline --show-id
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := timeline.Timeline{
				ShowID:      io.ShowID,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
