package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/escala/pkg/commands/options"
	"tableflip.dev/escala/pkg/runner/done"
	"tableflip.dev/escala/pkg/store"
)

func addDone(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle an activity between done and pending.",
		Example: `
escala done g3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an activity id, try escala timeline --show-id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := done.Done{
				ID:          strings.Join(args, " "),
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
