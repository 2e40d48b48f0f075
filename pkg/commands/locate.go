package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/escala/pkg/runner/locate"
	"tableflip.dev/escala/pkg/store"
)

func addLocate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "locate <id>",
		Short: "Show where an activity is and how to walk there.",
		Example: `
escala locate g4
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
			s := locate.Locate{
				ID:          strings.Join(args, " "),
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
