package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/escala/pkg/runner/budget"
	"tableflip.dev/escala/pkg/store"
)

func addBudget(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "List the priced activities and the day total.",
		Example: `
escala budget
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := budget.Budget{Persistence: p}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
