package ui

import (
	"context"

	"tableflip.dev/escala/pkg/store"
	"tableflip.dev/escala/pkg/tui"
)

// UI launches the interactive port call screen.
type UI struct {
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	return tui.Run(ctx, n.Persistence)
}
