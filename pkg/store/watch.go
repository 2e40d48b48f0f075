package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when the snapshot changes on disk,
// for example when a second escala process records a toggle.
type Event struct{}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel to avoid blocking the watcher. The channel is closed
// once ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 8)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func() {
			select {
			case events <- Event{}:
			default:
				// Drop events if the consumer is not ready; the next refresh
				// re-reads the full snapshot anyway.
			}
		}

		var last time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				send()
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !snapshotPath(evt.Name) {
					continue
				}
				// Coalesce the write+rename bursts diskv produces per save.
				if now := time.Now(); now.Sub(last) > 50*time.Millisecond {
					last = now
					send()
				}
			}
		}
	}()

	return events, nil
}

func snapshotPath(path string) bool {
	return strings.HasPrefix(filepath.Base(path), SnapshotKey)
}
