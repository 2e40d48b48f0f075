package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// SnapshotKey is the storage key for the persisted completion snapshot.
const SnapshotKey = "genova_guide_v1_storage"

// Mark is one persisted completion record. Snapshots are a list of marks,
// nothing else; extra fields in stored data are ignored on read.
type Mark struct {
	ID        string `json:"id"`
	Completed bool   `json:"completed"`
}

// Persistence defines the persistence contract for the completion snapshot.
type Persistence interface {
	// Load returns the persisted marks. An absent or unreadable snapshot
	// degrades to nil; it is never an error.
	Load(ctx context.Context) []Mark
	// Save overwrites the snapshot with the full set of marks.
	Save(marks []Mark) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Load(_ context.Context) []Mark {
	if !p.d.Has(SnapshotKey) {
		return nil
	}
	val, err := p.d.Read(SnapshotKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read snapshot: %v\n", err)
		return nil
	}
	var marks []Mark
	if err := json.Unmarshal(val, &marks); err != nil {
		// A snapshot we cannot parse is the same as no snapshot. The next
		// toggle rewrites it wholesale.
		fmt.Fprintf(os.Stderr, "store: snapshot unreadable, starting fresh: %v\n", err)
		return nil
	}
	out := marks[:0]
	for _, m := range marks {
		if m.ID == "" {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (p *persistence) Save(marks []Mark) error {
	if marks == nil {
		marks = []Mark{}
	}
	data, err := json.Marshal(marks)
	if err != nil {
		return fmt.Errorf("store: marshal snapshot: %w", err)
	}
	if err := p.d.Write(SnapshotKey, data); err != nil {
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	return nil
}
