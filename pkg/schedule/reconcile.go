package schedule

import (
	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/store"
)

// Reconcile copies persisted completion flags onto the authoritative list,
// matching by id. Snapshot entries without a matching activity are dropped;
// activities without a snapshot entry keep their authored default. The list
// itself, its ordering and its content are never replaced by snapshot data,
// so authored changes always win over stale completion records.
//
// Reconciling twice with the same marks is the same as reconciling once.
func Reconcile(authoritative []*itinerary.Activity, marks []store.Mark) {
	if len(marks) == 0 {
		return
	}
	byID := make(map[string]bool, len(marks))
	for _, m := range marks {
		byID[m.ID] = m.Completed
	}
	for _, a := range authoritative {
		if completed, ok := byID[a.ID]; ok {
			a.Completed = completed
		}
	}
}
