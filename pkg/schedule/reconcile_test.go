package schedule

import (
	"reflect"
	"testing"

	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/store"
)

func TestReconcileMergesByID(t *testing.T) {
	acts := testActivities()
	Reconcile(acts, []store.Mark{
		{ID: "a1", Completed: true},
		{ID: "a3", Completed: true},
	})
	if !acts[0].Completed || !acts[2].Completed {
		t.Fatal("expected a1 and a3 completed")
	}
	if acts[1].Completed || acts[3].Completed {
		t.Fatal("unexpected completion copied onto unmatched activities")
	}
}

func TestReconcileDropsUnknownSnapshotIDs(t *testing.T) {
	acts := testActivities()
	Reconcile(acts, []store.Mark{{ID: "x2", Completed: true}})
	if len(acts) != 4 {
		t.Fatalf("reconcile changed the activity count: %d", len(acts))
	}
	for _, a := range acts {
		if a.ID == "x2" {
			t.Fatal("snapshot-only id leaked into the schedule")
		}
		if a.Completed {
			t.Fatalf("unexpected completion on %s", a.ID)
		}
	}
}

func TestReconcileNewActivityDefaultsFalse(t *testing.T) {
	acts := append(testActivities(), &itinerary.Activity{
		ID: "x9", StartTime: "18:00", EndTime: "18:15", Title: "New Stop",
	})
	Reconcile(acts, []store.Mark{{ID: "a1", Completed: true}})
	if acts[len(acts)-1].Completed {
		t.Fatal("new activity must default to not completed")
	}
}

func TestReconcilePreservesOrderAndContent(t *testing.T) {
	acts := testActivities()
	want := testActivities()
	want[1].Completed = true

	Reconcile(acts, []store.Mark{
		{ID: "a2", Completed: true},
		{ID: "zz", Completed: true},
	})

	if len(acts) != len(want) {
		t.Fatalf("count changed: %d", len(acts))
	}
	for i := range want {
		if !reflect.DeepEqual(*acts[i], *want[i]) {
			t.Fatalf("activity %d diverged: got %+v want %+v", i, *acts[i], *want[i])
		}
	}
}

func TestReconcileIdempotent(t *testing.T) {
	marks := []store.Mark{
		{ID: "a1", Completed: true},
		{ID: "a4", Completed: false},
	}
	once := testActivities()
	Reconcile(once, marks)
	twice := testActivities()
	Reconcile(twice, marks)
	Reconcile(twice, marks)
	for i := range once {
		if !reflect.DeepEqual(*once[i], *twice[i]) {
			t.Fatalf("activity %d: reconcile not idempotent", i)
		}
	}
}

func TestReconcileEmptySnapshot(t *testing.T) {
	acts := testActivities()
	Reconcile(acts, nil)
	for _, a := range acts {
		if a.Completed {
			t.Fatalf("empty snapshot completed %s", a.ID)
		}
	}
}
