package schedule

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/store"
)

type memoryPersistence struct {
	marks   []store.Mark
	saves   int
	saveErr error
}

func (m *memoryPersistence) Load(_ context.Context) []store.Mark {
	return m.marks
}

func (m *memoryPersistence) Save(marks []store.Mark) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.marks = append([]store.Mark(nil), marks...)
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func testActivities() []*itinerary.Activity {
	return []*itinerary.Activity{
		{ID: "a1", StartTime: "08:00", EndTime: "09:00", Title: "Disembark"},
		{ID: "a2", StartTime: "09:00", EndTime: "10:00", Title: "Harbour Walk"},
		{ID: "a3", StartTime: "10:15", EndTime: "11:30", Title: "Aquarium", PriceEUR: 29},
		{ID: "a4", StartTime: "17:00", EndTime: "18:00", Title: "Reboard", Notes: itinerary.CriticalNote},
	}
}

func TestToggleFlipsExactlyOne(t *testing.T) {
	mp := &memoryPersistence{}
	s := New(context.Background(), testActivities(), mp)
	want := testActivities() // untouched twin for field comparison

	a, err := s.Toggle("a2")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !a.Completed {
		t.Fatal("expected a2 completed")
	}

	for i, got := range s.Activities() {
		expected := *want[i]
		if got.ID == "a2" {
			expected.Completed = true
		}
		if !reflect.DeepEqual(*got, expected) {
			t.Fatalf("activity %s changed beyond the flag: got %+v want %+v", got.ID, *got, expected)
		}
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	s := New(context.Background(), testActivities(), &memoryPersistence{})
	if _, err := s.Toggle("a1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := s.Toggle("a1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if s.Find("a1").Completed {
		t.Fatal("expected a1 back to not completed")
	}
}

func TestTogglePersistsFullProjection(t *testing.T) {
	mp := &memoryPersistence{}
	s := New(context.Background(), testActivities(), mp)
	if _, err := s.Toggle("a3"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if mp.saves != 1 {
		t.Fatalf("expected 1 save, got %d", mp.saves)
	}
	want := []store.Mark{
		{ID: "a1"}, {ID: "a2"}, {ID: "a3", Completed: true}, {ID: "a4"},
	}
	if !reflect.DeepEqual(mp.marks, want) {
		t.Fatalf("expected projection %v, got %v", want, mp.marks)
	}
}

func TestToggleUnknownID(t *testing.T) {
	mp := &memoryPersistence{}
	s := New(context.Background(), testActivities(), mp)
	if _, err := s.Toggle("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if mp.saves != 0 {
		t.Fatalf("unknown id must not write a snapshot, got %d saves", mp.saves)
	}
	for _, a := range s.Activities() {
		if a.Completed {
			t.Fatalf("unknown id flipped %s", a.ID)
		}
	}
}

func TestToggleSurvivesSaveFailure(t *testing.T) {
	mp := &memoryPersistence{saveErr: errors.New("disk full")}
	s := New(context.Background(), testActivities(), mp)
	a, err := s.Toggle("a1")
	if err == nil {
		t.Fatal("expected save error to surface")
	}
	if a == nil || !a.Completed {
		t.Fatal("in-memory flip must stand despite the save failure")
	}
}

func TestToggleWithoutPersistence(t *testing.T) {
	s := New(context.Background(), testActivities(), nil)
	if _, err := s.Toggle("a1"); err != nil {
		t.Fatalf("memory-only toggle: %v", err)
	}
}

func TestGapBefore(t *testing.T) {
	s := New(context.Background(), testActivities(), nil)
	tests := []struct {
		index int
		want  int
	}{
		{index: 0, want: 0},   // first activity never has a gap
		{index: 1, want: 0},   // back to back
		{index: 2, want: 15},  // 10:00 -> 10:15
		{index: 3, want: 330}, // 11:30 -> 17:00
		{index: -1, want: 0},
		{index: 99, want: 0},
	}
	for _, tc := range tests {
		if got := s.GapBefore(tc.index); got != tc.want {
			t.Fatalf("GapBefore(%d): expected %d, got %d", tc.index, tc.want, got)
		}
	}
}

func TestPaidAndTotal(t *testing.T) {
	s := New(context.Background(), testActivities(), nil)
	paid := s.Paid()
	if len(paid) != 1 || paid[0].ID != "a3" {
		t.Fatalf("expected only a3 paid, got %v", paid)
	}
	if got := s.TotalEUR(); got != 29 {
		t.Fatalf("expected total 29, got %v", got)
	}
}

func TestNewRehydratesFromSnapshot(t *testing.T) {
	mp := &memoryPersistence{marks: []store.Mark{{ID: "a2", Completed: true}}}
	s := New(context.Background(), testActivities(), mp)
	if !s.Find("a2").Completed {
		t.Fatal("expected a2 rehydrated as completed")
	}
	if s.Find("a1").Completed || s.Find("a3").Completed {
		t.Fatal("unexpected completion on untouched activities")
	}
}
