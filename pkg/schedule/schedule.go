// Package schedule owns the in-memory itinerary for a session. It is the
// single writer of completion state; everything else reads.
package schedule

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/store"
	"tableflip.dev/escala/pkg/timeutil"
)

var ErrNotFound = errors.New("schedule: no activity with that id")

// Schedule holds the ordered activity list. The authoritative sequence
// (identity, ordering, timing, content) never changes at runtime; Toggle
// flips Completed and nothing else.
type Schedule struct {
	activities  []*itinerary.Activity
	persistence store.Persistence
}

// New builds a schedule over the authoritative list and rehydrates completion
// flags from the persisted snapshot. A nil persistence is allowed and leaves
// the schedule memory-only.
func New(ctx context.Context, authoritative []*itinerary.Activity, p store.Persistence) *Schedule {
	s := &Schedule{activities: authoritative, persistence: p}
	if p != nil {
		Reconcile(s.activities, p.Load(ctx))
	}
	return s
}

// Activities returns the ordered list. Callers must treat it as read-only;
// all mutation goes through Toggle.
func (s *Schedule) Activities() []*itinerary.Activity {
	return s.activities
}

// Find returns the activity with the given id, or nil.
func (s *Schedule) Find(id string) *itinerary.Activity {
	for _, a := range s.activities {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Toggle flips the completion flag of exactly the matching activity and
// persists the full snapshot projection. An unknown id is reported as
// ErrNotFound and changes nothing.
func (s *Schedule) Toggle(id string) (*itinerary.Activity, error) {
	a := s.Find(id)
	if a == nil {
		return nil, ErrNotFound
	}
	a.Completed = !a.Completed
	if s.persistence != nil {
		if err := s.persistence.Save(s.Projection()); err != nil {
			// The in-memory flip stands; the session stays consistent and
			// the next successful toggle rewrites the whole snapshot.
			return a, err
		}
	}
	return a, nil
}

// Projection is the {id, completed} view of the full list, the only shape
// that ever reaches storage.
func (s *Schedule) Projection() []store.Mark {
	marks := make([]store.Mark, 0, len(s.activities))
	for _, a := range s.activities {
		marks = append(marks, store.Mark{ID: a.ID, Completed: a.Completed})
	}
	return marks
}

// GapBefore returns the idle minutes between activity index-1 ending and
// activity index starting. The first activity has no gap.
func (s *Schedule) GapBefore(index int) int {
	if index <= 0 || index >= len(s.activities) {
		return 0
	}
	return timeutil.GapMinutes(s.activities[index-1].EndTime, s.activities[index].StartTime)
}

// Progress reports how far now sits within the activity's window, 0-100.
func (s *Schedule) Progress(a *itinerary.Activity, now time.Time) float64 {
	if a == nil {
		return 0
	}
	return timeutil.ProgressPercent(a.StartTime, a.EndTime, now)
}

// Paid returns the activities with a price attached, in schedule order.
func (s *Schedule) Paid() []*itinerary.Activity {
	out := make([]*itinerary.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		if a.PriceEUR > 0 {
			out = append(out, a)
		}
	}
	return out
}

// TotalEUR sums the priced activities.
func (s *Schedule) TotalEUR() float64 {
	total := 0.0
	for _, a := range s.Paid() {
		total += a.PriceEUR
	}
	return total
}
