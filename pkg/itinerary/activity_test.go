package itinerary

import (
	"testing"

	"tableflip.dev/escala/pkg/timeutil"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		act  *Activity
		want Status
	}{
		{name: "nil", act: nil, want: StatusNormal},
		{name: "plain", act: &Activity{ID: "a"}, want: StatusNormal},
		{name: "critical", act: &Activity{ID: "a", Notes: CriticalNote}, want: StatusCritical},
		{name: "completed", act: &Activity{ID: "a", Completed: true}, want: StatusCompleted},
		{name: "completed wins over critical", act: &Activity{ID: "a", Notes: CriticalNote, Completed: true}, want: StatusCompleted},
		{name: "other notes are not critical", act: &Activity{ID: "a", Notes: "bring water"}, want: StatusNormal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusOf(tc.act); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestGenovaAuthoredInvariants(t *testing.T) {
	acts := Genova()
	if len(acts) == 0 {
		t.Fatal("authored itinerary is empty")
	}

	seen := make(map[string]bool, len(acts))
	prevEnd := -1
	for i, a := range acts {
		if a.ID == "" {
			t.Fatalf("activity %d has no id", i)
		}
		if seen[a.ID] {
			t.Fatalf("duplicate id %q", a.ID)
		}
		seen[a.ID] = true

		start, err := timeutil.ParseClock(a.StartTime)
		if err != nil {
			t.Fatalf("%s: bad start time: %v", a.ID, err)
		}
		end, err := timeutil.ParseClock(a.EndTime)
		if err != nil {
			t.Fatalf("%s: bad end time: %v", a.ID, err)
		}
		if end <= start {
			t.Fatalf("%s: end %s not after start %s", a.ID, a.EndTime, a.StartTime)
		}
		if start < prevEnd {
			t.Fatalf("%s: overlaps previous activity", a.ID)
		}
		prevEnd = end

		if a.PriceEUR < 0 {
			t.Fatalf("%s: negative price", a.ID)
		}
		if a.Completed {
			t.Fatalf("%s: authored as completed", a.ID)
		}
	}

	if _, err := timeutil.ParseClock(OnboardTime); err != nil {
		t.Fatalf("bad onboard time: %v", err)
	}
}

func TestGenovaReturnsCopies(t *testing.T) {
	a := Genova()
	b := Genova()
	a[0].Completed = true
	a[0].Title = "mutated"
	if b[0].Completed || b[0].Title == "mutated" {
		t.Fatal("Genova() shares state between calls")
	}
}

func TestCloneCopiesEndCoords(t *testing.T) {
	orig := &Activity{ID: "a", EndCoords: &Coordinates{Lat: 1, Lng: 2}}
	cp := orig.Clone()
	cp.EndCoords.Lat = 9
	if orig.EndCoords.Lat != 1 {
		t.Fatal("Clone aliases EndCoords")
	}
}
