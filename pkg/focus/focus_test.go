package focus

import (
	"testing"

	"tableflip.dev/escala/pkg/itinerary"
)

type recordingRenderer struct {
	calls []itinerary.Coordinates
}

func (r *recordingRenderer) Focus(c itinerary.Coordinates) {
	r.calls = append(r.calls, c)
}

func TestRequestRelaysPrimaryCoords(t *testing.T) {
	r := &recordingRenderer{}
	c := New(r)

	start := itinerary.Coordinates{Lat: 44.41, Lng: 8.93}
	end := itinerary.Coordinates{Lat: 44.40, Lng: 8.94}
	c.Request(start, &end)

	if len(r.calls) != 1 || r.calls[0] != start {
		t.Fatalf("expected relay of primary coords, got %v", r.calls)
	}
}

func TestLastRequestSupersedes(t *testing.T) {
	r := &recordingRenderer{}
	c := New(r)

	first := itinerary.Coordinates{Lat: 1, Lng: 1}
	second := itinerary.Coordinates{Lat: 2, Lng: 2}
	c.Request(first, nil)
	c.Request(second, nil)

	got, ok := c.Last()
	if !ok || got != second {
		t.Fatalf("expected last request %v, got %v ok=%v", second, got, ok)
	}
	if len(r.calls) != 2 {
		t.Fatalf("expected each request relayed, got %d calls", len(r.calls))
	}
}

func TestLastBeforeAnyRequest(t *testing.T) {
	c := New(nil)
	if _, ok := c.Last(); ok {
		t.Fatal("expected no last coordinate before any request")
	}
	// A nil renderer only records; it must not panic.
	c.Request(itinerary.Coordinates{Lat: 3, Lng: 4}, nil)
	if got, ok := c.Last(); !ok || got.Lat != 3 {
		t.Fatalf("expected recorded request, got %v ok=%v", got, ok)
	}
}
