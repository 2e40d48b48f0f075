package itinerary

import (
	"fmt"

	"tableflip.dev/escala/pkg/timeutil"
)

// CriticalNote is the authored marker for a must-not-miss activity.
const CriticalNote = "CRITICAL"

// Coordinates is a geographic point handed off to map collaborators.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity is one scheduled stop in the excursion. The authored fields are
// immutable at runtime; Completed is the only field that changes.
type Activity struct {
	ID           string       `json:"id"`
	StartTime    string       `json:"startTime"`
	EndTime      string       `json:"endTime"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	KeyDetails   string       `json:"keyDetails,omitempty"`
	LocationName string       `json:"locationName,omitempty"`
	Type         string       `json:"type,omitempty"`
	PriceEUR     float64      `json:"priceEUR"`
	Coords       Coordinates  `json:"coords"`
	EndCoords    *Coordinates `json:"endCoords,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	Completed    bool         `json:"completed"`
}

// Critical reports whether the activity carries the must-not-miss marker.
func (a *Activity) Critical() bool {
	return a.Notes == CriticalNote
}

// Span renders the activity's duration, for example "1h 30m".
func (a *Activity) Span() string {
	return timeutil.Span(a.StartTime, a.EndTime)
}

func (a *Activity) String() string {
	return fmt.Sprintf("%s - %s  %s", a.StartTime, a.EndTime, a.Title)
}

// Status is the three-way presentation classification of an activity. It is
// data for downstream renderers, not styling.
type Status int

const (
	StatusNormal Status = iota
	StatusCompleted
	StatusCritical
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusCritical:
		return "critical"
	default:
		return "normal"
	}
}

// StatusOf classifies an activity. Completion wins over the critical marker.
func StatusOf(a *Activity) Status {
	switch {
	case a == nil:
		return StatusNormal
	case a.Completed:
		return StatusCompleted
	case a.Critical():
		return StatusCritical
	default:
		return StatusNormal
	}
}

// Clone returns a deep copy so callers can hand activities across boundaries
// without aliasing the authored list.
func (a *Activity) Clone() *Activity {
	if a == nil {
		return nil
	}
	cp := *a
	if a.EndCoords != nil {
		ec := *a.EndCoords
		cp.EndCoords = &ec
	}
	return &cp
}
