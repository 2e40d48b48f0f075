// Package guide carries the offline reference content for the port call:
// the phrasebook, the visit summary, and the SOS hand-off.
package guide

import (
	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/timeutil"
)

// Phrase is one phrasebook row: the Italian word, a simplified
// pronunciation, and the meaning.
type Phrase struct {
	Word       string
	Simplified string
	Meaning    string
}

// Phrasebook is the authored basic-Italian list.
var Phrasebook = []Phrase{
	{Word: "Buongiorno", Simplified: "bwon-JOR-no", Meaning: "good morning"},
	{Word: "Grazie", Simplified: "GRAH-tsyeh", Meaning: "thank you"},
	{Word: "Per favore", Simplified: "pehr fah-VOH-reh", Meaning: "please"},
	{Word: "Quanto costa?", Simplified: "KWAN-toh KOS-tah", Meaning: "how much?"},
	{Word: "Dov'è il porto?", Simplified: "doh-VEH eel POR-toh", Meaning: "where is the port?"},
	{Word: "Il conto", Simplified: "eel KON-toh", Meaning: "the bill"},
	{Word: "Aiuto!", Simplified: "ah-YOO-toh", Meaning: "help!"},
	{Word: "Scusi", Simplified: "SKOO-zee", Meaning: "excuse me"},
}

// Summary is the at-a-glance shape of the excursion shown on the guide page.
type Summary struct {
	TotalWindow   string // terminal exit to all-aboard
	ActiveTime    string // time inside scheduled non-logistics activities
	WalkingKM     float64
	StepsApprox   string
	POICount      int
	Accessibility string
}

// Authored figures the schedule cannot derive.
const (
	walkingKM     = 6.2
	stepsApprox   = "~8,500"
	accessibility = "100% on foot"
)

// Summarize derives the visit summary from the authored schedule.
func Summarize(activities []*itinerary.Activity) Summary {
	s := Summary{
		WalkingKM:     walkingKM,
		StepsApprox:   stepsApprox,
		Accessibility: accessibility,
		TotalWindow:   timeutil.FormatMinutes(0),
		ActiveTime:    timeutil.FormatMinutes(0),
	}
	if len(activities) == 0 {
		return s
	}

	s.POICount = len(activities) + len(itinerary.Waypoints)
	s.TotalWindow = timeutil.Span(activities[0].StartTime, itinerary.OnboardTime)

	active := 0
	for _, a := range activities {
		if a.Type == "logistics" {
			continue
		}
		start, err := timeutil.ParseClock(a.StartTime)
		if err != nil {
			continue
		}
		end, err := timeutil.ParseClock(a.EndTime)
		if err != nil || end <= start {
			continue
		}
		active += end - start
	}
	s.ActiveTime = timeutil.FormatMinutes(active)
	return s
}
