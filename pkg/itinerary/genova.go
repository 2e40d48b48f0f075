package itinerary

// Authored data for the Genova port call. The list is the authoritative
// schedule: pre-sorted by start time, non-overlapping, IDs stable. Runtime
// code never edits it beyond the Completed flag.

// OnboardTime is the all-aboard deadline for the ship, local time.
const OnboardTime = "18:30"

// PortDate is the authored date of the call, display only.
const PortDate = "14 April 2026"

// Genova returns a fresh copy of the authored itinerary.
func Genova() []*Activity {
	src := genovaItinerary
	out := make([]*Activity, 0, len(src))
	for _, a := range src {
		out = append(out, a.Clone())
	}
	return out
}

var genovaItinerary = []*Activity{
	{
		ID:           "g1",
		StartTime:    "08:00",
		EndTime:      "09:00",
		Title:        "Disembark & Terminal Exit",
		Description:  "Leave the ship at Ponte dei Mille, clear the cruise terminal and walk toward the old port.",
		KeyDetails:   "Carry the ship card and a photo of the terminal gate; re-entry is through gate 3 only.",
		LocationName: "Stazione Marittima",
		Type:         "logistics",
		Coords:       Coordinates{Lat: 44.4095, Lng: 8.9221},
	},
	{
		ID:           "g2",
		StartTime:    "09:00",
		EndTime:      "10:00",
		Title:        "Porto Antico Waterfront",
		Description:  "Loop the old harbour past the Bigo panoramic lift and the Biosfera glass bubble.",
		KeyDetails:   "Best light for photos is before 10:00, with the ship behind the Lanterna.",
		LocationName: "Porto Antico",
		Type:         "walk",
		Coords:       Coordinates{Lat: 44.4100, Lng: 8.9264},
	},
	{
		ID:           "g3",
		StartTime:    "10:00",
		EndTime:      "11:30",
		Title:        "Acquario di Genova",
		Description:  "Second largest aquarium in Europe. Dolphins, sharks and the cetacean pavilion.",
		KeyDetails:   "Skip-the-line tickets already booked; show the QR at the group entrance.",
		LocationName: "Ponte Spinola",
		Type:         "museum",
		PriceEUR:     29,
		Coords:       Coordinates{Lat: 44.4102, Lng: 8.9307},
	},
	{
		ID:           "g4",
		StartTime:    "11:45",
		EndTime:      "12:30",
		Title:        "Caruggi Old Town Maze",
		Description:  "Dive into the medieval alleys: Via San Luca, Piazza Banchi and the hidden votive shrines.",
		KeyDetails:   "Keep bags zipped in the narrow lanes; the alleys are safe but crowded.",
		LocationName: "Centro Storico",
		Type:         "walk",
		Coords:       Coordinates{Lat: 44.4088, Lng: 8.9306},
		EndCoords:    &Coordinates{Lat: 44.4075, Lng: 8.9320},
	},
	{
		ID:           "g5",
		StartTime:    "12:30",
		EndTime:      "13:30",
		Title:        "Focaccia & Pesto Lunch",
		Description:  "Trattoria lunch: focaccia col formaggio, trofie al pesto and a glass of Pigato.",
		KeyDetails:   "Antica Sciamadda takes cash only; budget roughly 15 per person.",
		LocationName: "Via San Giorgio",
		Type:         "food",
		PriceEUR:     15,
		Coords:       Coordinates{Lat: 44.4071, Lng: 8.9325},
	},
	{
		ID:           "g6",
		StartTime:    "13:30",
		EndTime:      "14:45",
		Title:        "Via Garibaldi & Palazzi dei Rolli",
		Description:  "Renaissance palace street, UNESCO listed. Courtyards of Palazzo Rosso and Palazzo Bianco.",
		KeyDetails:   "Courtyards are free; the museum circuit ticket covers all three palaces.",
		LocationName: "Via Garibaldi",
		Type:         "museum",
		PriceEUR:     9,
		Coords:       Coordinates{Lat: 44.4113, Lng: 8.9327},
	},
	{
		ID:           "g7",
		StartTime:    "15:00",
		EndTime:      "15:45",
		Title:        "Cattedrale di San Lorenzo",
		Description:  "Striped Gothic cathedral with the unexploded 1941 naval shell in the nave.",
		KeyDetails:   "Shoulders covered to enter; the British shell is in the right-hand chapel.",
		LocationName: "Piazza San Lorenzo",
		Type:         "sight",
		Coords:       Coordinates{Lat: 44.4077, Lng: 8.9316},
	},
	{
		ID:           "g8",
		StartTime:    "15:45",
		EndTime:      "16:30",
		Title:        "Piazza De Ferrari & Gelato",
		Description:  "The bronze fountain, Teatro Carlo Felice, and a last gelato on the walk back down.",
		KeyDetails:   "Gelateria Profumo is the local pick; pistachio and basil are the house flavours.",
		LocationName: "Piazza De Ferrari",
		Type:         "food",
		PriceEUR:     4,
		Coords:       Coordinates{Lat: 44.4072, Lng: 8.9340},
	},
	{
		ID:           "g9",
		StartTime:    "17:00",
		EndTime:      "18:00",
		Title:        "Return to Ship & Security",
		Description:  "Walk back along the waterfront to the terminal, clear security and reboard.",
		KeyDetails:   "All aboard is 18:30 sharp. The ship does not wait for independent passengers.",
		LocationName: "Stazione Marittima",
		Type:         "logistics",
		Coords:       Coordinates{Lat: 44.4095, Lng: 8.9221},
		Notes:        CriticalNote,
	},
}

// Waypoint is a named point of interest rendered on the map alongside the
// activity markers.
type Waypoint struct {
	Name   string
	Coords Coordinates
}

// Waypoints are secondary stops on the old-town walking route.
var Waypoints = []Waypoint{
	{Name: "Bigo Lift", Coords: Coordinates{Lat: 44.4106, Lng: 8.9277}},
	{Name: "Biosfera", Coords: Coordinates{Lat: 44.4108, Lng: 8.9290}},
	{Name: "Porta Soprana", Coords: Coordinates{Lat: 44.4059, Lng: 8.9339}},
	{Name: "Casa di Colombo", Coords: Coordinates{Lat: 44.4057, Lng: 8.9344}},
	{Name: "Palazzo Ducale", Coords: Coordinates{Lat: 44.4074, Lng: 8.9334}},
}

// WalkTrack is the authored old-town walking polyline, terminal to terminal.
var WalkTrack = []Coordinates{
	{Lat: 44.4095, Lng: 8.9221},
	{Lat: 44.4100, Lng: 8.9264},
	{Lat: 44.4102, Lng: 8.9307},
	{Lat: 44.4088, Lng: 8.9306},
	{Lat: 44.4071, Lng: 8.9325},
	{Lat: 44.4113, Lng: 8.9327},
	{Lat: 44.4077, Lng: 8.9316},
	{Lat: 44.4072, Lng: 8.9340},
	{Lat: 44.4095, Lng: 8.9221},
}
