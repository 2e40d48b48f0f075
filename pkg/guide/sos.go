package guide

import (
	"fmt"
	"net/url"

	"tableflip.dev/escala/pkg/itinerary"
)

// SOSMessage builds the emergency text for the given position. With no fix
// it still produces a usable message; an unknown position is never an error.
func SOSMessage(pos *itinerary.Coordinates) string {
	if pos == nil {
		return "SOS! I need help in Genova. I cannot get a GPS fix."
	}
	return fmt.Sprintf("SOS! I need help in Genova. My current location: %s", PinURL(*pos))
}

// SOSShareURL wraps the message in a WhatsApp share link. Sending is the
// messaging collaborator's job; we only emit the URL.
func SOSShareURL(pos *itinerary.Coordinates) string {
	return "https://wa.me/?text=" + url.QueryEscape(SOSMessage(pos))
}

// PinURL is a Google Maps pin for a coordinate.
func PinURL(c itinerary.Coordinates) string {
	return fmt.Sprintf("https://maps.google.com/?q=%g,%g", c.Lat, c.Lng)
}

// DirectionsURL is a Google Maps walking-directions link to a coordinate.
func DirectionsURL(c itinerary.Coordinates) string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%g,%g", c.Lat, c.Lng)
}
