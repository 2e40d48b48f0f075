package glyph

import "fmt"

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Marker is the timeline symbol for an activity or connector.
type Marker int

const (
	Pending Marker = iota
	Done
	Critical
	Transfer
	Pin
)

type Glyph struct {
	Symbol  string
	Meaning string
}

func defaultGlyphs() []Glyph {
	return []Glyph{
		{Symbol: "○", Meaning: "pending"},
		{Symbol: "✔", Meaning: "done"},
		{Symbol: "!", Meaning: "must not miss"},
		{Symbol: "·", Meaning: "transfer"},
		{Symbol: "⚑", Meaning: "waypoint"},
	}
}

func (m Marker) Glyph() Glyph {
	return defaultGlyphs()[m]
}

func (m Marker) String() string {
	return m.Glyph().Symbol
}
