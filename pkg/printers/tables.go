package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/escala/pkg/glyph"
	"tableflip.dev/escala/pkg/guide"
	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/weather"
)

// Budget prints the paid-activity breakdown and the running total.
func (pp *PrettyPrint) Budget(paid []*itinerary.Activity, total float64) {
	if len(paid) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no planned spend, fully walkable port call")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ACTIVITY", "TYPE", "EUR")
	for _, a := range paid {
		tbl.AddRow(a.Title, a.Type, fmt.Sprintf("%.2f", a.PriceEUR))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	t := color.New(color.Bold)
	_, _ = t.Printf("total €%.2f\n", total)
}

// Phrasebook prints the basic-Italian table.
func (pp *PrettyPrint) Phrasebook(phrases []guide.Phrase) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range phrases {
		tbl.AddRow(p.Word, fmt.Sprintf("%q", p.Simplified), p.Meaning)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Summary prints the visit at-a-glance block.
func (pp *PrettyPrint) Summary(s guide.Summary) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("port call window", s.TotalWindow)
	tbl.AddRow("active sightseeing", s.ActiveTime)
	tbl.AddRow("walking distance", fmt.Sprintf("%.1f km", s.WalkingKM))
	tbl.AddRow("steps", s.StepsApprox)
	tbl.AddRow("points of interest", fmt.Sprintf("%d", s.POICount))
	tbl.AddRow("accessibility", s.Accessibility)
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Forecast prints the daytime hourly strip and the five-day outlook.
func (pp *PrettyPrint) Forecast(f *weather.Forecast) {
	if f == nil {
		faint := color.New(color.Faint, color.Italic)
		_, _ = faint.Println(" forecast unavailable")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for i, ts := range f.Hourly.Time {
		if i >= len(f.Hourly.Temperature) || i >= len(f.Hourly.Code) {
			break
		}
		t, err := time.Parse("2006-01-02T15:04", ts)
		if err != nil || t.Hour() < 8 || t.Hour() > 20 {
			continue
		}
		tbl.AddRow(fmt.Sprintf("%02d:00", t.Hour()),
			fmt.Sprintf("%.0f°", f.Hourly.Temperature[i]),
			weather.Describe(f.Hourly.Code[i]))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	days := uitable.New()
	days.Separator = "  "
	for i, ts := range f.Daily.Time {
		if i >= 5 || i >= len(f.Daily.Code) || i >= len(f.Daily.TempMax) || i >= len(f.Daily.TempMin) {
			break
		}
		label := ts
		if t, err := time.Parse("2006-01-02", ts); err == nil {
			label = t.Format("Mon 2")
		}
		days.AddRow(label,
			weather.Describe(f.Daily.Code[i]),
			fmt.Sprintf("%.0f° / %.0f°", f.Daily.TempMax[i], f.Daily.TempMin[i]))
	}
	_, _ = fmt.Fprintln(color.Output, days)
}

// Route prints the waypoint stops and the plotted walking loop.
func (pp *PrettyPrint) Route(waypoints []itinerary.Waypoint, track []itinerary.Coordinates) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, w := range waypoints {
		tbl.AddRow(glyph.Pin.String(), w.Name,
			fmt.Sprintf("%.4f, %.4f", w.Coords.Lat, w.Coords.Lng))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if len(track) > 1 {
		f := color.New(color.Faint)
		_, _ = f.Printf("old-town loop, %d plotted points\n", len(track))
	}
}
