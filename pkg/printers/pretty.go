package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/escala/pkg/glyph"
	"tableflip.dev/escala/pkg/itinerary"
	"tableflip.dev/escala/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("g1  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Timeline renders the full schedule: transfer segments between activities,
// then each activity with its window, duration, status marker and progress.
func (pp *PrettyPrint) Timeline(now time.Time, activities ...*itinerary.Activity) {
	if len(activities) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	for i, a := range activities {
		if i > 0 {
			if gap := timeutil.GapMinutes(activities[i-1].EndTime, a.StartTime); gap > 0 {
				pp.transfer(now, activities[i-1].EndTime, a.StartTime, gap)
			}
		}
		pp.activity(now, a)
	}
	fmt.Println("")
}

func (pp *PrettyPrint) activity(now time.Time, a *itinerary.Activity) {
	id := ""
	if pp.ShowID {
		y := color.New(color.FgHiYellow, color.Italic, color.Faint)
		id = y.Sprint(a.ID + strings.Repeat(" ", len(spacing)-len(a.ID)-2))
	}

	title := a.Title
	marker := glyph.Pending.String()
	line := color.New()
	switch itinerary.StatusOf(a) {
	case itinerary.StatusCompleted:
		marker = glyph.Done.String()
		title = glyph.Strike(title)
		line = color.New(color.FgGreen)
	case itinerary.StatusCritical:
		marker = glyph.Critical.String()
		line = color.New(color.FgRed, color.Bold)
	}

	_, _ = line.Printf("%s%s %s - %s  %s", id, marker, a.StartTime, a.EndTime, title)
	d := color.New(color.Faint)
	_, _ = d.Printf("  (%s)\n", a.Span())

	f := color.New(color.Faint)
	_, _ = f.Printf("%s%s  %s  %s %3.0f%%\n",
		spacing, a.LocationName, priceTag(a), Bar(timeutil.ProgressPercent(a.StartTime, a.EndTime, now), 10),
		timeutil.ProgressPercent(a.StartTime, a.EndTime, now))
}

func (pp *PrettyPrint) transfer(now time.Time, prevEnd, nextStart string, gap int) {
	label := "walk"
	if gap > 30 {
		label = "free stroll"
	}
	f := color.New(color.FgBlue, color.Faint)
	_, _ = f.Printf("%s%s %s transfer (%s)  %s\n",
		spacing, glyph.Transfer.String(), label, timeutil.FormatMinutes(gap),
		Bar(timeutil.ProgressPercent(prevEnd, nextStart, now), 6))
}

func priceTag(a *itinerary.Activity) string {
	if a.PriceEUR <= 0 {
		return "free"
	}
	return fmt.Sprintf("€%g", a.PriceEUR)
}

// Bar renders a fixed-width progress bar for a 0-100 percentage.
func Bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
