// Package forecast provides the runner logic for the weather page.
package forecast

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/escala/pkg/printers"
	"tableflip.dev/escala/pkg/weather"
)

// Genova harbour, the fixed forecast point for the whole port call.
const (
	lat = 44.41
	lng = 8.92
)

// Forecast fetches and prints the open-meteo outlook. An unreachable
// forecast degrades to a notice, never an error; weather is advisory.
type Forecast struct {
	Client *weather.Client
}

func (n *Forecast) Do(ctx context.Context) error {
	c := n.Client
	if c == nil {
		c = &weather.Client{}
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Weather in La Superba")

	f, err := c.Fetch(ctx, lat, lng)
	if err != nil {
		faint := color.New(color.Faint, color.Italic)
		_, _ = faint.Printf(" forecast unavailable: %v\n", err)
		return nil
	}
	pp.Forecast(f)
	return nil
}
