// Package weather fetches the Genova forecast from open-meteo. It is a thin
// external collaborator: any failure degrades to "unavailable" at the caller.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Client calls the open-meteo forecast API.
type Client struct {
	// BaseURL overrides the API endpoint, primarily for tests.
	BaseURL string
	// HTTPClient defaults to a client with a short timeout.
	HTTPClient *http.Client
}

// Forecast is the subset of the open-meteo response the guide renders.
type Forecast struct {
	Hourly Hourly `json:"hourly"`
	Daily  Daily  `json:"daily"`
}

type Hourly struct {
	Time        []string  `json:"time"`
	Temperature []float64 `json:"temperature_2m"`
	Code        []int     `json:"weathercode"`
}

type Daily struct {
	Time    []string  `json:"time"`
	Code    []int     `json:"weathercode"`
	TempMax []float64 `json:"temperature_2m_max"`
	TempMin []float64 `json:"temperature_2m_min"`
}

// Fetch retrieves the hourly and five-day forecast for the coordinate.
func (c *Client) Fetch(ctx context.Context, lat, lng float64) (*Forecast, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.2f", lat))
	q.Set("longitude", fmt.Sprintf("%.2f", lng))
	q.Set("hourly", "temperature_2m,weathercode")
	q.Set("daily", "weathercode,temperature_2m_max,temperature_2m_min")
	q.Set("timezone", "Europe/Rome")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("weather: build request: %w", err)
	}

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather: unexpected status %s", resp.Status)
	}

	var f Forecast
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, fmt.Errorf("weather: decode forecast: %w", err)
	}
	return &f, nil
}

// Describe maps a WMO weather code to a short label, with the same breaks
// the guide page groups icons by.
func Describe(code int) string {
	switch {
	case code <= 1:
		return "clear"
	case code <= 3:
		return "cloudy"
	case code <= 67:
		return "rain"
	case code <= 99:
		return "storm"
	default:
		return "wind"
	}
}
