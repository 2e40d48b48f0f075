package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchParsesForecast(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"hourly": {
				"time": ["2026-04-14T08:00", "2026-04-14T09:00"],
				"temperature_2m": [14.5, 16.0],
				"weathercode": [1, 3]
			},
			"daily": {
				"time": ["2026-04-14"],
				"weathercode": [61],
				"temperature_2m_max": [18.2],
				"temperature_2m_min": [11.0]
			}
		}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	f, err := c.Fetch(context.Background(), 44.41, 8.92)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(f.Hourly.Time) != 2 || f.Hourly.Temperature[1] != 16.0 || f.Hourly.Code[1] != 3 {
		t.Fatalf("unexpected hourly forecast: %+v", f.Hourly)
	}
	if len(f.Daily.Time) != 1 || f.Daily.TempMax[0] != 18.2 {
		t.Fatalf("unexpected daily forecast: %+v", f.Daily)
	}

	for _, fragment := range []string{"latitude=44.41", "longitude=8.92", "hourly=temperature_2m%2Cweathercode"} {
		if !strings.Contains(gotQuery, fragment) {
			t.Fatalf("query missing %q: %s", fragment, gotQuery)
		}
	}
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	if _, err := c.Fetch(context.Background(), 44.41, 8.92); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	if _, err := c.Fetch(context.Background(), 44.41, 8.92); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{code: 0, want: "clear"},
		{code: 1, want: "clear"},
		{code: 2, want: "cloudy"},
		{code: 3, want: "cloudy"},
		{code: 61, want: "rain"},
		{code: 95, want: "storm"},
		{code: 100, want: "wind"},
	}
	for _, tc := range tests {
		if got := Describe(tc.code); got != tc.want {
			t.Fatalf("Describe(%d): expected %q, got %q", tc.code, tc.want, got)
		}
	}
}
