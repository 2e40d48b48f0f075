package countdown

import (
	"testing"
	"time"
)

func clockAt(t *testing.T, deadline string) *Clock {
	t.Helper()
	c, err := New(deadline)
	if err != nil {
		t.Fatalf("new clock: %v", err)
	}
	return c
}

func on(h, m, s int) time.Time {
	return time.Date(2026, time.April, 14, h, m, s, 0, time.Local)
}

func TestNewRejectsBadDeadline(t *testing.T) {
	for _, bad := range []string{"", "25:00", "18:61", "half past"} {
		if _, err := New(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestRemainingOneSecondOut(t *testing.T) {
	c := clockAt(t, "18:30")
	diff, arrived := c.Remaining(on(18, 29, 59))
	if arrived {
		t.Fatal("not arrived yet")
	}
	if diff != time.Second {
		t.Fatalf("expected 1s, got %v", diff)
	}
	if got := c.Display(on(18, 29, 59)); got != "00h 00m 01s" {
		t.Fatalf("expected 00h 00m 01s, got %q", got)
	}
}

func TestArrivesExactlyOnDeadline(t *testing.T) {
	c := clockAt(t, "18:30")
	if _, arrived := c.Remaining(on(18, 30, 0)); !arrived {
		t.Fatal("expected arrival at the deadline")
	}
	if got := c.Display(on(18, 30, 0)); got != Arrived {
		t.Fatalf("expected %q, got %q", Arrived, got)
	}
}

func TestArrivedIsSticky(t *testing.T) {
	c := clockAt(t, "18:30")
	if _, arrived := c.Remaining(on(19, 0, 0)); !arrived {
		t.Fatal("expected arrival")
	}
	// A later tick with an earlier wall clock must not resurrect the
	// countdown; arrival is one-way for the process lifetime.
	if _, arrived := c.Remaining(on(12, 0, 0)); !arrived {
		t.Fatal("arrived state must be terminal")
	}
	if got := c.Display(on(12, 0, 0)); got != Arrived {
		t.Fatalf("expected %q, got %q", Arrived, got)
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	c := clockAt(t, "08:00")
	for h := 0; h < 24; h++ {
		diff, _ := c.Remaining(on(h, 13, 7))
		if diff < 0 {
			t.Fatalf("negative remainder at %02d:13: %v", h, diff)
		}
	}
}

func TestDisplayZeroPadding(t *testing.T) {
	c := clockAt(t, "18:30")
	tests := []struct {
		now  time.Time
		want string
	}{
		{now: on(8, 0, 0), want: "10h 30m 00s"},
		{now: on(18, 0, 0), want: "00h 30m 00s"},
		{now: on(18, 29, 1), want: "00h 00m 59s"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := c.Display(tc.now); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(2*time.Hour + 5*time.Minute + 9*time.Second); got != "02h 05m 09s" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := Format(-time.Minute); got != "00h 00m 00s" {
		t.Fatalf("negative duration must clamp: %q", got)
	}
}
