package scheduling

import (
	"testing"
	"time"
)

func TestLoadZone_Empty(t *testing.T) {
	loc, err := loadZone("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc != time.UTC {
		t.Errorf("expected UTC for empty timezone, got %v", loc)
	}
}

func TestLoadZone_Invalid(t *testing.T) {
	_, err := loadZone("Not/AZone")
	if err == nil {
		t.Fatal("expected error for invalid timezone")
	}
	se, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if se.Code != CodeInvalidTimezone {
		t.Errorf("expected %s, got %s", CodeInvalidTimezone, se.Code)
	}
}

func TestLoadZone_Valid(t *testing.T) {
	loc, err := loadZone("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.String() != "America/New_York" {
		t.Errorf("expected America/New_York, got %v", loc)
	}
}

func TestToWallClock_RoundTrip(t *testing.T) {
	loc, _ := loadZone("America/New_York")
	instant := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	wc := toWallClock(instant, loc)

	reconstructed := fromWallClock(wc.Year, wc.Month, wc.Day, wc.Hour, wc.Minute, loc)
	if !reconstructed.Equal(instant) {
		t.Errorf("expected round-trip to equal %v, got %v", instant, reconstructed)
	}
}

func TestCivilDayKey_SameDayDifferentInstants(t *testing.T) {
	loc := time.UTC
	a := time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	if civilDayKey(a, loc) != civilDayKey(b, loc) {
		t.Error("expected same civil day key for two instants on the same UTC day")
	}
}

func TestSameLocalDay(t *testing.T) {
	loc := time.UTC
	a := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)
	if sameLocalDay(a, b, loc) {
		t.Error("expected different civil days across midnight")
	}
}

func TestHourFraction(t *testing.T) {
	cases := []struct {
		in         float64
		hour, minute int
	}{
		{8, 8, 0},
		{17.5, 17, 30},
		{12.25, 12, 15},
	}
	for _, c := range cases {
		h, m := hourFraction(c.in)
		if h != c.hour || m != c.minute {
			t.Errorf("hourFraction(%v) = (%d,%d), want (%d,%d)", c.in, h, m, c.hour, c.minute)
		}
	}
}

// TestFromWallClock_DSTSpringForward exercises spec §4.1's rule: in a
// spring-forward gap, fromWallClock resolves to the later valid instant.
// US Eastern's 2026 spring-forward is 2026-03-08 at 02:00 local, so 02:30
// becomes 03:30 EDT.
func TestFromWallClock_DSTSpringForward(t *testing.T) {
	loc, _ := loadZone("America/New_York")
	gap := fromWallClock(2026, 3, 8, 2, 30, loc)
	if gap.Hour() != 3 || gap.Minute() != 30 {
		t.Errorf("expected the 02:30 gap to normalize forward to 03:30, got %02d:%02d", gap.Hour(), gap.Minute())
	}
}
