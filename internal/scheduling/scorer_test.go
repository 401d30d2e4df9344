package scheduling

import "testing"

func TestBaseTimeScore_OutsideWindowIsZero(t *testing.T) {
	if s := baseTimeScore(7, 8, 18); s != 0 {
		t.Errorf("expected 0 before window start, got %d", s)
	}
	if s := baseTimeScore(18, 8, 18); s != 0 {
		t.Errorf("expected 0 at window end (half-open), got %d", s)
	}
}

func TestBaseTimeScore_RelaxedWindow(t *testing.T) {
	if s := baseTimeScore(7, 7, 19); s == 0 {
		t.Error("expected hour 7 to be admissible under the relaxed [7,19) window")
	}
	if s := baseTimeScore(18, 7, 19); s == 0 {
		t.Error("expected hour 18 to be admissible under the relaxed [7,19) window")
	}
}

func TestBaseTimeScore_TableValues(t *testing.T) {
	if s := baseTimeScore(10, 8, 18); s != 85 {
		t.Errorf("expected 10:00 to score 85, got %d", s)
	}
	if s := baseTimeScore(12, 8, 18); s != 30 {
		t.Errorf("expected noon to score 30 (lunch), got %d", s)
	}
}

func TestDayOfWeekScore_Weekend(t *testing.T) {
	// Weekend scoring is always disqualifying regardless of consultant mode.
	if s := dayOfWeekScore(6, 10, false); s != -100 { // Saturday = 6
		t.Errorf("expected Saturday score -100, got %d", s)
	}
}

func TestDayOfWeekScore_FridayConsultantBoost(t *testing.T) {
	base := dayOfWeekScore(5, 10, false)   // Friday, 10am, no consultant mode
	boosted := dayOfWeekScore(5, 15, true) // Friday, 3pm, consultant mode
	if boosted <= base {
		t.Errorf("expected Friday-afternoon consultant mode to score higher: base=%d boosted=%d", base, boosted)
	}
}

func TestScore_ClampedToHundred(t *testing.T) {
	slot := Slot{Start: mustUTC(2026, 3, 13, 15, 0), End: mustUTC(2026, 3, 13, 16, 0)} // Friday 3pm
	cfg := NewDefaultConfig()
	cfg.ConsultantMode = true

	// base 85 + day 35 (Friday, consultant, afternoon) + density 10 (isolated) = 130
	q := score(slot, utcLoc(), nil, nil, cfg, 8, 18)
	if q.Score != 100 {
		t.Errorf("expected score clamped to 100, got %d", q.Score)
	}
}

func TestScore_OutsideWorkingHoursIsIneligible(t *testing.T) {
	slot := Slot{Start: mustUTC(2026, 3, 10, 3, 0), End: mustUTC(2026, 3, 10, 4, 0)} // 3am
	cfg := NewDefaultConfig()

	q := score(slot, utcLoc(), nil, nil, cfg, 8, 18)
	if q.Score != 0 {
		t.Errorf("expected score 0 outside working hours, got %d", q.Score)
	}
}

func TestClamp(t *testing.T) {
	if clamp(150, 0, 100) != 100 {
		t.Error("expected clamp to cap at max")
	}
	if clamp(-10, 0, 100) != 0 {
		t.Error("expected clamp to floor at min")
	}
	if clamp(50, 0, 100) != 50 {
		t.Error("expected clamp to pass through in-range values")
	}
}
