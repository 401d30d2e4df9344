package scheduling

import (
	"testing"
	"time"
)

func TestTriageInsufficientSlots_NoAvailability(t *testing.T) {
	_, _, err := triageInsufficientSlots(0, 3, 3)
	se, ok := err.(*Error)
	if !ok || se.Code != CodeNoAvailability {
		t.Fatalf("expected NO_AVAILABILITY, got %v", err)
	}
}

func TestTriageInsufficientSlots_SevereShortage(t *testing.T) {
	_, _, err := triageInsufficientSlots(2, 5, 3)
	se, ok := err.(*Error)
	if !ok || se.Code != CodeSevereShortage {
		t.Fatalf("expected SEVERE_SHORTAGE, got %v", err)
	}
}

func TestTriageInsufficientSlots_ReducedSlots(t *testing.T) {
	// S3: 5 contacts, slotsPerContact=3, 10 candidates -> adjusted to 2.
	adjusted, warn, err := triageInsufficientSlots(10, 5, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warn == nil || warn.Code != WarningReducedSlots {
		t.Fatalf("expected REDUCED_SLOTS warning, got %v", warn)
	}
	if adjusted != 2 {
		t.Errorf("expected adjustedSlotsPerContact=2, got %d", adjusted)
	}
}

func TestTriageInsufficientSlots_SufficientNoWarning(t *testing.T) {
	adjusted, warn, err := triageInsufficientSlots(100, 5, 3)
	if err != nil || warn != nil {
		t.Fatalf("expected no error/warning, got err=%v warn=%v", err, warn)
	}
	if adjusted != 3 {
		t.Errorf("expected adjustedSlotsPerContact=3, got %d", adjusted)
	}
}

func TestContactHasNoEligibleSlots(t *testing.T) {
	m := newMatrix([]string{"s1", "s2"}, []string{"a", "b"})
	m.Set("s1", "a", QualityScore{Score: 0})
	m.Set("s2", "a", QualityScore{Score: 0})
	m.Set("s1", "b", QualityScore{Score: 80})

	if !contactHasNoEligibleSlots(m, "a") {
		t.Error("expected contact 'a' to have no eligible slots")
	}
	if contactHasNoEligibleSlots(m, "b") {
		t.Error("expected contact 'b' to have eligible slots")
	}
}

func TestClassifyExtremeTimezone_GatedByOffset(t *testing.T) {
	ref := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	m := newMatrix([]string{"s1"}, []string{"a"})
	m.Set("s1", "a", QualityScore{Score: 0})

	organizerLoc := mustLoadZone(t, "America/Los_Angeles") // UTC-7 (PDT) on 2026-03-11
	nearbyLoc := mustLoadZone(t, "America/Denver")         // UTC-6 (MDT), |Δ|=1

	relax, compromise := classifyExtremeTimezone(m, "a", ref, organizerLoc, nearbyLoc)
	if relax || compromise {
		t.Errorf("expected no relaxation/compromise within the 12h gate, got relax=%v compromise=%v", relax, compromise)
	}
}

func TestClassifyExtremeTimezone_NoEligibleSlotsRelaxes(t *testing.T) {
	ref := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	m := newMatrix([]string{"s1"}, []string{"a"})
	m.Set("s1", "a", QualityScore{Score: 0})

	organizerLoc := mustLoadZone(t, "America/Los_Angeles")
	farLoc := mustLoadZone(t, "Pacific/Auckland") // |Δ| well over 12h

	relax, compromise := classifyExtremeTimezone(m, "a", ref, organizerLoc, farLoc)
	if !relax || compromise {
		t.Errorf("expected relax=true compromise=false, got relax=%v compromise=%v", relax, compromise)
	}
}

func TestClassifyExtremeTimezone_LowScoringEligibleSlotsCompromise(t *testing.T) {
	ref := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	m := newMatrix([]string{"s1", "s2"}, []string{"a"})
	m.Set("s1", "a", QualityScore{Score: 30})
	m.Set("s2", "a", QualityScore{Score: 40})

	organizerLoc := mustLoadZone(t, "America/Los_Angeles")
	farLoc := mustLoadZone(t, "Pacific/Auckland")

	relax, compromise := classifyExtremeTimezone(m, "a", ref, organizerLoc, farLoc)
	if relax || !compromise {
		t.Errorf("expected relax=false compromise=true, got relax=%v compromise=%v", relax, compromise)
	}
}

func TestClassifyExtremeTimezone_HighScoringEligibleSlotsNeitherFires(t *testing.T) {
	ref := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	m := newMatrix([]string{"s1", "s2"}, []string{"a"})
	m.Set("s1", "a", QualityScore{Score: 70})
	m.Set("s2", "a", QualityScore{Score: 80})

	organizerLoc := mustLoadZone(t, "America/Los_Angeles")
	farLoc := mustLoadZone(t, "Pacific/Auckland")

	relax, compromise := classifyExtremeTimezone(m, "a", ref, organizerLoc, farLoc)
	if relax || compromise {
		t.Errorf("expected neither to fire for a well-scoring contact, got relax=%v compromise=%v", relax, compromise)
	}
}

func mustLoadZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("failed to load zone %q: %v", name, err)
	}
	return loc
}

func TestDetectMeetingOverload(t *testing.T) {
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC) // Wednesday
	busy := []BusyInterval{
		{Start: day.Add(8 * time.Hour), End: day.Add(9 * time.Hour)},
		{Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)},
		{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)},
		{Start: day.Add(11 * time.Hour), End: day.Add(12 * time.Hour)},
	}
	assigned := []Slot{
		{Start: day.Add(13 * time.Hour), End: day.Add(14 * time.Hour)},
		{Start: day.Add(14 * time.Hour), End: day.Add(15 * time.Hour)},
	}

	warn := detectMeetingOverload(busy, assigned, time.UTC)
	if warn == nil || warn.Code != WarningMeetingOverload {
		t.Fatalf("expected MEETING_OVERLOAD warning, got %v", warn)
	}
	if len(warn.OverloadDays) != 1 || warn.OverloadDays[0].Count < 5 {
		t.Errorf("expected one overloaded day with count >= 5, got %+v", warn.OverloadDays)
	}
}

func TestDetectMeetingOverload_NoneUnderThreshold(t *testing.T) {
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	busy := []BusyInterval{
		{Start: day.Add(8 * time.Hour), End: day.Add(9 * time.Hour)},
	}
	if warn := detectMeetingOverload(busy, nil, time.UTC); warn != nil {
		t.Errorf("expected no warning under the overload threshold, got %v", warn)
	}
}

func TestIsGoldenSlot(t *testing.T) {
	wc := WallClock{Weekday: time.Friday, Hour: 15}
	if !isGoldenSlot(wc, 90) {
		t.Error("expected Friday 15:00 score 90 to be a golden slot")
	}
	if isGoldenSlot(wc, 50) {
		t.Error("expected score below 85 to not be golden")
	}
}

func TestBuildExplanation_PriorityOrder(t *testing.T) {
	wc := WallClock{Weekday: time.Friday, Hour: 15}
	q := QualityScore{Score: 90}

	exp := buildExplanation(wc, q, false, false)
	if exp.Primary != "Golden slot: Friday afternoon with excellent availability" {
		t.Errorf("expected the golden-slot primary explanation, got %q", exp.Primary)
	}

	relaxedExp := buildExplanation(WallClock{Weekday: time.Tuesday, Hour: 7}, QualityScore{Score: 60}, false, true)
	if relaxedExp.Primary != "Compromise slot outside normal working hours to accommodate timezone difference" {
		t.Errorf("expected the compromise-slot primary explanation to win over the morning one, got %q", relaxedExp.Primary)
	}
	if len(relaxedExp.Warnings) == 0 {
		t.Error("expected a warning for a relaxed-constraints slot")
	}
}
