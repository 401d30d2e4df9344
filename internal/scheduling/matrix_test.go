package scheduling

import "testing"

func TestMatrix_SetAndGet(t *testing.T) {
	m := newMatrix([]string{"s1", "s2"}, []string{"c1", "c2"})
	m.Set("s1", "c1", QualityScore{Score: 80})

	if got := m.Get("s1", "c1").Score; got != 80 {
		t.Errorf("expected 80, got %d", got)
	}
	if got := m.Get("s2", "c1").Score; got != 0 {
		t.Errorf("expected zero value for unset cell, got %d", got)
	}
	if got := m.Get("unknown", "c1").Score; got != 0 {
		t.Errorf("expected zero value for unknown slot, got %d", got)
	}
}

func TestMatrix_SetGrowsNewSlot(t *testing.T) {
	m := newMatrix([]string{"s1"}, []string{"c1"})
	m.Set("s2", "c1", QualityScore{Score: 50})

	if !m.HasSlot("s2") {
		t.Error("expected s2 to be registered after Set")
	}
	if got := m.Get("s2", "c1").Score; got != 50 {
		t.Errorf("expected 50, got %d", got)
	}
	if len(m.SlotIDs()) != 2 {
		t.Errorf("expected 2 slot ids, got %d", len(m.SlotIDs()))
	}
}

func TestMatrix_BestExcluding(t *testing.T) {
	m := newMatrix([]string{"s1", "s2", "s3"}, []string{"c1"})
	m.Set("s1", "c1", QualityScore{Score: 40})
	m.Set("s2", "c1", QualityScore{Score: 90})
	m.Set("s3", "c1", QualityScore{Score: 70})

	best, found := m.BestExcluding("c1", map[string]bool{"s2": true})
	if !found || best != 70 {
		t.Errorf("expected best=70 excluding s2, got best=%d found=%v", best, found)
	}

	_, found = m.BestExcluding("unknown-contact", nil)
	if found {
		t.Error("expected found=false for unknown contact")
	}
}

func TestGroupBusyByDay(t *testing.T) {
	busy := []BusyInterval{
		{Start: mustUTC(2026, 3, 10, 9, 0), End: mustUTC(2026, 3, 10, 10, 0)},
		{Start: mustUTC(2026, 3, 10, 14, 0), End: mustUTC(2026, 3, 10, 15, 0)},
		{Start: mustUTC(2026, 3, 11, 9, 0), End: mustUTC(2026, 3, 11, 10, 0)},
	}
	grouped := groupBusyByDay(busy, utcLoc())

	slot := Slot{Start: mustUTC(2026, 3, 10, 11, 0), End: mustUTC(2026, 3, 10, 12, 0)}
	if got := len(grouped.forSlot(slot)); got != 2 {
		t.Errorf("expected 2 busy intervals on 2026-03-10, got %d", got)
	}
}
