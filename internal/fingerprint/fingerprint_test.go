package fingerprint

import (
	"testing"
	"time"
)

func TestOf_Deterministic(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 5)

	in := Input{
		Contacts: []Contact{
			{ID: "b", Timezone: "Europe/London"},
			{ID: "a", Timezone: "America/New_York"},
		},
		RangeStart:        start,
		RangeEnd:          end,
		OrganizerTimezone: "America/Los_Angeles",
		SlotsPerContact:   3,
		ConsultantMode:    true,
	}

	reordered := in
	reordered.Contacts = []Contact{
		{ID: "a", Timezone: "America/New_York"},
		{ID: "b", Timezone: "Europe/London"},
	}

	if Of(in) != Of(reordered) {
		t.Error("expected fingerprint to be independent of contact order")
	}
}

func TestOf_DiffersOnMaterialChange(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 5)

	base := Input{
		Contacts:          []Contact{{ID: "a", Timezone: "America/New_York"}},
		RangeStart:        start,
		RangeEnd:          end,
		OrganizerTimezone: "America/Los_Angeles",
		SlotsPerContact:   3,
	}
	changed := base
	changed.SlotsPerContact = 4

	if Of(base) == Of(changed) {
		t.Error("expected fingerprint to change when slotsPerContact changes")
	}
}

func TestOf_SameInputSameHash(t *testing.T) {
	in := Input{
		Contacts:   []Contact{{ID: "a", Timezone: "UTC"}},
		RangeStart: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		RangeEnd:   time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
	}
	if Of(in) != Of(in) {
		t.Error("expected identical input to produce identical fingerprint")
	}
}
