package scheduling

import (
	"time"

	"golang.org/x/exp/constraints"
)

// clamp restricts v to [lo, hi]. Promoted from the teacher's indirect
// golang.org/x/exp requirement to a direct, exercised import (see
// DESIGN.md).
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// baseTimeTable is spec §4.3's fixed hour -> score table.
var baseTimeTable = map[int]int{
	8: 65, 9: 75, 10: 85, 11: 80, 12: 30, 13: 50, 14: 80, 15: 85, 16: 75, 17: 60,
}

// baseTimeScore scores an hour against the admissible window
// [minHour, maxHour). Callers pass the contact's normal bounds (8, 18) or,
// for a contact under RELAX_CONSTRAINTS, the relaxed bounds (7, 19) —
// admissibility is per-contact per spec §4.8.
func baseTimeScore(hour, minHour, maxHour int) int {
	if hour < minHour || hour >= maxHour {
		return 0
	}
	if s, ok := baseTimeTable[hour]; ok {
		return s
	}
	return 50
}

func dayOfWeekScore(weekday time.Weekday, hour int, consultantMode bool) int {
	switch weekday {
	case time.Saturday, time.Sunday:
		return -100
	case time.Monday:
		score := -5
		if hour >= 14 {
			score += 5
		}
		return score
	case time.Tuesday, time.Wednesday, time.Thursday:
		return 10
	case time.Friday:
		score := 10
		if consultantMode {
			score += 15
			if hour >= 14 {
				score += 10
			}
		}
		return score
	default:
		return 0
	}
}

// densityScore implements spec §4.3's organizer-density sub-score:
// same-day meeting count penalty, back-to-back penalty, and isolation
// bonus. dayBusy is the organizer's busy intervals that fall on the same
// civil day as the slot (per the chosen day-grouping convention, see
// orchestrator.go); allBusy is the full organizer busy set, used for the
// back-to-back/isolation checks which are not day-bounded in the spec.
func densityScore(slot Slot, dayBusy []BusyInterval, allBusy []BusyInterval) int {
	score := 0

	switch {
	case len(dayBusy) >= 4:
		score -= 20
	case len(dayBusy) >= 3:
		score -= 10
	}

	backToBack := false
	isolated := true
	for _, b := range allBusy {
		if within(b.End, slot.Start, 30*time.Minute) || within(b.Start, slot.End, 30*time.Minute) {
			backToBack = true
		}
		if within(b.End, slot.Start, 2*time.Hour) || within(b.Start, slot.Start, 2*time.Hour) ||
			within(b.End, slot.End, 2*time.Hour) || within(b.Start, slot.End, 2*time.Hour) ||
			overlapsInstant(b, slot) {
			isolated = false
		}
	}
	if backToBack {
		score -= 15
	}
	if isolated {
		score += 10
	}

	return score
}

// within reports whether b is within d of a (in either direction).
func within(a, b time.Time, d time.Duration) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= d
}

// overlapsInstant reports whether a busy interval overlaps the slot
// itself (not just nearby), which also disqualifies "isolated".
func overlapsInstant(b BusyInterval, s Slot) bool {
	return s.Start.Before(b.End) && s.End.After(b.Start)
}

// score implements spec §4.3 in full: compute the three additive
// sub-scores for a (slot, contact) pair, clamp, and attach reasoning
// tags. hour/weekday are read in the contact's zone; dayBusy/allBusy are
// the organizer's busy intervals for the density sub-score.
func score(slot Slot, contactLoc *time.Location, dayBusy, allBusy []BusyInterval, cfg Config, minHour, maxHour int) QualityScore {
	wc := toWallClock(slot.Start, contactLoc)
	base := baseTimeScore(wc.Hour, minHour, maxHour)

	if base == 0 {
		return QualityScore{
			Score:        0,
			ContactLocal: formatContactLocal(slot.Start, contactLoc),
			Reasoning:    []string{"Outside working hours"},
			Breakdown:    ScoreBreakdown{BaseScore: 0},
		}
	}

	day := dayOfWeekScore(wc.Weekday, wc.Hour, cfg.ConsultantMode)
	density := densityScore(slot, dayBusy, allBusy)

	final := clamp(base+day+density, 0, 100)

	return QualityScore{
		Score:        final,
		ContactLocal: formatContactLocal(slot.Start, contactLoc),
		Reasoning:    reasoningTags(wc, density),
		Breakdown: ScoreBreakdown{
			BaseScore:    base,
			DayScore:     day,
			DensityScore: density,
		},
	}
}

func reasoningTags(wc WallClock, density int) []string {
	var tags []string
	if wc.Hour == 10 || wc.Hour == 15 {
		tags = append(tags, "Prime meeting time")
	}
	if wc.Weekday == time.Friday && wc.Hour >= 14 {
		tags = append(tags, "Friday afternoon - relaxed atmosphere")
	}
	if density > 0 {
		tags = append(tags, "Good spacing from other meetings")
	}
	if density < -10 {
		tags = append(tags, "Warning: High meeting density")
	}
	return tags
}

func formatContactLocal(instant time.Time, loc *time.Location) string {
	return instant.In(loc).Format("Mon Jan 2 15:04 MST")
}
