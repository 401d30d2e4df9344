package scheduling

import "time"

// triageInsufficientSlots implements spec §4.8's first edge-case pass:
// zero candidates is a hard NO_AVAILABILITY error; fewer candidates than
// contacts is a hard SEVERE_SHORTAGE error; otherwise, if the pool can't
// cover every contact's requested slotsPerContact, it's a REDUCED_SLOTS
// warning with an adjusted per-contact count (floor division, minimum 1).
func triageInsufficientSlots(candidateCount, contactCount, slotsPerContact int) (adjustedSlotsPerContact int, warn *Warning, err error) {
	if candidateCount == 0 {
		return 0, nil, errNoAvailability()
	}
	if candidateCount < contactCount {
		return 0, nil, errSevereShortage(candidateCount, contactCount)
	}

	needed := contactCount * slotsPerContact
	if candidateCount >= needed {
		return slotsPerContact, nil, nil
	}

	adjusted := candidateCount / contactCount
	if adjusted < 1 {
		adjusted = 1
	}
	return adjusted, &Warning{
		Code:                    WarningReducedSlots,
		AdjustedSlotsPerContact: adjusted,
	}, nil
}

// contactHasNoEligibleSlots reports whether every slot in the matrix
// scores 0 for contactID under the default admissibility window — the
// trigger condition for extreme-timezone relaxation (spec §4.8, S4).
func contactHasNoEligibleSlots(m *Matrix, contactID string) bool {
	for _, slotID := range m.SlotIDs() {
		if m.Get(slotID, contactID).Score > 0 {
			return false
		}
	}
	return true
}

// classifyExtremeTimezone implements spec §4.8's extreme-timezone gate:
// relaxation and compromise only apply to a contact whose organizer<->
// contact UTC offset difference exceeds 12h at ref. Within that gate, a
// contact with no eligible slot at all gets relax=true (RELAX_CONSTRAINTS);
// one with eligible slots averaging below 50 gets compromise=true
// (COMPROMISE, no matrix change); otherwise neither fires.
func classifyExtremeTimezone(m *Matrix, contactID string, ref time.Time, organizerLoc, contactLoc *time.Location) (relax, compromise bool) {
	delta := offsetDeltaHours(ref, organizerLoc, contactLoc)
	if delta < 0 {
		delta = -delta
	}
	if delta <= 12 {
		return false, false
	}
	if contactHasNoEligibleSlots(m, contactID) {
		return true, false
	}
	if avg, ok := m.AverageNonZero(contactID); ok && avg < 50 {
		return false, true
	}
	return false, false
}

// relaxConstraintsForContact implements spec §4.8's extreme-timezone
// handling: regenerate candidates for this one contact using the relaxed
// [7, 19) contact-local admissibility window, score and insert them into
// the shared matrix, and return the specialHandling record. Per the §9
// open-question decision, weekends stay excluded under relaxation unless
// the caller disabled skipWeekends explicitly.
func relaxConstraintsForContact(m *Matrix, contact Contact, contactLoc *time.Location, busy []BusyInterval, dateRange DateRange, cfg Config, groupingZone *time.Location) SpecialHandling {
	relaxed := generateSlots(slotGenParams{
		Busy:          busy,
		Range:         dateRange,
		Zone:          contactLoc,
		WorkStart:     7,
		WorkEnd:       19,
		BufferMinutes: cfg.BufferMinutes,
		SlotMinutes:   cfg.SlotMinutes,
		StepMinutes:   cfg.GenerationStepMinutes,
		DaysAhead:     cfg.DaysAhead,
		SkipWeekends:  cfg.SkipWeekends,
	})

	for _, s := range relaxed {
		if m.HasSlot(s.ID()) {
			continue
		}
		insertContactSlot(m, s, contact, contactLoc, busy, cfg, groupingZone)
	}

	return SpecialHandling{
		ContactID:        contact.ID,
		Code:             SpecialRelaxConstraints,
		RelaxedStartHour: 7,
		RelaxedEndHour:   19,
	}
}

// dayLoad pairs a civil-day key with its total meeting count (pre-existing
// busy intervals plus newly assigned slots), for overload detection.
type dayLoad struct {
	Key   string
	Count int
}

// detectMeetingOverload implements spec §4.8's overload pass: after
// assignment, count organizer meetings per civil day (existing busy plus
// newly assigned slots) in the grouping zone; any day reaching 5 or more
// earns a MEETING_OVERLOAD warning entry.
func detectMeetingOverload(busy []BusyInterval, assignedSlots []Slot, groupingZone *time.Location) *Warning {
	counts := make(map[string]int)
	for _, b := range busy {
		counts[civilDayKey(b.Start, groupingZone)]++
	}
	for _, s := range assignedSlots {
		counts[civilDayKey(s.Start, groupingZone)]++
	}

	var overloaded []OverloadDay
	for key, n := range counts {
		if n >= 5 {
			overloaded = append(overloaded, OverloadDay{Date: key, Count: n})
		}
	}
	if len(overloaded) == 0 {
		return nil
	}

	sortOverloadDays(overloaded)
	return &Warning{Code: WarningMeetingOverload, OverloadDays: overloaded}
}

func sortOverloadDays(days []OverloadDay) {
	for i := 1; i < len(days); i++ {
		for j := i; j > 0 && days[j].Date < days[j-1].Date; j-- {
			days[j], days[j-1] = days[j-1], days[j]
		}
	}
}

// isGoldenSlot reports the "golden slot" condition from the glossary:
// Friday afternoon, score >= 85.
func isGoldenSlot(wc WallClock, scoreValue int) bool {
	return wc.Weekday == time.Friday && wc.Hour >= 14 && scoreValue >= 85
}

// buildExplanation selects the slot's primary explanation line in this
// priority order: golden slot (isGoldenSlot), compromise slot
// (relaxed-constraints contact), best-available slot (taken below the
// acceptable threshold), morning slot (contact-local hour before 12), and
// otherwise a generic "Good meeting time" line. Factors are the score's
// reasoning tags; warnings flag below-threshold and relaxed slots.
func buildExplanation(wc WallClock, q QualityScore, belowThreshold, relaxed bool) Explanation {
	var primary string
	switch {
	case isGoldenSlot(wc, q.Score):
		primary = "Golden slot: Friday afternoon with excellent availability"
	case relaxed:
		primary = "Compromise slot outside normal working hours to accommodate timezone difference"
	case belowThreshold:
		primary = "Best available option; below the usual quality threshold"
	case wc.Hour < 12:
		primary = "Solid morning slot"
	default:
		primary = "Good meeting time"
	}

	var warnings []string
	if belowThreshold {
		warnings = append(warnings, "Score below minimum acceptable threshold")
	}
	if relaxed {
		warnings = append(warnings, "Outside standard working hours due to timezone difference")
	}

	return Explanation{
		Primary:  primary,
		Factors:  q.Reasoning,
		Warnings: warnings,
	}
}
