package scheduling

import "time"

// bufferedInterval is a BusyInterval widened by the configured buffer on
// both ends. The buffered set is the comparison surface for candidate
// generation; per spec §4.2 it is not merged — duplicate/overlapping
// entries are tolerated since overlap tests are idempotent.
type bufferedInterval struct {
	Start, End time.Time
}

func bufferBusy(busy []BusyInterval, bufferMinutes int) []bufferedInterval {
	buf := time.Duration(bufferMinutes) * time.Minute
	out := make([]bufferedInterval, len(busy))
	for i, b := range busy {
		out[i] = bufferedInterval{Start: b.Start.Add(-buf), End: b.End.Add(buf)}
	}
	return out
}

// overlapsBuffered reports whether [start, end) overlaps any buffered
// busy interval, using the spec's open/closed convention: overlap iff
// candidate < busy.End && candidateEnd > busy.Start.
func overlapsBuffered(start, end time.Time, buffered []bufferedInterval) bool {
	for _, b := range buffered {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}

// slotGenParams bundles the generation inputs that don't vary per-day, so
// the per-day helper doesn't need a dozen positional arguments.
type slotGenParams struct {
	Busy          []BusyInterval
	Range         DateRange
	Zone          *time.Location
	WorkStart     float64 // fractional local hour
	WorkEnd       float64
	BufferMinutes int
	SlotMinutes   int
	StepMinutes   int
	DaysAhead     int
	SkipWeekends  bool
}

// generateSlots implements spec §4.2: from busy intervals + range +
// working hours, produce the ordered, non-conflicting candidate slot
// sequence. Zone aligns day boundaries for enumeration (the "generation
// zone" note — by default the orchestrator passes UTC so one candidate
// set serves every contact in the batch; extreme-timezone relaxation runs
// a second, contact-scoped pass with a different zone and bounds, see
// edgecases.go).
func generateSlots(p slotGenParams) []Slot {
	buffered := bufferBusy(p.Busy, p.BufferMinutes)
	slotDuration := time.Duration(p.SlotMinutes) * time.Minute
	step := time.Duration(p.StepMinutes) * time.Minute

	startDay := p.Range.Start.In(p.Zone)
	dayAnchor := time.Date(startDay.Year(), startDay.Month(), startDay.Day(), 0, 0, 0, 0, p.Zone)

	var slots []Slot
	for offset := 0; offset < p.DaysAhead; offset++ {
		day := dayAnchor.AddDate(0, 0, offset)
		if !day.Before(p.Range.End) {
			break
		}
		if p.SkipWeekends && (day.Weekday() == time.Saturday || day.Weekday() == time.Sunday) {
			continue
		}

		startHour, startMin := hourFraction(p.WorkStart)
		endHour, endMin := hourFraction(p.WorkEnd)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMin, 0, 0, p.Zone)
		dayEnd := time.Date(day.Year(), day.Month(), day.Day(), endHour, endMin, 0, 0, p.Zone)

		for candidate := dayStart; !candidate.Add(slotDuration).After(dayEnd); candidate = candidate.Add(step) {
			candidateEnd := candidate.Add(slotDuration)

			if candidate.Before(p.Range.Start) || candidateEnd.After(p.Range.End) {
				continue
			}
			if overlapsBuffered(candidate, candidateEnd, buffered) {
				continue
			}
			slots = append(slots, Slot{Start: candidate, End: candidateEnd})
		}
	}

	return slots
}
