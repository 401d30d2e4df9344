package scheduling

import (
	"math"
	"sort"
	"time"
)

// BatchRequest bundles everything Optimize needs for one batch. Busy is
// supplied by the host, already fetched from its CalendarSource before
// the engine is invoked (spec §6) — the engine performs no I/O itself.
type BatchRequest struct {
	Contacts []Contact
	Range    DateRange
	Busy     []BusyInterval
	Config   Config
	Clock    Clock
}

// Optimize is the engine's single entry point (spec §6): validate,
// generate candidates, score, assign, optimize, and format — or fail
// fast with a typed error on invalid input.
func Optimize(req BatchRequest) (BatchResult, error) {
	clock := req.Clock
	if clock == nil {
		clock = RealClock{}
	}
	started := clock.Now()

	if err := validateRequest(req, clock); err != nil {
		return BatchResult{}, err
	}

	cfg := req.Config
	contactLocs := make(map[string]*time.Location, len(req.Contacts))
	for _, c := range req.Contacts {
		loc, err := loadZone(c.Timezone)
		if err != nil {
			return BatchResult{}, err
		}
		contactLocs[c.ID] = loc
	}

	generationZone := time.UTC
	groupingZone := time.UTC
	if cfg.OrganizerTimezone != "" {
		loc, err := loadZone(cfg.OrganizerTimezone)
		if err != nil {
			return BatchResult{}, err
		}
		groupingZone = loc
	}

	slots := generateSlots(slotGenParams{
		Busy:          req.Busy,
		Range:         req.Range,
		Zone:          generationZone,
		WorkStart:     cfg.WorkingHoursStart,
		WorkEnd:       cfg.WorkingHoursEnd,
		BufferMinutes: cfg.BufferMinutes,
		SlotMinutes:   cfg.SlotMinutes,
		StepMinutes:   cfg.GenerationStepMinutes,
		DaysAhead:     cfg.DaysAhead,
		SkipWeekends:  cfg.SkipWeekends,
	})
	slotsByID := make(map[string]Slot, len(slots))
	for _, s := range slots {
		slotsByID[s.ID()] = s
	}

	requestedSlotsPerContact := cfg.SlotsPerContact(cfg.DefaultSlotsPerContact)
	adjustedSlotsPerContact, reducedWarning, err := triageInsufficientSlots(len(slots), len(req.Contacts), requestedSlotsPerContact)
	if err != nil {
		return BatchResult{}, err
	}

	matrix := buildMatrix(slots, req.Contacts, contactLocs, req.Busy, cfg, groupingZone)

	var specialHandling []SpecialHandling
	for _, c := range req.Contacts {
		relax, compromise := classifyExtremeTimezone(matrix, c.ID, req.Range.Start, groupingZone, contactLocs[c.ID])
		switch {
		case relax:
			sh := relaxConstraintsForContact(matrix, c, contactLocs[c.ID], req.Busy, req.Range, cfg, groupingZone)
			specialHandling = append(specialHandling, sh)
			for _, id := range matrix.SlotIDs() {
				if _, ok := slotsByID[id]; !ok {
					if t, perr := time.Parse(time.RFC3339, id); perr == nil {
						slotsByID[id] = Slot{Start: t, End: t.Add(time.Duration(cfg.SlotMinutes) * time.Minute)}
					}
				}
			}
		case compromise:
			specialHandling = append(specialHandling, SpecialHandling{ContactID: c.ID, Code: SpecialCompromise})
		}
	}
	relaxedContacts := make(map[string]bool, len(specialHandling))
	for _, sh := range specialHandling {
		if sh.Code == SpecialRelaxConstraints {
			relaxedContacts[sh.ContactID] = true
		}
	}

	orderedContacts := orderByDifficulty(matrix, req.Contacts, cfg.MinimumAcceptableScore)
	assignments := assignGreedyWithLookahead(matrix, orderedContacts, adjustedSlotsPerContact, cfg)
	assignments = localSearchOptimize(matrix, assignments, cfg)

	var assignedSlots []Slot
	for _, list := range assignments {
		for _, a := range list {
			if s, ok := slotsByID[a.SlotID]; ok {
				assignedSlots = append(assignedSlots, s)
			}
		}
	}

	var warnings []Warning
	if reducedWarning != nil {
		warnings = append(warnings, *reducedWarning)
	}
	if overload := detectMeetingOverload(req.Busy, assignedSlots, groupingZone); overload != nil {
		warnings = append(warnings, *overload)
	}

	results := make([]ContactResult, 0, len(req.Contacts))
	organizerZone := groupingZone
	var allScores []int
	var perContactAvg []float64

	byID := make(map[string]Contact, len(req.Contacts))
	for _, c := range req.Contacts {
		byID[c.ID] = c
	}
	for _, c := range req.Contacts {
		list := assignments[c.ID]
		sort.Slice(list, func(i, j int) bool { return list[i].SlotID < list[j].SlotID })

		loc := contactLocs[c.ID]
		relaxed := relaxedContacts[c.ID]

		var suggested []SuggestedSlot
		sum := 0
		for _, a := range list {
			s, ok := slotsByID[a.SlotID]
			if !ok {
				continue
			}
			wc := toWallClock(s.Start, loc)
			q := matrix.Get(a.SlotID, c.ID)
			suggested = append(suggested, SuggestedSlot{
				Start:              s.Start,
				End:                s.End,
				Score:              q.Score,
				UserDisplayTime:    s.Start.In(organizerZone).Format("Mon Jan 2 15:04 MST"),
				ContactDisplayTime: formatContactLocal(s.Start, loc),
				Explanation:        buildExplanation(wc, q, a.BelowThreshold, relaxed),
			})
			sum += q.Score
			allScores = append(allScores, q.Score)
		}
		if len(suggested) > 0 {
			perContactAvg = append(perContactAvg, float64(sum)/float64(len(suggested)))
		}

		var alt *AlternativeAction
		if len(suggested) == 0 {
			alt = &AlternativeAction{
				Reason:     "No acceptable slots could be found for this contact",
				Suggestion: "Extend the date range or relax the working-hours window",
			}
		}

		results = append(results, ContactResult{
			ContactID:         c.ID,
			ContactName:       byID[c.ID].Name,
			ContactTimezone:   byID[c.ID].Timezone,
			SuggestedSlots:    suggested,
			AlternativeAction: alt,
		})
	}

	averageQuality := mean(allScores)
	fairnessScore := clamp(100-stddev(perContactAvg), 0, 100)

	finished := clock.Now()

	return BatchResult{
		Results: results,
		Metadata: Metadata{
			TotalSlotsAnalyzed: len(slots),
			AverageQuality:     averageQuality,
			FairnessScore:      fairnessScore,
			ProcessingTime:     finished.Sub(started),
			Algorithm:          AlgorithmVersion,
			Warnings:           warnings,
			SpecialHandling:    specialHandling,
		},
	}, nil
}

// validateRequest implements spec §7's validation pass: these failures
// surface immediately with no partial result.
func validateRequest(req BatchRequest, clock Clock) error {
	cfg := req.Config

	if len(req.Contacts) > cfg.MaxContactsPerBatch {
		return errTooManyContacts(len(req.Contacts), cfg.MaxContactsPerBatch)
	}
	if !req.Range.Start.Before(req.Range.End) {
		return errInvalidDateRange("range start must be before end")
	}
	if req.Range.End.Sub(req.Range.Start) > 30*24*time.Hour {
		return errInvalidDateRange("range span exceeds 30 days")
	}
	if cfg.EnforceNotPast && req.Range.Start.Before(clock.Now().Add(-24*time.Hour)) {
		return errPastDateRange()
	}
	return nil
}

func mean(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

// stddev returns 0 for fewer than two samples, matching spec §4.9's "0
// if only one contact" note for the fairness calculation.
func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	avg := sum / float64(len(xs))

	var variance float64
	for _, x := range xs {
		d := x - avg
		variance += d * d
	}
	variance /= float64(len(xs))
	return math.Sqrt(variance)
}
