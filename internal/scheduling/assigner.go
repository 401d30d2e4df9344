package scheduling

import "sort"

// assignment is one slot_id taken by a contact, tagged with whether it
// met the acceptable-score threshold at the time it was taken (spec
// §4.6 step 5 — influences explanation selection in edgecases.go).
type assignment struct {
	SlotID        string
	ImmediateScore int
	BelowThreshold bool
}

// candidateScore is a scored-and-ranked slot for one contact during
// assignment.
type candidateScore struct {
	SlotID    string
	Immediate int
	Effective int
}

// assignGreedyWithLookahead implements spec §4.6: contacts are walked in
// difficulty order (already applied by the caller via orderedContacts);
// for each, candidates are ranked by immediate+lookahead score and taken
// greedily, first honoring the acceptable-score threshold, then filling
// any remainder regardless of threshold.
func assignGreedyWithLookahead(m *Matrix, orderedContacts []Contact, slotsPerContact int, cfg Config) map[string][]assignment {
	assignments := make(map[string][]assignment, len(orderedContacts))
	used := make(map[string]bool)
	allSlots := m.SlotIDs()

	for i, c := range orderedContacts {
		remaining := orderedContacts[i+1:]

		candidates := make([]candidateScore, 0, len(allSlots))
		for _, slotID := range allSlots {
			if used[slotID] {
				continue
			}
			immediate := m.Get(slotID, c.ID).Score
			impact := lookaheadImpact(m, slotID, remaining, used, cfg.LookaheadDepth, cfg.LookaheadWeight)
			candidates = append(candidates, candidateScore{
				SlotID:    slotID,
				Immediate: immediate,
				Effective: immediate + impact,
			})
		}

		sort.SliceStable(candidates, func(a, b int) bool {
			if candidates[a].Effective != candidates[b].Effective {
				return candidates[a].Effective > candidates[b].Effective
			}
			return candidates[a].SlotID < candidates[b].SlotID
		})

		var taken []assignment
		for _, cand := range candidates {
			if len(taken) >= slotsPerContact {
				break
			}
			if cand.Immediate >= cfg.MinimumAcceptableScore {
				taken = append(taken, assignment{SlotID: cand.SlotID, ImmediateScore: cand.Immediate})
				used[cand.SlotID] = true
			}
		}
		if len(taken) < slotsPerContact {
			for _, cand := range candidates {
				if len(taken) >= slotsPerContact {
					break
				}
				if used[cand.SlotID] {
					continue
				}
				taken = append(taken, assignment{SlotID: cand.SlotID, ImmediateScore: cand.Immediate, BelowThreshold: true})
				used[cand.SlotID] = true
			}
		}

		assignments[c.ID] = taken
	}

	return assignments
}

// lookaheadImpact computes L(s, R, U, depth) from spec §4.6: the signed
// penalty for taking slot s now, reflecting how much doing so depresses
// the best remaining option for each of the next `depth` contacts in R.
// lookaheadWeight is applied exactly once, here.
func lookaheadImpact(m *Matrix, s string, remaining []Contact, used map[string]bool, depth int, lookaheadWeight float64) int {
	if len(remaining) == 0 || depth <= 0 {
		return 0
	}
	horizon := remaining
	if len(horizon) > depth {
		horizon = horizon[:depth]
	}

	withS := make(map[string]bool, len(used)+1)
	for k := range used {
		withS[k] = true
	}
	withS[s] = true

	impact := 0
	for _, c := range horizon {
		currentBest, _ := m.BestExcluding(c.ID, used)
		futureBest, _ := m.BestExcluding(c.ID, withS)
		impact += currentBest - futureBest
	}

	return int(-float64(impact) * lookaheadWeight)
}
