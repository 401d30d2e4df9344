package scheduling

import "sort"

const maxLocalSearchIterations = 50

// localSearchOptimize implements spec §4.7: bounded pairwise-swap passes
// over the greedy assignment. Each pass considers every (contactA, slotA)
// vs (contactB, slotB) pair across distinct contacts and swaps the two
// slots when doing so raises the combined score and both resulting
// scores still clear the acceptability floor. Pairs are enumerated in a
// fixed, sorted order so the search is deterministic; the pass repeats
// until no improving swap is found or maxLocalSearchIterations is
// reached. Per invariant 8 (§8), total assigned score is non-decreasing
// across passes — a candidate swap is applied only if it strictly
// improves the pair sum.
func localSearchOptimize(m *Matrix, assignments map[string][]assignment, cfg Config) map[string][]assignment {
	contactIDs := make([]string, 0, len(assignments))
	for cid := range assignments {
		contactIDs = append(contactIDs, cid)
	}
	sort.Strings(contactIDs)

	for iter := 0; iter < maxLocalSearchIterations; iter++ {
		improved := false

		for ai := 0; ai < len(contactIDs); ai++ {
			for bi := ai + 1; bi < len(contactIDs); bi++ {
				cA, cB := contactIDs[ai], contactIDs[bi]
				slotsA := assignments[cA]
				slotsB := assignments[cB]

				for si := range slotsA {
					for sj := range slotsB {
						if trySwap(m, cA, cB, slotsA, slotsB, si, sj, cfg) {
							improved = true
						}
					}
				}
			}
		}

		if !improved {
			break
		}
	}

	return assignments
}

// trySwap evaluates swapping slotsA[si] with slotsB[sj] between contacts
// cA and cB, applying the swap in place when it strictly improves the
// pair's combined score and both new scores still clear
// minimumAcceptableScore.
func trySwap(m *Matrix, cA, cB string, slotsA, slotsB []assignment, si, sj int, cfg Config) bool {
	aSlot, bSlot := slotsA[si].SlotID, slotsB[sj].SlotID
	if aSlot == bSlot {
		return false
	}

	curA := m.Get(aSlot, cA).Score
	curB := m.Get(bSlot, cB).Score
	newA := m.Get(bSlot, cA).Score
	newB := m.Get(aSlot, cB).Score

	if newA < cfg.MinimumAcceptableScore || newB < cfg.MinimumAcceptableScore {
		return false
	}
	if newA+newB <= curA+curB {
		return false
	}

	slotsA[si] = assignment{SlotID: bSlot, ImmediateScore: newA}
	slotsB[sj] = assignment{SlotID: aSlot, ImmediateScore: newB}
	return true
}
