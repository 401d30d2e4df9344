package scheduling

import "sort"

// difficultyStat summarizes how hard a contact is to place: fewer good
// slots and a lower average top score means harder, per spec §4.5.
type difficultyStat struct {
	ContactID    string
	GoodSlots    int
	AvgTopScore  float64
}

// goodSlotCount counts slots scoring at or above the minimum acceptable
// threshold for contactID across the full slot pool.
func goodSlotCount(m *Matrix, contactID string, minAcceptable int) int {
	n := 0
	for _, slotID := range m.SlotIDs() {
		if m.Get(slotID, contactID).Score >= minAcceptable {
			n++
		}
	}
	return n
}

// avgTopScore averages the contact's top-10 scores across the slot pool,
// zero (ineligible) scores included; a pool of fewer than 10 slots just
// averages what exists.
func avgTopScore(m *Matrix, contactID string) float64 {
	scores := make([]int, 0, len(m.SlotIDs()))
	for _, slotID := range m.SlotIDs() {
		scores = append(scores, m.Get(slotID, contactID).Score)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	if len(scores) > 10 {
		scores = scores[:10]
	}
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}

// orderByDifficulty implements spec §4.5: contacts are assigned slots in
// ascending order of ease of scheduling — fewest good slots first,
// breaking ties by lower average top score, breaking remaining ties
// lexicographically by contact_id for determinism.
func orderByDifficulty(m *Matrix, contacts []Contact, minAcceptable int) []Contact {
	stats := make(map[string]difficultyStat, len(contacts))
	for _, c := range contacts {
		stats[c.ID] = difficultyStat{
			ContactID:   c.ID,
			GoodSlots:   goodSlotCount(m, c.ID, minAcceptable),
			AvgTopScore: avgTopScore(m, c.ID),
		}
	}

	ordered := append([]Contact(nil), contacts...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := stats[ordered[i].ID], stats[ordered[j].ID]
		if a.GoodSlots != b.GoodSlots {
			return a.GoodSlots < b.GoodSlots
		}
		if a.AvgTopScore != b.AvgTopScore {
			return a.AvgTopScore < b.AvgTopScore
		}
		return a.ContactID < b.ContactID
	})
	return ordered
}
