package scheduling

import "time"

// Matrix is the quality matrix (spec §4.4): a dense table of QualityScore
// indexed by interned slot and contact positions rather than by string key
// lookups, per spec §9's design note ("the matrix is a 2D indexable
// structure keyed by small integer indices ... this is both faster and
// avoids hash ordering"). Built once per batch; the extreme-timezone pass
// may then add slots for a relaxed contact, and it is read-only after that.
type Matrix struct {
	slotIDs      []string
	slotIndex    map[string]int
	contactIDs   []string
	contactIndex map[string]int
	cells        [][]QualityScore // [slotIdx][contactIdx]
}

func newMatrix(slotIDs []string, contactIDs []string) *Matrix {
	m := &Matrix{
		slotIDs:      append([]string(nil), slotIDs...),
		slotIndex:    make(map[string]int, len(slotIDs)),
		contactIDs:   append([]string(nil), contactIDs...),
		contactIndex: make(map[string]int, len(contactIDs)),
	}
	for i, id := range m.slotIDs {
		m.slotIndex[id] = i
	}
	for i, id := range m.contactIDs {
		m.contactIndex[id] = i
	}
	m.cells = make([][]QualityScore, len(m.slotIDs))
	for i := range m.cells {
		m.cells[i] = make([]QualityScore, len(m.contactIDs))
	}
	return m
}

// Set stores the score for (slotID, contactID). Ineligible cells (score 0)
// are stored, never absent, matching spec §4.4.
func (m *Matrix) Set(slotID, contactID string, q QualityScore) {
	si, ok := m.slotIndex[slotID]
	if !ok {
		si = len(m.slotIDs)
		m.slotIDs = append(m.slotIDs, slotID)
		m.slotIndex[slotID] = si
		m.cells = append(m.cells, make([]QualityScore, len(m.contactIDs)))
	}
	ci, ok := m.contactIndex[contactID]
	if !ok {
		return // contact must be registered up front; see newMatrix
	}
	m.cells[si][ci] = q
}

// Get returns the stored score for (slotID, contactID), or the zero value
// (score 0, "ineligible") if the cell was never set.
func (m *Matrix) Get(slotID, contactID string) QualityScore {
	si, ok := m.slotIndex[slotID]
	if !ok {
		return QualityScore{}
	}
	ci, ok := m.contactIndex[contactID]
	if !ok {
		return QualityScore{}
	}
	return m.cells[si][ci]
}

// SlotIDs returns every slot_id known to the matrix, in insertion order
// (ascending by start, since that's how the generator produced them; the
// extreme-timezone pass appends new ones after).
func (m *Matrix) SlotIDs() []string {
	return m.slotIDs
}

// HasSlot reports whether slotID is already known to the matrix.
func (m *Matrix) HasSlot(slotID string) bool {
	_, ok := m.slotIndex[slotID]
	return ok
}

// BestExcluding returns the highest score contactID has among slot_ids not
// in excluded, and whether any such slot exists. Used by the lookahead
// function (§4.6).
func (m *Matrix) BestExcluding(contactID string, excluded map[string]bool) (int, bool) {
	ci, ok := m.contactIndex[contactID]
	if !ok {
		return 0, false
	}
	best := 0
	found := false
	for si, id := range m.slotIDs {
		if excluded[id] {
			continue
		}
		q := m.cells[si][ci]
		if !found || q.Score > best {
			best = q.Score
			found = true
		}
	}
	return best, found
}

// AverageNonZero returns the mean of contactID's non-zero (eligible)
// scores, and whether any such score exists. Used by spec §4.8's
// COMPROMISE branch, which judges a contact's existing admissible slots
// rather than the relaxed-window regeneration path.
func (m *Matrix) AverageNonZero(contactID string) (float64, bool) {
	ci, ok := m.contactIndex[contactID]
	if !ok {
		return 0, false
	}
	sum, n := 0, 0
	for si := range m.slotIDs {
		if q := m.cells[si][ci]; q.Score > 0 {
			sum += q.Score
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// dayGroupedBusy buckets the organizer's busy intervals by civil day key
// under the given grouping zone, for the density sub-score's same-day
// count (spec §4.3, §9 Open Question: day-grouping zone).
type dayGroupedBusy struct {
	byDay map[string][]BusyInterval
	zone  *time.Location
}

func groupBusyByDay(busy []BusyInterval, zone *time.Location) dayGroupedBusy {
	g := dayGroupedBusy{byDay: make(map[string][]BusyInterval), zone: zone}
	for _, b := range busy {
		key := civilDayKey(b.Start, zone)
		g.byDay[key] = append(g.byDay[key], b)
	}
	return g
}

func (g dayGroupedBusy) forSlot(slot Slot) []BusyInterval {
	return g.byDay[civilDayKey(slot.Start, g.zone)]
}

// buildMatrix implements spec §4.4: for each candidate slot and each
// contact, score the pair and store it (ineligible cells included).
func buildMatrix(slots []Slot, contacts []Contact, contactLocs map[string]*time.Location, busy []BusyInterval, cfg Config, groupingZone *time.Location) *Matrix {
	slotIDs := make([]string, len(slots))
	slotByID := make(map[string]Slot, len(slots))
	for i, s := range slots {
		id := s.ID()
		slotIDs[i] = id
		slotByID[id] = s
	}
	contactIDs := make([]string, len(contacts))
	for i, c := range contacts {
		contactIDs[i] = c.ID
	}

	m := newMatrix(slotIDs, contactIDs)
	grouped := groupBusyByDay(busy, groupingZone)

	for _, s := range slots {
		for _, c := range contacts {
			loc := contactLocs[c.ID]
			q := score(s, loc, grouped.forSlot(s), busy, cfg, 8, 18)
			m.Set(s.ID(), c.ID, q)
		}
	}
	return m
}

// insertContactSlot scores one new slot for exactly one contact and adds
// it to the matrix, using the relaxed [7, 19) admissibility window from
// spec §4.8's RELAX_CONSTRAINTS handling. Used by the extreme-timezone
// relaxation pass (edgecases.go), which generates additional per-contact
// candidates outside the shared pool.
func insertContactSlot(m *Matrix, slot Slot, contact Contact, contactLoc *time.Location, busy []BusyInterval, cfg Config, groupingZone *time.Location) {
	grouped := groupBusyByDay(busy, groupingZone)
	q := score(slot, contactLoc, grouped.forSlot(slot), busy, cfg, 7, 19)
	m.Set(slot.ID(), contact.ID, q)
}
