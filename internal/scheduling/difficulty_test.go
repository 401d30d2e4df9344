package scheduling

import "testing"

func TestOrderByDifficulty_FewerGoodSlotsFirst(t *testing.T) {
	m := newMatrix([]string{"s1", "s2", "s3"}, []string{"easy", "hard"})
	// "easy" is admissible almost everywhere; "hard" only on s1.
	m.Set("s1", "easy", QualityScore{Score: 80})
	m.Set("s2", "easy", QualityScore{Score: 75})
	m.Set("s3", "easy", QualityScore{Score: 70})
	m.Set("s1", "hard", QualityScore{Score: 65})

	contacts := []Contact{{ID: "easy"}, {ID: "hard"}}
	ordered := orderByDifficulty(m, contacts, 60)

	if ordered[0].ID != "hard" {
		t.Errorf("expected the contact with fewer good slots first, got %s", ordered[0].ID)
	}
}

func TestOrderByDifficulty_TieBrokenByContactID(t *testing.T) {
	m := newMatrix([]string{"s1"}, []string{"zed", "abe"})
	m.Set("s1", "zed", QualityScore{Score: 80})
	m.Set("s1", "abe", QualityScore{Score: 80})

	contacts := []Contact{{ID: "zed"}, {ID: "abe"}}
	ordered := orderByDifficulty(m, contacts, 60)

	if ordered[0].ID != "abe" {
		t.Errorf("expected lexicographic tie-break to put abe first, got %s", ordered[0].ID)
	}
}

func TestAvgTopScore_CapsAtTen(t *testing.T) {
	slotIDs := make([]string, 12)
	for i := range slotIDs {
		slotIDs[i] = string(rune('a' + i))
	}
	m := newMatrix(slotIDs, []string{"c1"})
	for i, id := range slotIDs {
		m.Set(id, "c1", QualityScore{Score: i + 1})
	}

	// Top 10 scores are 12,11,...,3 -> average 7.5
	avg := avgTopScore(m, "c1")
	if avg != 7.5 {
		t.Errorf("expected average of top 10 scores to be 7.5, got %v", avg)
	}
}
