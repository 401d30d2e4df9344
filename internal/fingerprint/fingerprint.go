// Package fingerprint derives a stable content hash for a batch request,
// letting a caller dedupe identical requests against internal/history
// without re-running the engine. It generalizes the teacher's
// generateSelectionToken (internal/services/auth.go): that function
// signs a payload with HMAC-SHA256 to authenticate it; this package has
// no secret to keep and no authenticity property to prove, so it uses a
// plain keyless hash (blake2b) over the same kind of colon-joined
// payload instead.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Contact is the minimal shape fingerprint needs from a scheduling
// contact — duplicated here rather than importing internal/scheduling,
// so this package has no dependency on the engine.
type Contact struct {
	ID       string
	Timezone string
}

// Input is everything that, if unchanged, should produce the same
// fingerprint for a batch request.
type Input struct {
	Contacts          []Contact
	RangeStart        time.Time
	RangeEnd          time.Time
	OrganizerTimezone string
	SlotsPerContact   int
	ConsultantMode    bool
}

// Of computes the request's fingerprint as a hex-encoded blake2b-256
// digest. Contacts are sorted by ID first so input ordering doesn't
// change the result.
func Of(in Input) string {
	contacts := append([]Contact(nil), in.Contacts...)
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID < contacts[j].ID })

	payload := fmt.Sprintf("%d:%d:%s:%d:%t",
		in.RangeStart.UTC().Unix(), in.RangeEnd.UTC().Unix(),
		in.OrganizerTimezone, in.SlotsPerContact, in.ConsultantMode)
	for _, c := range contacts {
		payload += fmt.Sprintf("|%s:%s", c.ID, c.Timezone)
	}

	sum := blake2b.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
