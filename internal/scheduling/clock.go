package scheduling

import "time"

// Clock abstracts the wall clock so the PAST_DATE_RANGE check is testable
// and the engine stays otherwise a pure function of its inputs. Optimize
// also reads it at start and end to report Metadata.ProcessingTime.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

// Now implements Clock.
func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Useful in tests that need
// deterministic "now" semantics for the past-range check.
type FixedClock struct{ Instant time.Time }

// Now implements Clock.
func (f FixedClock) Now() time.Time { return f.Instant }
