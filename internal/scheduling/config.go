package scheduling

// Config is the explicit, enumerated set of options recognized by the
// engine (spec §3). Unspecified fields in a caller-built Config should
// come from NewDefaultConfig so every literal the spec names has a
// concrete default.
type Config struct {
	// Hard constraints
	WorkingHoursStart    float64 // fractional local hour, e.g. 8.0
	WorkingHoursEnd      float64 // fractional local hour, e.g. 18.0
	BufferMinutes        int
	SlotMinutes          int
	GenerationStepMinutes int
	SkipWeekends         bool
	DaysAhead            int

	// Soft scoring
	LunchStart            float64
	LunchEnd               float64
	LookaheadDepth         int
	LookaheadWeight        float64
	MinimumAcceptableScore int
	ConsultantMode         bool

	// Batch
	MaxContactsPerBatch   int
	DefaultSlotsPerContact int

	// Behavior switches not named as literals in §3 but needed to make
	// the engine's optional checks explicit rather than implicit.
	EnforceNotPast bool
	// OrganizerTimezone, when set, is used for the density/overload
	// "civil day" grouping (§9 Open Question: day-grouping zone) and for
	// the organizer-zone display of suggested slots. Empty means UTC.
	OrganizerTimezone string
}

// NewDefaultConfig returns the literal defaults enumerated in spec §3.
func NewDefaultConfig() Config {
	return Config{
		WorkingHoursStart:    8,
		WorkingHoursEnd:      18,
		BufferMinutes:        15,
		SlotMinutes:          60,
		GenerationStepMinutes: 30,
		SkipWeekends:         true,
		DaysAhead:            14,

		LunchStart:             12,
		LunchEnd:               13,
		LookaheadDepth:         2,
		LookaheadWeight:        0.3,
		MinimumAcceptableScore: 60,
		ConsultantMode:         false,

		MaxContactsPerBatch:    10,
		DefaultSlotsPerContact: 3,

		EnforceNotPast:    false,
		OrganizerTimezone: "",
	}
}

// SlotsPerContact validates and returns the per-contact slot count to use
// for a request, applying the configured default when unset.
func (c Config) SlotsPerContact(requested int) int {
	if requested <= 0 {
		return c.DefaultSlotsPerContact
	}
	if requested > 10 {
		return 10
	}
	return requested
}
