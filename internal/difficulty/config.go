package difficulty

// Config holds the tuning constants for the difficulty state machine.
// The defaults are product-tuning values carried over from the original
// behavior; they are exposed here so callers can adjust them, but the
// default boundaries should not change casually.
type Config struct {
	// Levels is the ordered ladder, lowest first.
	Levels []Level

	// EvalInterval is the answer cadence at which transitions are
	// considered. Off-cadence answers only update counters.
	EvalInterval int

	// WindowCap bounds the recent-outcome window.
	WindowCap int

	// MinSamples is the window size below which recent accuracy is
	// treated as NeutralAccuracy to avoid premature transitions.
	MinSamples int

	// NeutralAccuracy substitutes for recent accuracy under MinSamples.
	NeutralAccuracy float64

	// PromoteAccuracy is the recent-accuracy floor (exclusive) for promotion.
	PromoteAccuracy float64

	// PromoteTimeMs maps a level to the windowed average response time
	// (exclusive upper bound, ms) required to promote out of it. A level
	// with no entry cannot be promoted from.
	PromoteTimeMs map[Level]float64

	// DemoteAccuracy maps a level to the recent-accuracy ceiling
	// (exclusive) below which demotion out of it is considered. A level
	// with no entry cannot be demoted from.
	DemoteAccuracy map[Level]float64

	// DemoteWrongGate is the consecutive-wrong count required before any
	// demotion fires. This is the hysteresis gate: one unlucky run inside
	// the window cannot demote on its own.
	DemoteWrongGate int
}

// DefaultConfig returns the standard tuning for the three-tier ladder.
func DefaultConfig() Config {
	return Config{
		Levels:          DefaultLevels(),
		EvalInterval:    5,
		WindowCap:       20,
		MinSamples:      6,
		NeutralAccuracy: 0.5,
		PromoteAccuracy: 0.85,
		PromoteTimeMs: map[Level]float64{
			LevelBeginner:     3500,
			LevelIntermediate: 3000,
		},
		DemoteAccuracy: map[Level]float64{
			LevelAdvanced:     0.5,
			LevelIntermediate: 0.4,
		},
		DemoteWrongGate: 5,
	}
}
