package spacedrep

const (
	// DefaultEaseFactor is the starting ease for a new item.
	DefaultEaseFactor = 2.5

	// EaseFloor is the minimum ease factor. Repeated failures cannot
	// shrink intervals below this growth rate.
	EaseFloor = 1.3

	// EaseCeil bounds how far consistent correctness can raise the ease.
	EaseCeil = 3.0

	// EaseGain is added to the ease on a correct review.
	EaseGain = 0.1

	// EaseDrop is subtracted from the ease on an incorrect review.
	EaseDrop = 0.2

	// FirstIntervalDays and SecondIntervalDays seed the interval ladder
	// before multiplicative growth takes over.
	FirstIntervalDays  = 1.0
	SecondIntervalDays = 6.0

	// DefaultReviewProbability is the chance a practice session serves a
	// due review item instead of a fresh one. Keeps review interleaved
	// without crowding out new content.
	DefaultReviewProbability = 0.3
)

// Config holds the scheduler tuning knobs.
type Config struct {
	ReviewProbability float64
}

// DefaultConfig returns the standard scheduler tuning.
func DefaultConfig() Config {
	return Config{ReviewProbability: DefaultReviewProbability}
}
