// Package reward derives XP awards from answer outcomes. The calculator
// is a pure function of its inputs; XP totals live with the caller.
package reward

import "math"

const (
	// DefaultBaseXP is the standard award for a correct answer before bonuses.
	DefaultBaseXP = 5

	// StreakBonusThreshold is the streak length at which the streak bonus kicks in.
	StreakBonusThreshold = 3

	// StreakBonusRate converts streak length to bonus XP (floored).
	StreakBonusRate = 0.5

	// ResponseTimeBonusMs is the response time under which the speed bonus applies.
	ResponseTimeBonusMs = 5000

	// SpeedBonusRate is the fraction of base XP granted as speed bonus (ceiled).
	SpeedBonusRate = 0.3

	// HintPenalty multiplies the final award when a hint was used.
	HintPenalty = 0.5
)

// Config holds the reward tuning knobs.
type Config struct {
	// WrongAnswerXP is awarded for an incorrect answer.
	WrongAnswerXP int

	StreakBonusThreshold int
	ResponseTimeBonusMs  int
	HintPenalty          float64
}

// DefaultConfig returns the standard reward tuning.
func DefaultConfig() Config {
	return Config{
		WrongAnswerXP:        0,
		StreakBonusThreshold: StreakBonusThreshold,
		ResponseTimeBonusMs:  ResponseTimeBonusMs,
		HintPenalty:          HintPenalty,
	}
}

// Compute returns the XP award for one answer. Bonuses apply in a fixed
// order: streak bonus, speed bonus, combo multiplier, hint penalty. The
// result is floored at each multiplicative step and never negative.
func Compute(cfg Config, correct bool, responseTimeMs, streak int, comboMultiplier float64, usedHint bool, baseXP int) int {
	if !correct {
		if cfg.WrongAnswerXP < 0 {
			return 0
		}
		return cfg.WrongAnswerXP
	}

	if baseXP < 0 {
		baseXP = 0
	}
	xp := float64(baseXP)

	if streak >= cfg.StreakBonusThreshold {
		xp += math.Floor(float64(streak) * StreakBonusRate)
	}
	if responseTimeMs < cfg.ResponseTimeBonusMs {
		xp += math.Ceil(float64(baseXP) * SpeedBonusRate)
	}

	if comboMultiplier > 0 {
		xp = math.Floor(xp * comboMultiplier)
	}
	if usedHint {
		xp = math.Floor(xp * cfg.HintPenalty)
	}

	if xp < 0 {
		return 0
	}
	return int(xp)
}
