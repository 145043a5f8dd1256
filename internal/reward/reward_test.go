package reward

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCompute_WorkedExample(t *testing.T) {
	// base 5, streak 5 -> +2, fast -> +2 = 9; x1.5 combo = 13.5 -> 13;
	// x0.5 hint penalty = 6.5 -> 6.
	got := Compute(DefaultConfig(), true, 1000, 5, 1.5, true, 5)
	if got != 6 {
		t.Errorf("Compute = %d, want 6", got)
	}
}

func TestCompute_Incorrect(t *testing.T) {
	if got := Compute(DefaultConfig(), false, 1000, 10, 3.0, false, 5); got != 0 {
		t.Errorf("Compute = %d, want 0 for incorrect", got)
	}
}

func TestCompute_ConfiguredWrongAnswerXP(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WrongAnswerXP = 1
	if got := Compute(cfg, false, 1000, 0, 1.0, false, 5); got != 1 {
		t.Errorf("Compute = %d, want configured wrong-answer XP 1", got)
	}
}

func TestCompute_NoStreakBonusBelowThreshold(t *testing.T) {
	// base 5 + speed 2 = 7, no streak bonus at streak 2.
	if got := Compute(DefaultConfig(), true, 1000, 2, 1.0, false, 5); got != 7 {
		t.Errorf("Compute = %d, want 7", got)
	}
}

func TestCompute_NoSpeedBonusWhenSlow(t *testing.T) {
	// base 5 + streak floor(4*0.5)=2, no speed bonus at 5000ms (strict <).
	if got := Compute(DefaultConfig(), true, 5000, 4, 1.0, false, 5); got != 7 {
		t.Errorf("Compute = %d, want 7", got)
	}
}

func TestCompute_ComboAmplifies(t *testing.T) {
	// base 5, no bonuses, x2.0 combo = 10.
	if got := Compute(DefaultConfig(), true, 6000, 0, 2.0, false, 5); got != 10 {
		t.Errorf("Compute = %d, want 10", got)
	}
}

func TestProperty_RewardBounded(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("reward is never negative", prop.ForAll(
		func(correct bool, responseTimeMs, streak int, combo float64, usedHint bool, baseXP int) bool {
			return Compute(DefaultConfig(), correct, responseTimeMs, streak, combo, usedHint, baseXP) >= 0
		},
		gen.Bool(),
		gen.IntRange(0, 120000),
		gen.IntRange(0, 500),
		gen.Float64Range(1.0, 3.0),
		gen.Bool(),
		gen.IntRange(0, 100),
	))

	properties.Property("incorrect always yields the wrong-answer XP", prop.ForAll(
		func(responseTimeMs, streak int, combo float64, usedHint bool, baseXP int) bool {
			return Compute(DefaultConfig(), false, responseTimeMs, streak, combo, usedHint, baseXP) == 0
		},
		gen.IntRange(0, 120000),
		gen.IntRange(0, 500),
		gen.Float64Range(1.0, 3.0),
		gen.Bool(),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
