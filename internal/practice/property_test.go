package practice

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// replay feeds a generated answer sequence through a fresh recorder and
// checks inv after every answer.
func replay(correct []bool, times []int, inv func(*ModuleStats) bool) bool {
	r := NewRecorder()
	n := len(correct)
	if len(times) < n {
		n = len(times)
	}
	for i := 0; i < n; i++ {
		ms, err := r.RecordAnswer("keys", correct[i], times[i], i%3 == 0)
		if err != nil {
			return false
		}
		if !inv(ms) {
			return false
		}
	}
	return true
}

func TestProperty_RecorderInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	genCorrect := gen.SliceOf(gen.Bool())
	genTimes := gen.SliceOf(gen.IntRange(0, 60000))

	properties.Property("correct <= total after any answer sequence", prop.ForAll(
		func(correct []bool, times []int) bool {
			return replay(correct, times, func(ms *ModuleStats) bool {
				return ms.Correct <= ms.Total
			})
		},
		genCorrect, genTimes,
	))

	properties.Property("combo multiplier stays within [1.0, 3.0]", prop.ForAll(
		func(correct []bool, times []int) bool {
			return replay(correct, times, func(ms *ModuleStats) bool {
				return ms.ComboMultiplier >= ComboMin-1e-9 && ms.ComboMultiplier <= ComboMax+1e-9
			})
		},
		genCorrect, genTimes,
	))

	properties.Property("avg response time is never negative", prop.ForAll(
		func(correct []bool, times []int) bool {
			return replay(correct, times, func(ms *ModuleStats) bool {
				return ms.AvgResponseTimeMs >= 0
			})
		},
		genCorrect, genTimes,
	))

	properties.Property("longest streak never decreases and bounds streak", prop.ForAll(
		func(correct []bool, times []int) bool {
			prev := 0
			return replay(correct, times, func(ms *ModuleStats) bool {
				ok := ms.LongestStreak >= prev && ms.Streak <= ms.LongestStreak
				prev = ms.LongestStreak
				return ok
			})
		},
		genCorrect, genTimes,
	))

	properties.TestingRun(t)
}
