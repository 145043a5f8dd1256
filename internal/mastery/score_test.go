package mastery

import (
	"math"
	"testing"

	"github.com/amitn/violino/internal/practice"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func statsWith(correct, total, streak int, times []int) *practice.ModuleStats {
	ms := practice.NewModuleStats("keys")
	ms.Correct = correct
	ms.Total = total
	ms.Streak = streak
	for _, rt := range times {
		ms.Recent.Append(practice.Outcome{Correct: true, ResponseTimeMs: rt})
	}
	return ms
}

func TestScore_NilAndEmpty(t *testing.T) {
	if Score(nil) != 0 {
		t.Error("nil stats should score 0")
	}
	if Score(practice.NewModuleStats("keys")) != 0 {
		t.Error("zero-attempt stats should score 0")
	}
}

func TestScore_AllPerfect(t *testing.T) {
	ms := statsWith(10, 10, 8, []int{1000, 1500, 1200})
	if got := Score(ms); !almostEqual(got, 1.0) {
		t.Errorf("Score = %f, want 1.0", got)
	}
}

func TestScore_EmptyWindowNeutralSpeed(t *testing.T) {
	// accuracy 1.0, speed neutral 0.5, consistency 0.
	ms := statsWith(5, 5, 0, nil)
	want := 0.6*1.0 + 0.2*0.5 + 0.2*0.0
	if got := Score(ms); !almostEqual(got, want) {
		t.Errorf("Score = %f, want %f", got, want)
	}
}

func TestScore_SlowAnswersEarnNoSpeedCredit(t *testing.T) {
	ms := statsWith(5, 10, 2, []int{12000, 15000})
	// accuracy 0.5, speed 0.0, consistency 2/8 = 0.25.
	want := 0.6*0.5 + 0.2*0.0 + 0.2*0.25
	if got := Score(ms); !almostEqual(got, want) {
		t.Errorf("Score = %f, want %f", got, want)
	}
}

func TestScore_SpeedRamp(t *testing.T) {
	// 6000ms is halfway along the 2000..10000 ramp -> 0.5 speed.
	ms := statsWith(10, 10, 0, []int{6000})
	want := 0.6*1.0 + 0.2*0.5 + 0.2*0.0
	if got := Score(ms); !almostEqual(got, want) {
		t.Errorf("Score = %f, want %f", got, want)
	}
}

func TestScore_Bounded(t *testing.T) {
	ms := statsWith(100, 100, 100, []int{1})
	if got := Score(ms); got > 1.0 {
		t.Errorf("Score = %f, want <= 1.0", got)
	}
}
