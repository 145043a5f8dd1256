package mastery

import "github.com/amitn/violino/internal/practice"

const (
	// DefaultStreakCap is the streak length that earns full consistency credit.
	DefaultStreakCap = 8

	// accuracyWeight, speedWeight and consistencyWeight blend the three
	// components of the composite score. They sum to 1.
	accuracyWeight    = 0.6
	speedWeight       = 0.2
	consistencyWeight = 0.2

	// speedFullCreditMs is the response time at or below which an answer
	// earns a full speed component; speedZeroCreditMs earns none.
	speedFullCreditMs = 2000.0
	speedZeroCreditMs = 10000.0
)

// Score computes a composite mastery score in [0, 1] from lifetime
// accuracy, windowed response speed, and current streak consistency.
// Pure with respect to its input.
func Score(stats *practice.ModuleStats) float64 {
	if stats == nil || stats.Total == 0 {
		return 0
	}

	accuracy := stats.Accuracy()
	speed := speedComponent(stats.Recent)
	consistency := consistencyComponent(stats.Streak, DefaultStreakCap)

	score := accuracyWeight*clamp(accuracy) + speedWeight*clamp(speed) + consistencyWeight*clamp(consistency)
	return clamp(score)
}

// speedComponent scores the windowed average response time on a linear
// ramp from speedFullCreditMs (1.0) down to speedZeroCreditMs (0.0).
// An empty window is neutral.
func speedComponent(w *practice.Window) float64 {
	if w == nil || w.Len() == 0 {
		return 0.5
	}
	avg := w.AvgResponseTimeMs()
	switch {
	case avg <= speedFullCreditMs:
		return 1.0
	case avg >= speedZeroCreditMs:
		return 0.0
	default:
		return 1.0 - (avg-speedFullCreditMs)/(speedZeroCreditMs-speedFullCreditMs)
	}
}

func consistencyComponent(streak, cap int) float64 {
	if cap <= 0 {
		return 0
	}
	if streak >= cap {
		return 1.0
	}
	return float64(streak) / float64(cap)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
