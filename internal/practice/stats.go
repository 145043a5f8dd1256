package practice

import "time"

const (
	// ComboStep is the combo multiplier gain per correct answer.
	ComboStep = 0.1

	// ComboMin is the combo multiplier floor (and reset value).
	ComboMin = 1.0

	// ComboMax is the combo multiplier ceiling.
	ComboMax = 3.0
)

// AnswerEvent is one practice-question outcome. Events are folded into
// aggregates at record time and never mutated afterward.
type AnswerEvent struct {
	Module         string    `json:"module"`
	Correct        bool      `json:"correct"`
	ResponseTimeMs int       `json:"response_time_ms"`
	UsedHint       bool      `json:"used_hint"`
	Timestamp      time.Time `json:"timestamp"`
}

// ModuleStats is the running aggregate for a single skill module.
type ModuleStats struct {
	Module            string  `json:"module"`
	Correct           int     `json:"correct"`
	Total             int     `json:"total"`
	Streak            int     `json:"streak"`
	LongestStreak     int     `json:"longest_streak"`
	PerfectStreak     int     `json:"perfect_streak"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
	ComboMultiplier   float64 `json:"combo_multiplier"`
	Recent            *Window `json:"recent"`
}

// NewModuleStats returns a zero-initialized stats record for a module.
func NewModuleStats(module string) *ModuleStats {
	return &ModuleStats{
		Module:          module,
		ComboMultiplier: ComboMin,
		Recent:          NewWindow(DefaultWindowCap),
	}
}

// Accuracy returns the lifetime accuracy ratio, 0 when no answers recorded.
func (ms *ModuleStats) Accuracy() float64 {
	if ms.Total == 0 {
		return 0
	}
	return float64(ms.Correct) / float64(ms.Total)
}

// apply folds a single answer event into the aggregate.
func (ms *ModuleStats) apply(ev AnswerEvent) {
	// Incremental mean before Total is bumped.
	ms.AvgResponseTimeMs = (ms.AvgResponseTimeMs*float64(ms.Total) + float64(ev.ResponseTimeMs)) / float64(ms.Total+1)
	ms.Total++

	if ev.Correct {
		ms.Correct++
		ms.Streak++
		if ms.Streak > ms.LongestStreak {
			ms.LongestStreak = ms.Streak
		}
		if ev.UsedHint {
			ms.PerfectStreak = 0
		} else {
			ms.PerfectStreak++
		}
		ms.ComboMultiplier += ComboStep
		if ms.ComboMultiplier > ComboMax {
			ms.ComboMultiplier = ComboMax
		}
	} else {
		ms.Streak = 0
		ms.PerfectStreak = 0
		ms.ComboMultiplier = ComboMin
	}

	if ms.Recent == nil {
		ms.Recent = NewWindow(DefaultWindowCap)
	}
	ms.Recent.Append(Outcome{Correct: ev.Correct, ResponseTimeMs: ev.ResponseTimeMs})
}
