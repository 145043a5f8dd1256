package practice

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is returned for malformed input to a public operation.
var ErrInvalidArgument = errors.New("invalid argument")

// Recorder owns the per-module stats map. All mutation goes through
// RecordAnswer; callers must not modify returned stats concurrently
// with recording (the engine is single-writer by design).
type Recorder struct {
	modules map[string]*ModuleStats
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{modules: make(map[string]*ModuleStats)}
}

// NewRecorderFromStats creates a recorder seeded with persisted stats.
// Nil entries and entries with a mismatched module key are skipped.
func NewRecorderFromStats(stats map[string]*ModuleStats) *Recorder {
	r := NewRecorder()
	for module, ms := range stats {
		if ms == nil || module == "" {
			continue
		}
		if ms.ComboMultiplier < ComboMin {
			ms.ComboMultiplier = ComboMin
		}
		if ms.Recent == nil {
			ms.Recent = NewWindow(DefaultWindowCap)
		}
		ms.Module = module
		r.modules[module] = ms
	}
	return r
}

// RecordAnswer folds one answer outcome into the module's aggregate and
// returns the updated stats. Unknown modules are created on first use.
// An empty module identifier or negative response time is rejected with
// ErrInvalidArgument.
func (r *Recorder) RecordAnswer(module string, correct bool, responseTimeMs int, usedHint bool) (*ModuleStats, error) {
	if module == "" {
		return nil, fmt.Errorf("record answer: empty module: %w", ErrInvalidArgument)
	}
	if responseTimeMs < 0 {
		return nil, fmt.Errorf("record answer: negative response time %d: %w", responseTimeMs, ErrInvalidArgument)
	}

	ms, ok := r.modules[module]
	if !ok {
		ms = NewModuleStats(module)
		r.modules[module] = ms
	}

	ms.apply(AnswerEvent{
		Module:         module,
		Correct:        correct,
		ResponseTimeMs: responseTimeMs,
		UsedHint:       usedHint,
		Timestamp:      time.Now(),
	})
	return ms, nil
}

// Stats returns the stats record for a module, or nil if never practiced.
func (r *Recorder) Stats(module string) *ModuleStats {
	return r.modules[module]
}

// AllStats returns all module stats records (for stats/UI).
func (r *Recorder) AllStats() map[string]*ModuleStats {
	result := make(map[string]*ModuleStats, len(r.modules))
	for id, ms := range r.modules {
		result[id] = ms
	}
	return result
}
