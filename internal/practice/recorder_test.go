package practice

import (
	"errors"
	"math"
	"testing"
)

func TestRecordAnswer_FirstAnswer(t *testing.T) {
	r := NewRecorder()
	ms, err := r.RecordAnswer("keys", true, 1800, false)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if ms.Correct != 1 || ms.Total != 1 {
		t.Errorf("correct/total = %d/%d, want 1/1", ms.Correct, ms.Total)
	}
	if ms.Streak != 1 {
		t.Errorf("streak = %d, want 1", ms.Streak)
	}
	if ms.AvgResponseTimeMs != 1800 {
		t.Errorf("avgResponseTimeMs = %f, want 1800", ms.AvgResponseTimeMs)
	}
	if math.Abs(ms.ComboMultiplier-1.1) > 0.0001 {
		t.Errorf("comboMultiplier = %f, want 1.1", ms.ComboMultiplier)
	}
}

func TestRecordAnswer_EmptyModule(t *testing.T) {
	r := NewRecorder()
	_, err := r.RecordAnswer("", true, 1000, false)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestRecordAnswer_NegativeResponseTime(t *testing.T) {
	r := NewRecorder()
	_, err := r.RecordAnswer("keys", true, -5, false)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestRecordAnswer_StreakReset(t *testing.T) {
	r := NewRecorder()
	for i := 0; i < 3; i++ {
		if _, err := r.RecordAnswer("rhythm", true, 2000, false); err != nil {
			t.Fatalf("RecordAnswer: %v", err)
		}
	}
	ms, _ := r.RecordAnswer("rhythm", false, 2000, false)
	if ms.Streak != 0 {
		t.Errorf("streak = %d, want 0 after incorrect", ms.Streak)
	}
	if ms.LongestStreak != 3 {
		t.Errorf("longestStreak = %d, want 3", ms.LongestStreak)
	}
	if ms.ComboMultiplier != ComboMin {
		t.Errorf("comboMultiplier = %f, want reset to %f", ms.ComboMultiplier, ComboMin)
	}
}

func TestRecordAnswer_PerfectStreakResetsOnHint(t *testing.T) {
	r := NewRecorder()
	r.RecordAnswer("intervals", true, 2000, false)
	r.RecordAnswer("intervals", true, 2000, false)
	ms, _ := r.RecordAnswer("intervals", true, 2000, true)
	if ms.Streak != 3 {
		t.Errorf("streak = %d, want 3", ms.Streak)
	}
	if ms.PerfectStreak != 0 {
		t.Errorf("perfectStreak = %d, want 0 after hinted answer", ms.PerfectStreak)
	}
}

func TestRecordAnswer_ComboCapped(t *testing.T) {
	r := NewRecorder()
	var ms *ModuleStats
	for i := 0; i < 30; i++ {
		ms, _ = r.RecordAnswer("keys", true, 1000, false)
	}
	if ms.ComboMultiplier != ComboMax {
		t.Errorf("comboMultiplier = %f, want capped at %f", ms.ComboMultiplier, ComboMax)
	}
}

func TestRecordAnswer_IncrementalMean(t *testing.T) {
	r := NewRecorder()
	r.RecordAnswer("keys", true, 1000, false)
	r.RecordAnswer("keys", false, 2000, false)
	ms, _ := r.RecordAnswer("keys", true, 3000, false)
	if math.Abs(ms.AvgResponseTimeMs-2000) > 0.0001 {
		t.Errorf("avgResponseTimeMs = %f, want 2000", ms.AvgResponseTimeMs)
	}
}

func TestRecordAnswer_WindowEviction(t *testing.T) {
	r := NewRecorder()
	for i := 0; i < 25; i++ {
		r.RecordAnswer("keys", i%2 == 0, 1000, false)
	}
	ms := r.Stats("keys")
	if ms.Recent.Len() != DefaultWindowCap {
		t.Errorf("window len = %d, want %d", ms.Recent.Len(), DefaultWindowCap)
	}
}

func TestNewRecorderFromStats_RepairsDefaults(t *testing.T) {
	seed := map[string]*ModuleStats{
		"keys": {Module: "keys", Correct: 4, Total: 5},
		"":     {Module: "bad"},
	}
	r := NewRecorderFromStats(seed)
	ms := r.Stats("keys")
	if ms == nil {
		t.Fatal("expected seeded stats for keys")
	}
	if ms.ComboMultiplier != ComboMin {
		t.Errorf("comboMultiplier = %f, want repaired to %f", ms.ComboMultiplier, ComboMin)
	}
	if ms.Recent == nil {
		t.Error("expected repaired recent window")
	}
	if len(r.AllStats()) != 1 {
		t.Errorf("modules = %d, want 1 (empty key skipped)", len(r.AllStats()))
	}
}

func TestWindow_Accuracy(t *testing.T) {
	w := NewWindow(5)
	if w.Accuracy() != 0 {
		t.Errorf("empty window accuracy = %f, want 0", w.Accuracy())
	}
	w.Append(Outcome{Correct: true, ResponseTimeMs: 1000})
	w.Append(Outcome{Correct: false, ResponseTimeMs: 3000})
	if w.Accuracy() != 0.5 {
		t.Errorf("accuracy = %f, want 0.5", w.Accuracy())
	}
	if w.AvgResponseTimeMs() != 2000 {
		t.Errorf("avgResponseTimeMs = %f, want 2000", w.AvgResponseTimeMs())
	}
}
