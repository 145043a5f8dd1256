package trainer

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitn/violino/internal/difficulty"
	"github.com/amitn/violino/internal/practice"
	"github.com/amitn/violino/internal/spacedrep"
)

// memStore is an in-memory BlobStore with a switchable failure mode.
type memStore struct {
	blobs map[string][]byte
	fail  bool
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (m *memStore) Load(_ context.Context, key string) ([]byte, error) {
	if m.fail {
		return nil, errors.New("storage unavailable")
	}
	return m.blobs[key], nil
}

func (m *memStore) Save(_ context.Context, key string, blob []byte) error {
	if m.fail {
		return errors.New("storage unavailable")
	}
	m.blobs[key] = blob
	return nil
}

// memLog records appended answers, optionally failing.
type memLog struct {
	entries []LoggedAnswer
	fail    bool
}

func (m *memLog) AppendAnswer(_ context.Context, e LoggedAnswer) error {
	if m.fail {
		return errors.New("log unavailable")
	}
	m.entries = append(m.entries, e)
	return nil
}

// memNotifier records notifications.
type memNotifier struct {
	levelChanges []difficulty.LevelChange
	awards       []XPAward
}

func (m *memNotifier) LevelChanged(c difficulty.LevelChange) { m.levelChanges = append(m.levelChanges, c) }
func (m *memNotifier) XPAwarded(a XPAward)                   { m.awards = append(m.awards, a) }

var engineNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, blobs BlobStore, events EventLog, notifier Notifier) *Engine {
	t.Helper()
	return New(context.Background(), Deps{
		Blobs:    blobs,
		Events:   events,
		Notifier: notifier,
		Now:      func() time.Time { return engineNow },
		Rand:     rand.New(rand.NewSource(7)),
	})
}

func TestSubmitAnswer_FirstAnswer(t *testing.T) {
	notifier := &memNotifier{}
	log := &memLog{}
	e := newTestEngine(t, newMemStore(), log, notifier)

	res, err := e.SubmitAnswer(context.Background(), Answer{
		Module: "keys", Correct: true, ResponseTimeMs: 1800,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Stats.Correct)
	assert.Equal(t, 1, res.Stats.Total)
	assert.Equal(t, 1, res.Stats.Streak)
	assert.Equal(t, float64(1800), res.Stats.AvgResponseTimeMs)
	assert.InDelta(t, 1.1, res.Stats.ComboMultiplier, 0.0001)

	// base 5 + speed bonus ceil(5*0.3)=2, no streak bonus yet.
	assert.Equal(t, 7, res.XPAwarded)
	assert.Equal(t, 7, e.SessionXP())

	require.Len(t, notifier.awards, 1)
	assert.Equal(t, XPAward{Module: "keys", XP: 7, Message: "+7 XP"}, notifier.awards[0])

	require.Len(t, log.entries, 1)
	assert.Equal(t, e.SessionID(), log.entries[0].SessionID)
	assert.Equal(t, "keys", log.entries[0].Module)
	assert.Equal(t, string(difficulty.LevelBeginner), log.entries[0].Level)
}

func TestSubmitAnswer_EmptyModule(t *testing.T) {
	e := newTestEngine(t, newMemStore(), &memLog{}, &memNotifier{})
	_, err := e.SubmitAnswer(context.Background(), Answer{Module: "", Correct: true})
	assert.ErrorIs(t, err, practice.ErrInvalidArgument)
}

func TestSubmitAnswer_NegativeResponseTime(t *testing.T) {
	e := newTestEngine(t, newMemStore(), &memLog{}, &memNotifier{})
	_, err := e.SubmitAnswer(context.Background(), Answer{Module: "keys", ResponseTimeMs: -1})
	assert.ErrorIs(t, err, practice.ErrInvalidArgument)
}

func TestSubmitAnswer_StorageFailureDoesNotSurface(t *testing.T) {
	blobs := newMemStore()
	blobs.fail = true
	log := &memLog{fail: true}
	e := newTestEngine(t, blobs, log, &memNotifier{})

	res, err := e.SubmitAnswer(context.Background(), Answer{
		Module: "keys", ContentID: "g-major", Correct: true, ResponseTimeMs: 2000,
	})
	require.NoError(t, err, "persistence failure must never surface")
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Stats.Total)

	// In-memory state keeps advancing on subsequent answers.
	res, err = e.SubmitAnswer(context.Background(), Answer{
		Module: "keys", Correct: true, ResponseTimeMs: 2000,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Stats.Total)
}

func TestSubmitAnswer_PromotionNotifies(t *testing.T) {
	notifier := &memNotifier{}
	e := newTestEngine(t, newMemStore(), &memLog{}, notifier)

	// Ten fast correct answers: cadence evaluations at 5 (neutral
	// accuracy, hold) and 10 (promote beginner -> intermediate).
	for i := 0; i < 10; i++ {
		_, err := e.SubmitAnswer(context.Background(), Answer{
			Module: "keys", Correct: true, ResponseTimeMs: 2000,
		})
		require.NoError(t, err)
	}

	require.Len(t, notifier.levelChanges, 1)
	change := notifier.levelChanges[0]
	assert.Equal(t, difficulty.LevelBeginner, change.From)
	assert.Equal(t, difficulty.LevelIntermediate, change.To)
	assert.Equal(t, difficulty.LevelIntermediate, e.NextLevel(context.Background(), "keys"))
}

func TestSubmitAnswer_SchedulesReviewItem(t *testing.T) {
	e := newTestEngine(t, newMemStore(), &memLog{}, &memNotifier{})

	res, err := e.SubmitAnswer(context.Background(), Answer{
		Module: "keys", ContentID: "g-major", Correct: true, ResponseTimeMs: 2000,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Item)
	assert.Equal(t, spacedrep.NewItemKey("keys", "g-major"), res.Item.Key)
	assert.Equal(t, 1, res.Item.Repetitions)
	assert.Equal(t, float64(1), res.Item.IntervalDays)

	// No content reference means nothing to schedule.
	res, err = e.SubmitAnswer(context.Background(), Answer{
		Module: "keys", Correct: true, ResponseTimeMs: 2000,
	})
	require.NoError(t, err)
	assert.Nil(t, res.Item)
}

func TestEngine_ResumesFromStorage(t *testing.T) {
	blobs := newMemStore()
	ctx := context.Background()

	first := newTestEngine(t, blobs, &memLog{}, &memNotifier{})
	for i := 0; i < 3; i++ {
		_, err := first.SubmitAnswer(ctx, Answer{
			Module: "keys", ContentID: "g-major", Correct: true, ResponseTimeMs: 2000,
		})
		require.NoError(t, err)
	}
	wantStats := first.ModuleStats(ctx, "keys")

	second := newTestEngine(t, blobs, &memLog{}, &memNotifier{})
	got := second.ModuleStats(ctx, "keys")
	require.NotNil(t, got, "expected stats hydrated from storage")
	if diff := cmp.Diff(wantStats, got); diff != "" {
		t.Errorf("hydrated stats mismatch (-want +got):\n%s", diff)
	}

	// The item map survives too.
	res, err := second.SubmitAnswer(ctx, Answer{
		Module: "keys", ContentID: "g-major", Correct: true, ResponseTimeMs: 2000,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Item.Repetitions, "item repetitions continue across sessions")
	assert.Equal(t, 4, res.Stats.Total, "stats counters continue across sessions")
}

func TestEngine_CorruptBlobFallsBackToZeroState(t *testing.T) {
	blobs := newMemStore()
	blobs.blobs["stats:keys"] = []byte("{not json")

	e := newTestEngine(t, blobs, &memLog{}, &memNotifier{})
	res, err := e.SubmitAnswer(context.Background(), Answer{
		Module: "keys", Correct: true, ResponseTimeMs: 2000,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.Total)
}

func TestEngine_DueItemsAndReviewPolicy(t *testing.T) {
	e := newTestEngine(t, newMemStore(), &memLog{}, &memNotifier{})
	ctx := context.Background()

	// Empty pool: never serve review, selection falls through.
	assert.Empty(t, e.DueItems("keys", 5))
	assert.False(t, e.ShouldServeReview("keys"))

	// A just-scheduled item is due one day out, not immediately.
	_, err := e.SubmitAnswer(ctx, Answer{Module: "keys", ContentID: "g-major", Correct: false, ResponseTimeMs: 9000})
	require.NoError(t, err)
	assert.Empty(t, e.DueItems("keys", 5), "freshly scheduled item is not yet due")
}

func TestSubmitAnswer_WrongAnswerXP(t *testing.T) {
	notifier := &memNotifier{}
	e := newTestEngine(t, newMemStore(), &memLog{}, notifier)

	res, err := e.SubmitAnswer(context.Background(), Answer{
		Module: "rhythm", Correct: false, ResponseTimeMs: 4000,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.XPAwarded)
	require.Len(t, notifier.awards, 1)
	assert.Equal(t, "Keep going!", notifier.awards[0].Message)
}

func TestSubmitAnswer_MasteryOutputs(t *testing.T) {
	e := newTestEngine(t, newMemStore(), &memLog{}, &memNotifier{})
	ctx := context.Background()

	var last *Result
	for i := 0; i < 10; i++ {
		var err error
		last, err = e.SubmitAnswer(ctx, Answer{Module: "keys", Correct: i != 0, ResponseTimeMs: 1500})
		require.NoError(t, err)
	}

	assert.Equal(t, 90, last.Assessment.AccuracyPct)
	assert.Equal(t, "A", string(last.Assessment.Grade))
	assert.False(t, math.IsNaN(last.MasteryScore))
	assert.GreaterOrEqual(t, last.MasteryScore, 0.0)
	assert.LessOrEqual(t, last.MasteryScore, 1.0)
}
