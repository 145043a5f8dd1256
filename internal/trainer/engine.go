package trainer

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amitn/violino/internal/difficulty"
	"github.com/amitn/violino/internal/mastery"
	"github.com/amitn/violino/internal/practice"
	"github.com/amitn/violino/internal/reward"
	"github.com/amitn/violino/internal/spacedrep"
)

// Persistence key prefixes. Entities are stored as JSON blobs keyed by
// module (stats, difficulty) or as one blob for the whole item map.
const (
	statsKeyPrefix      = "stats:"
	difficultyKeyPrefix = "difficulty:"
	spacedRepKey        = "spacedrep:items"
)

// Config bundles the tuning for all engine components.
type Config struct {
	Difficulty difficulty.Config
	Reward     reward.Config
	SpacedRep  spacedrep.Config

	// BaseXP is the pre-bonus award for a correct answer.
	BaseXP int
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{
		Difficulty: difficulty.DefaultConfig(),
		Reward:     reward.DefaultConfig(),
		SpacedRep:  spacedrep.DefaultConfig(),
		BaseXP:     reward.DefaultBaseXP,
	}
}

// Deps are the engine's collaborators and knobs. Zero values get no-op
// or default implementations.
type Deps struct {
	Blobs    BlobStore
	Events   EventLog
	Notifier Notifier
	Logger   *zap.Logger
	Config   Config

	// Now and Rand are injectable for deterministic tests.
	Now  func() time.Time
	Rand *rand.Rand
}

// Answer is one submitted practice outcome.
type Answer struct {
	Module         string
	ContentID      string
	Correct        bool
	ResponseTimeMs int
	UsedHint       bool
}

// Result is the engine's full response to one answer.
type Result struct {
	Stats        *practice.ModuleStats
	Assessment   mastery.Assessment
	MasteryScore float64
	XPAwarded    int
	SessionXP    int
	Level        difficulty.Level
	LevelChange  *difficulty.LevelChange
	Item         *spacedrep.Item
}

// Engine is the practice-session core. All state is owned here and
// mutated only through SubmitAnswer on a single logical thread; storage
// is an eventually consistent mirror of the in-memory state.
type Engine struct {
	cfg       Config
	recorder  *practice.Recorder
	adapters  map[string]*difficulty.Adapter
	sched     *spacedrep.Scheduler
	hydrated  map[string]bool
	blobs     BlobStore
	events    EventLog
	notifier  Notifier
	logger    *zap.Logger
	now       func() time.Time
	sessionID string
	sessionXP int
}

// New constructs an engine and hydrates the spaced-repetition item map
// from storage. Module state hydrates lazily on first touch.
func New(ctx context.Context, deps Deps) *Engine {
	if deps.Blobs == nil {
		deps.Blobs = NopBlobStore{}
	}
	if deps.Events == nil {
		deps.Events = NopEventLog{}
	}
	if deps.Notifier == nil {
		deps.Notifier = NopNotifier{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Config.BaseXP <= 0 {
		deps.Config = DefaultConfig()
	}

	e := &Engine{
		cfg:       deps.Config,
		recorder:  practice.NewRecorder(),
		adapters:  make(map[string]*difficulty.Adapter),
		hydrated:  make(map[string]bool),
		blobs:     deps.Blobs,
		events:    deps.Events,
		notifier:  deps.Notifier,
		logger:    deps.Logger,
		now:       deps.Now,
		sessionID: uuid.NewString(),
	}

	items := make(map[spacedrep.ItemKey]*spacedrep.Item)
	if ok := e.loadJSON(ctx, spacedRepKey, &items); ok {
		e.sched = spacedrep.NewSchedulerFromItems(e.cfg.SpacedRep, items, deps.Rand)
	} else {
		e.sched = spacedrep.NewScheduler(e.cfg.SpacedRep, deps.Rand)
	}

	e.logger.Debug("engine ready", zap.String("session_id", e.sessionID))
	return e
}

// SessionID returns the identity stamped on this session's logged events.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// SessionXP returns the XP accumulated this session.
func (e *Engine) SessionXP() int {
	return e.sessionXP
}

// SubmitAnswer runs the full answer pipeline: record, reward, adapt
// difficulty, re-schedule the reviewed item, then mirror the updated
// state to storage. The in-memory result is authoritative; persistence
// failures are logged and swallowed.
func (e *Engine) SubmitAnswer(ctx context.Context, a Answer) (*Result, error) {
	if a.Module == "" {
		return nil, fmt.Errorf("submit answer: empty module: %w", practice.ErrInvalidArgument)
	}
	e.hydrateModule(ctx, a.Module)

	stats, err := e.recorder.RecordAnswer(a.Module, a.Correct, a.ResponseTimeMs, a.UsedHint)
	if err != nil {
		return nil, err
	}

	xp := reward.Compute(e.cfg.Reward, a.Correct, a.ResponseTimeMs, stats.Streak, stats.ComboMultiplier, a.UsedHint, e.cfg.BaseXP)
	e.sessionXP += xp
	e.notifier.XPAwarded(XPAward{Module: a.Module, XP: xp, Message: xpMessage(a.Correct, xp)})

	adapter := e.adapter(a.Module)
	change := adapter.Observe(a.Correct, a.ResponseTimeMs)
	if change != nil {
		e.notifier.LevelChanged(*change)
	}

	var item *spacedrep.Item
	if a.ContentID != "" {
		item = e.sched.RecordReview(spacedrep.NewItemKey(a.Module, a.ContentID), a.Correct, e.now())
	}

	e.persist(ctx, a, stats, adapter, item, xp)

	return &Result{
		Stats:        stats,
		Assessment:   mastery.Assess(stats.Correct, stats.Total),
		MasteryScore: mastery.Score(stats),
		XPAwarded:    xp,
		SessionXP:    e.sessionXP,
		Level:        adapter.Level(),
		LevelChange:  change,
		Item:         item,
	}, nil
}

// NextLevel returns the difficulty level the next question for the
// module should be generated at.
func (e *Engine) NextLevel(ctx context.Context, module string) difficulty.Level {
	e.hydrateModule(ctx, module)
	return e.adapter(module).Level()
}

// DueItems returns up to limit due review items for the module ("" for
// all modules).
func (e *Engine) DueItems(module string, limit int) []*spacedrep.Item {
	return e.sched.DueItems(module, limit, e.now())
}

// ShouldServeReview reports whether the next question slot should serve
// a due review item instead of fresh content.
func (e *Engine) ShouldServeReview(module string) bool {
	return e.sched.ShouldServeReview(module, e.now())
}

// ModuleStats returns the stats for a module, hydrating it if needed.
// Returns nil for a never-practiced module.
func (e *Engine) ModuleStats(ctx context.Context, module string) *practice.ModuleStats {
	e.hydrateModule(ctx, module)
	return e.recorder.Stats(module)
}

// AllStats returns all in-memory module stats.
func (e *Engine) AllStats() map[string]*practice.ModuleStats {
	return e.recorder.AllStats()
}

// adapter returns the difficulty adapter for a module, creating a fresh
// one at the bottom level if none exists.
func (e *Engine) adapter(module string) *difficulty.Adapter {
	if a, ok := e.adapters[module]; ok {
		return a
	}
	a := difficulty.New(module, e.cfg.Difficulty, e.logger)
	e.adapters[module] = a
	return a
}

// hydrateModule loads persisted stats and difficulty state for a module
// on first touch. Missing or unreadable blobs fall back to zero state.
func (e *Engine) hydrateModule(ctx context.Context, module string) {
	if module == "" || e.hydrated[module] {
		return
	}
	e.hydrated[module] = true

	var stats practice.ModuleStats
	if e.loadJSON(ctx, statsKeyPrefix+module, &stats) {
		e.recorder = mergeRecorder(e.recorder, module, &stats)
	}

	var state difficulty.State
	if e.loadJSON(ctx, difficultyKeyPrefix+module, &state) {
		e.adapters[module] = difficulty.NewFromState(module, e.cfg.Difficulty, &state, e.logger)
	}
}

// mergeRecorder rebuilds the recorder with one hydrated module added,
// preserving everything already recorded in memory.
func mergeRecorder(r *practice.Recorder, module string, ms *practice.ModuleStats) *practice.Recorder {
	all := r.AllStats()
	if _, exists := all[module]; !exists {
		all[module] = ms
	}
	return practice.NewRecorderFromStats(all)
}

// persist mirrors the updated state to storage, best-effort.
func (e *Engine) persist(ctx context.Context, a Answer, stats *practice.ModuleStats, adapter *difficulty.Adapter, item *spacedrep.Item, xp int) {
	e.saveJSON(ctx, statsKeyPrefix+a.Module, stats)
	e.saveJSON(ctx, difficultyKeyPrefix+a.Module, adapter.State())
	if item != nil {
		e.saveJSON(ctx, spacedRepKey, e.sched.AllItems())
	}

	err := e.events.AppendAnswer(ctx, LoggedAnswer{
		SessionID:      e.sessionID,
		Module:         a.Module,
		ContentID:      a.ContentID,
		Correct:        a.Correct,
		ResponseTimeMs: a.ResponseTimeMs,
		UsedHint:       a.UsedHint,
		XPAwarded:      xp,
		Level:          string(adapter.Level()),
		At:             e.now(),
	})
	if err != nil {
		e.logger.Warn("append answer event failed", zap.String("module", a.Module), zap.Error(err))
	}
}

// loadJSON loads and unmarshals a blob. Returns false when the key is
// missing or the blob is unreadable; both fall back to defaults.
func (e *Engine) loadJSON(ctx context.Context, key string, v any) bool {
	data, err := e.blobs.Load(ctx, key)
	if err != nil {
		e.logger.Warn("load blob failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		e.logger.Warn("decode blob failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// saveJSON marshals and writes a blob, best-effort.
func (e *Engine) saveJSON(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		e.logger.Warn("encode blob failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := e.blobs.Save(ctx, key, data); err != nil {
		e.logger.Warn("save blob failed", zap.String("key", key), zap.Error(err))
	}
}

func xpMessage(correct bool, xp int) string {
	if !correct {
		return "Keep going!"
	}
	return fmt.Sprintf("+%d XP", xp)
}
