package spacedrep

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// WeightFunc assigns a selection weight to a due item. Items with
// non-positive weight are excluded.
type WeightFunc func(*Item) float64

// Scheduler owns the item map and assigns next-due timestamps using a
// simplified SM-2 interval-growth rule.
type Scheduler struct {
	items map[ItemKey]*Item
	cfg   Config
	rng   *rand.Rand
}

// NewScheduler creates an empty scheduler. A nil rng source gets a
// time-seeded one; tests pass a fixed seed for determinism.
func NewScheduler(cfg Config, rng *rand.Rand) *Scheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.ReviewProbability <= 0 {
		cfg.ReviewProbability = DefaultReviewProbability
	}
	return &Scheduler{
		items: make(map[ItemKey]*Item),
		cfg:   cfg,
		rng:   rng,
	}
}

// NewSchedulerFromItems creates a scheduler seeded with persisted items.
// Floors are re-applied so a corrupted blob cannot smuggle in a runaway
// ease or negative interval.
func NewSchedulerFromItems(cfg Config, items map[ItemKey]*Item, rng *rand.Rand) *Scheduler {
	s := NewScheduler(cfg, rng)
	for key, it := range items {
		if it == nil || key == "" {
			continue
		}
		it.Key = key
		if it.EaseFactor < EaseFloor {
			it.EaseFactor = EaseFloor
		}
		if it.IntervalDays < 0 {
			it.IntervalDays = 0
		}
		s.items[key] = it
	}
	return s
}

// RecordReview applies one review outcome to the item, creating it on
// first exposure, and returns the re-scheduled item.
//
// On a correct review the ease rises slightly (capped), repetitions
// advance, and the interval follows the ladder 1, 6, then multiplicative
// growth by the ease factor. On an incorrect review repetitions and the
// interval reset and the ease drops toward its floor.
func (s *Scheduler) RecordReview(key ItemKey, correct bool, now time.Time) *Item {
	it, ok := s.items[key]
	if !ok {
		it = &Item{Key: key, EaseFactor: DefaultEaseFactor}
		s.items[key] = it
	}

	if correct {
		it.EaseFactor += EaseGain
		if it.EaseFactor > EaseCeil {
			it.EaseFactor = EaseCeil
		}
		it.Repetitions++
		switch {
		case it.Repetitions <= 1:
			it.IntervalDays = FirstIntervalDays
		case it.Repetitions == 2:
			it.IntervalDays = SecondIntervalDays
		default:
			it.IntervalDays = math.Round(it.IntervalDays * it.EaseFactor)
		}
	} else {
		it.EaseFactor -= EaseDrop
		if it.EaseFactor < EaseFloor {
			it.EaseFactor = EaseFloor
		}
		it.Repetitions = 0
		it.IntervalDays = FirstIntervalDays
	}

	it.LastReviewAt = now
	it.DueAt = now.Add(time.Duration(it.IntervalDays * 24 * float64(time.Hour)))
	return it
}

// Item returns the tracked item for key, or nil if never exposed.
func (s *Scheduler) Item(key ItemKey) *Item {
	return s.items[key]
}

// AllItems returns the full item map (for persistence and stats).
func (s *Scheduler) AllItems() map[ItemKey]*Item {
	result := make(map[ItemKey]*Item, len(s.items))
	for key, it := range s.items {
		result[key] = it
	}
	return result
}

// DueItems returns up to limit due items for the module ("" means all
// modules), chosen uniformly at random from the due pool. An empty pool
// returns an empty slice; callers fall through to fresh-item generation.
func (s *Scheduler) DueItems(module string, limit int, now time.Time) []*Item {
	return s.DueItemsWeighted(module, limit, now, nil)
}

// DueItemsWeighted is DueItems with a caller-supplied priority weight.
// A nil weight selects uniformly.
func (s *Scheduler) DueItemsWeighted(module string, limit int, now time.Time, weight WeightFunc) []*Item {
	pool := s.duePool(module, now)
	if len(pool) == 0 || limit <= 0 {
		return nil
	}

	var picked []*Item
	for len(picked) < limit && len(pool) > 0 {
		idx := s.pick(pool, weight)
		if idx < 0 {
			break
		}
		picked = append(picked, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return picked
}

// ShouldServeReview decides whether the next question slot goes to a due
// review item for the module. Returns false whenever the due pool is
// empty, regardless of the roll.
func (s *Scheduler) ShouldServeReview(module string, now time.Time) bool {
	if len(s.duePool(module, now)) == 0 {
		return false
	}
	return s.rng.Float64() < s.cfg.ReviewProbability
}

// duePool collects due items for the module in deterministic key order,
// so seeded selection is reproducible.
func (s *Scheduler) duePool(module string, now time.Time) []*Item {
	var pool []*Item
	for _, it := range s.items {
		if module != "" && it.Key.Module() != module {
			continue
		}
		if it.IsDue(now) {
			pool = append(pool, it)
		}
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].Key < pool[j].Key })
	return pool
}

// pick returns the index of the selected item, uniform or weighted.
func (s *Scheduler) pick(pool []*Item, weight WeightFunc) int {
	if weight == nil {
		return s.rng.Intn(len(pool))
	}

	total := 0.0
	weights := make([]float64, len(pool))
	for i, it := range pool {
		w := weight(it)
		if w < 0 {
			w = 0
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return -1
	}

	roll := s.rng.Float64() * total
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return i
		}
	}
	return len(pool) - 1
}
