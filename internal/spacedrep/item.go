package spacedrep

import (
	"strings"
	"time"
)

// ItemKey is the stable identity of a reviewable unit: a composite of the
// skill module and a content reference, joined as "module:content". Items
// are scoped per module so the same exercise in two modules schedules
// independently.
type ItemKey string

// NewItemKey builds the composite key for a content reference within a module.
func NewItemKey(module, contentID string) ItemKey {
	return ItemKey(module + ":" + contentID)
}

// Module returns the module half of the key, or "" for a malformed key.
func (k ItemKey) Module() string {
	if i := strings.IndexByte(string(k), ':'); i >= 0 {
		return string(k)[:i]
	}
	return ""
}

// ContentID returns the content half of the key.
func (k ItemKey) ContentID() string {
	if i := strings.IndexByte(string(k), ':'); i >= 0 {
		return string(k)[i+1:]
	}
	return string(k)
}

// Item is the spaced-repetition state for one reviewable unit. Items are
// created on first exposure and re-scheduled forever after, never deleted.
type Item struct {
	Key          ItemKey   `json:"key"`
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays float64   `json:"interval_days"`
	DueAt        time.Time `json:"due_at"`
	Repetitions  int       `json:"repetitions"`
	LastReviewAt time.Time `json:"last_review_at"`
}

// IsDue returns true if the item's scheduled review time has passed.
func (it *Item) IsDue(now time.Time) bool {
	return !now.Before(it.DueAt)
}

// OverdueDays returns how many days past due the item is, 0 if not due.
func (it *Item) OverdueDays(now time.Time) float64 {
	if now.Before(it.DueAt) {
		return 0
	}
	return now.Sub(it.DueAt).Hours() / 24.0
}
