package session

import (
	"time"

	"github.com/amitn/violino/internal/difficulty"
	"github.com/amitn/violino/internal/spacedrep"
)

// SlotKind represents the reason a drill was included in the plan.
type SlotKind string

const (
	// KindFresh serves new content generated at the module's current
	// difficulty level.
	KindFresh SlotKind = "fresh"
	// KindReview re-serves a due spaced-repetition item.
	KindReview SlotKind = "review"
)

// PlanSlot is a single drill slot in the session plan.
type PlanSlot struct {
	Kind   SlotKind
	Module string
	Level  difficulty.Level

	// Item is set only on review slots.
	Item *spacedrep.Item
}

// Plan is the ordered list of drill slots for one practice session.
type Plan struct {
	Slots    []PlanSlot
	Duration time.Duration
}

// ReviewCount returns the number of review slots in the plan.
func (p *Plan) ReviewCount() int {
	n := 0
	for _, s := range p.Slots {
		if s.Kind == KindReview {
			n++
		}
	}
	return n
}

// DefaultSessionDuration is the standard session length.
const DefaultSessionDuration = 15 * time.Minute

// DefaultTotalSlots is the default number of drills in a session plan.
const DefaultTotalSlots = 10
