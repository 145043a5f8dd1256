package session

import (
	"context"

	"github.com/amitn/violino/internal/difficulty"
	"github.com/amitn/violino/internal/spacedrep"
)

// Trainer is the slice of the practice engine the planner needs.
type Trainer interface {
	NextLevel(ctx context.Context, module string) difficulty.Level
	DueItems(module string, limit int) []*spacedrep.Item
	ShouldServeReview(module string) bool
}

// Planner builds a session plan for one module from the current learner
// state: each slot is either a due review item or fresh content at the
// module's current level.
type Planner struct {
	trainer Trainer
	slots   int
}

// NewPlanner creates a planner producing plans of the default length.
func NewPlanner(trainer Trainer) *Planner {
	return &Planner{trainer: trainer, slots: DefaultTotalSlots}
}

// NewPlannerWithSlots creates a planner producing plans of a custom
// length. Non-positive counts fall back to the default.
func NewPlannerWithSlots(trainer Trainer, slots int) *Planner {
	if slots <= 0 {
		slots = DefaultTotalSlots
	}
	return &Planner{trainer: trainer, slots: slots}
}

// BuildPlan fills the plan slot by slot. Review slots are drawn by the
// engine's review policy and consume the due pool in order; once a due
// item is planned it is not planned again in the same session. With
// nothing due, every slot is fresh.
func (p *Planner) BuildPlan(ctx context.Context, module string) *Plan {
	level := p.trainer.NextLevel(ctx, module)

	due := p.trainer.DueItems(module, p.slots)
	planned := make(map[spacedrep.ItemKey]bool, len(due))

	var slots []PlanSlot
	for i := 0; i < p.slots; i++ {
		if item := p.nextDue(due, planned); item != nil && p.trainer.ShouldServeReview(module) {
			planned[item.Key] = true
			slots = append(slots, PlanSlot{
				Kind:   KindReview,
				Module: module,
				Level:  level,
				Item:   item,
			})
			continue
		}
		slots = append(slots, PlanSlot{
			Kind:   KindFresh,
			Module: module,
			Level:  level,
		})
	}

	return &Plan{Slots: slots, Duration: DefaultSessionDuration}
}

// nextDue returns the first due item not yet planned this session.
func (p *Planner) nextDue(due []*spacedrep.Item, planned map[spacedrep.ItemKey]bool) *spacedrep.Item {
	for _, item := range due {
		if !planned[item.Key] {
			return item
		}
	}
	return nil
}
