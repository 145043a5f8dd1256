package difficulty

import (
	"errors"

	"go.uber.org/zap"

	"github.com/amitn/violino/internal/practice"
)

// ErrInvalidState marks an invariant violation detected defensively,
// e.g. a current level outside the configured ladder. The adapter logs
// it and holds rather than crashing the session.
var ErrInvalidState = errors.New("invalid state")

// Decision is the outcome of a cadence evaluation.
type Decision string

const (
	DecisionPromote Decision = "promote"
	DecisionDemote  Decision = "demote"
	DecisionHold    Decision = "hold"
)

// LevelChange describes an actual level transition. Emitted only on
// promote/demote, never on hold.
type LevelChange struct {
	Module   string
	From     Level
	To       Level
	Decision Decision
}

// Message returns the toast text for a level change.
func (c LevelChange) Message() string {
	if c.Decision == DecisionPromote {
		return "Level up! Now practicing at " + c.To.DisplayName()
	}
	return "Dropping back to " + c.To.DisplayName() + " to rebuild"
}

// State is the per-module difficulty state.
type State struct {
	Module             string           `json:"module"`
	Current            Level            `json:"current"`
	ConsecutiveWrong   int              `json:"consecutive_wrong"`
	ConsecutiveCorrect int              `json:"consecutive_correct"`
	Answers            int              `json:"answers"`
	Window             *practice.Window `json:"window"`
}

// Adapter drives the difficulty state machine for one module. Transitions
// are only considered every EvalInterval answers; promotion requires
// sustained recent accuracy and speed, demotion additionally requires a
// run of consecutive wrong answers. The asymmetry damps oscillation and
// favors learner confidence.
type Adapter struct {
	cfg    Config
	state  *State
	logger *zap.Logger
}

// New creates an adapter starting at the bottom of the ladder.
func New(module string, cfg Config, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = DefaultLevels()
	}
	return &Adapter{
		cfg: cfg,
		state: &State{
			Module:  module,
			Current: cfg.Levels[0],
			Window:  practice.NewWindow(cfg.WindowCap),
		},
		logger: logger,
	}
}

// NewFromState creates an adapter over persisted state. A nil state or a
// state whose level is not on the ladder is replaced with a fresh one.
func NewFromState(module string, cfg Config, state *State, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = DefaultLevels()
	}
	if state == nil || indexOf(cfg.Levels, state.Current) < 0 {
		if state != nil {
			logger.Warn("discarding difficulty state with unknown level",
				zap.String("module", module),
				zap.String("level", string(state.Current)))
		}
		return New(module, cfg, logger)
	}
	if state.Window == nil {
		state.Window = practice.NewWindow(cfg.WindowCap)
	}
	state.Module = module
	return &Adapter{cfg: cfg, state: state, logger: logger}
}

// Level returns the active difficulty level.
func (a *Adapter) Level() Level {
	return a.state.Current
}

// State returns the underlying state for persistence.
func (a *Adapter) State() *State {
	return a.state
}

// Observe folds one answer outcome into the state and, on the evaluation
// cadence, applies the transition rules. Returns a LevelChange on an
// actual transition, nil on hold or off-cadence answers.
func (a *Adapter) Observe(correct bool, responseTimeMs int) *LevelChange {
	s := a.state

	if correct {
		s.ConsecutiveCorrect++
		s.ConsecutiveWrong = 0
	} else {
		s.ConsecutiveWrong++
		s.ConsecutiveCorrect = 0
	}
	s.Window.Append(practice.Outcome{Correct: correct, ResponseTimeMs: responseTimeMs})
	s.Answers++

	if a.cfg.EvalInterval <= 0 || s.Answers%a.cfg.EvalInterval != 0 {
		return nil
	}
	return a.evaluate()
}

// evaluate applies the transition rules in priority order: promote,
// demote, hold. First match wins.
func (a *Adapter) evaluate() *LevelChange {
	s := a.state
	idx := indexOf(a.cfg.Levels, s.Current)
	if idx < 0 {
		// Should be unreachable given component-owned mutation.
		a.logger.Error("difficulty level not on configured ladder, holding",
			zap.String("module", s.Module),
			zap.String("level", string(s.Current)),
			zap.Error(ErrInvalidState))
		return nil
	}

	accuracy := a.recentAccuracy()
	avgTime := s.Window.AvgResponseTimeMs()

	if idx < len(a.cfg.Levels)-1 {
		limit, ok := a.cfg.PromoteTimeMs[s.Current]
		if ok && accuracy > a.cfg.PromoteAccuracy && avgTime > 0 && avgTime < limit {
			from := s.Current
			s.Current = a.cfg.Levels[idx+1]
			a.logger.Info("difficulty promoted",
				zap.String("module", s.Module),
				zap.String("from", string(from)),
				zap.String("to", string(s.Current)))
			return &LevelChange{Module: s.Module, From: from, To: s.Current, Decision: DecisionPromote}
		}
	}

	if idx > 0 {
		ceiling, ok := a.cfg.DemoteAccuracy[s.Current]
		if ok && accuracy < ceiling && s.ConsecutiveWrong >= a.cfg.DemoteWrongGate {
			from := s.Current
			s.Current = a.cfg.Levels[idx-1]
			a.logger.Info("difficulty demoted",
				zap.String("module", s.Module),
				zap.String("from", string(from)),
				zap.String("to", string(s.Current)))
			return &LevelChange{Module: s.Module, From: from, To: s.Current, Decision: DecisionDemote}
		}
	}

	return nil
}

// recentAccuracy returns windowed accuracy, or the neutral default when
// the window holds too few samples to be trustworthy.
func (a *Adapter) recentAccuracy() float64 {
	if a.state.Window.Len() < a.cfg.MinSamples {
		return a.cfg.NeutralAccuracy
	}
	return a.state.Window.Accuracy()
}
