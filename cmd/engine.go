package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/amitn/violino/internal/difficulty"
	"github.com/amitn/violino/internal/store"
	"github.com/amitn/violino/internal/trainer"
	"github.com/amitn/violino/internal/ui/theme"
)

// storeBlobs adapts the SQLite store to the engine's blob collaborator.
type storeBlobs struct {
	st *store.Store
}

func (b storeBlobs) Load(ctx context.Context, key string) ([]byte, error) {
	return b.st.LoadBlob(ctx, key)
}

func (b storeBlobs) Save(ctx context.Context, key string, blob []byte) error {
	return b.st.SaveBlob(ctx, key, blob)
}

// storeEvents adapts the store's answer log to the engine's event
// collaborator.
type storeEvents struct {
	st *store.Store
}

func (l storeEvents) AppendAnswer(ctx context.Context, e trainer.LoggedAnswer) error {
	return l.st.AppendAnswer(ctx, store.AnswerRecord{
		SessionID:      e.SessionID,
		Module:         e.Module,
		ContentID:      e.ContentID,
		Correct:        e.Correct,
		ResponseTimeMs: e.ResponseTimeMs,
		UsedHint:       e.UsedHint,
		XPAwarded:      e.XPAwarded,
		Level:          e.Level,
		CreatedAtMs:    e.At.UnixMilli(),
	})
}

// consoleNotifier prints level changes to stdout. XP awards are rendered
// in the per-answer output instead, so they pass through silently.
type consoleNotifier struct{}

func (consoleNotifier) LevelChanged(c difficulty.LevelChange) {
	fmt.Println(theme.Highlight.Render(c.Message()))
}

func (consoleNotifier) XPAwarded(trainer.XPAward) {}

// newEngine wires a practice engine onto the opened store.
func newEngine(ctx context.Context, st *store.Store, logger *zap.Logger) *trainer.Engine {
	return trainer.New(ctx, trainer.Deps{
		Blobs:    storeBlobs{st: st},
		Events:   storeEvents{st: st},
		Notifier: consoleNotifier{},
		Logger:   logger,
	})
}
