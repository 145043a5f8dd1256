// Package trainer wires the practice engine together: one explicitly
// constructed Engine owns all module stats, difficulty state, and the
// spaced-repetition item map, and talks to its collaborators (storage,
// notification, logging) only through the interfaces defined here.
package trainer

import (
	"context"
	"time"

	"github.com/amitn/violino/internal/difficulty"
)

// BlobStore is the persistence collaborator. The engine treats every
// persisted entity as an opaque JSON blob; missing keys load as
// (nil, nil) and fall back to zero-initialized state. Writes are
// best-effort and never gate the in-memory result.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}

// LoggedAnswer is one answer outcome appended to the history log.
type LoggedAnswer struct {
	SessionID      string
	Module         string
	ContentID      string
	Correct        bool
	ResponseTimeMs int
	UsedHint       bool
	XPAwarded      int
	Level          string
	At             time.Time
}

// EventLog is the append-only history collaborator.
type EventLog interface {
	AppendAnswer(ctx context.Context, e LoggedAnswer) error
}

// XPAward is the reward notification payload.
type XPAward struct {
	Module  string
	XP      int
	Message string
}

// Notifier receives engine notifications as plain data. Implementations
// render toasts, play audio, or ignore them; the engine never calls into
// rendering directly.
type Notifier interface {
	LevelChanged(change difficulty.LevelChange)
	XPAwarded(award XPAward)
}

// NopBlobStore is the default storage collaborator: nothing persists.
type NopBlobStore struct{}

func (NopBlobStore) Load(context.Context, string) ([]byte, error) { return nil, nil }
func (NopBlobStore) Save(context.Context, string, []byte) error   { return nil }

// NopEventLog is the default history collaborator.
type NopEventLog struct{}

func (NopEventLog) AppendAnswer(context.Context, LoggedAnswer) error { return nil }

// NopNotifier is the default notification collaborator.
type NopNotifier struct{}

func (NopNotifier) LevelChanged(difficulty.LevelChange) {}
func (NopNotifier) XPAwarded(XPAward)                   {}
