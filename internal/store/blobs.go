package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SaveBlob upserts an opaque blob under key. The engine treats persisted
// entities as JSON blobs; the store does not interpret them.
func (s *Store) SaveBlob(ctx context.Context, key string, blob []byte) error {
	if key == "" {
		return fmt.Errorf("save blob: empty key")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blobs (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, blob, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("save blob %q: %w", key, err)
	}
	return nil
}

// LoadBlob returns the blob stored under key, or (nil, nil) when the key
// has never been written. Missing state is not an error; callers fall
// back to zero-initialized defaults.
func (s *Store) LoadBlob(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.GetContext(ctx, &data, "SELECT data FROM blobs WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load blob %q: %w", key, err)
	}
	return data, nil
}
