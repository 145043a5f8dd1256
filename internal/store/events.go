package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// AnswerRecord is one row of the append-only answer-event log.
type AnswerRecord struct {
	ID             int64  `db:"id"`
	SessionID      string `db:"session_id"`
	Module         string `db:"module"`
	ContentID      string `db:"content_id"`
	Correct        bool   `db:"correct"`
	ResponseTimeMs int    `db:"response_time_ms"`
	UsedHint       bool   `db:"used_hint"`
	XPAwarded      int    `db:"xp_awarded"`
	Level          string `db:"level"`
	CreatedAtMs    int64  `db:"created_at"`
}

// CreatedAt returns the event timestamp.
func (r AnswerRecord) CreatedAt() time.Time {
	return time.UnixMilli(r.CreatedAtMs)
}

// AppendAnswer appends one answer event to the log.
func (s *Store) AppendAnswer(ctx context.Context, rec AnswerRecord) error {
	if rec.CreatedAtMs == 0 {
		rec.CreatedAtMs = time.Now().UnixMilli()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO answer_events
			(session_id, module, content_id, correct, response_time_ms, used_hint, xp_awarded, level, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Module, rec.ContentID, rec.Correct,
		rec.ResponseTimeMs, rec.UsedHint, rec.XPAwarded, rec.Level, rec.CreatedAtMs)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

// ModuleAccuracy returns lifetime accuracy and answer count for a module
// from the event log.
func (s *Store) ModuleAccuracy(ctx context.Context, module string) (float64, int, error) {
	var row struct {
		Total   int `db:"total"`
		Correct int `db:"correct"`
	}
	err := s.db.GetContext(ctx, &row, `
		SELECT COUNT(*) AS total, COALESCE(SUM(correct), 0) AS correct
		FROM answer_events WHERE module = ?`, module)
	if err != nil {
		return 0, 0, fmt.Errorf("query module accuracy: %w", err)
	}
	if row.Total == 0 {
		return 0, 0, nil
	}
	return float64(row.Correct) / float64(row.Total), row.Total, nil
}

// LastPracticed returns the timestamp of the most recent answer for a
// module, or the zero time if the module has never been practiced.
func (s *Store) LastPracticed(ctx context.Context, module string) (time.Time, error) {
	var ms int64
	err := s.db.GetContext(ctx, &ms,
		"SELECT created_at FROM answer_events WHERE module = ? ORDER BY id DESC LIMIT 1", module)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("query last practiced: %w", err)
	}
	return time.UnixMilli(ms), nil
}

// History returns answer events in append order. A limit of 0 returns
// the full log.
func (s *Store) History(ctx context.Context, limit int) ([]AnswerRecord, error) {
	query := "SELECT * FROM answer_events ORDER BY id"
	var records []AnswerRecord
	var err error
	if limit > 0 {
		err = s.db.SelectContext(ctx, &records, query+" LIMIT ?", limit)
	} else {
		err = s.db.SelectContext(ctx, &records, query)
	}
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return records, nil
}

// Modules returns the distinct module identifiers present in the log.
func (s *Store) Modules(ctx context.Context) ([]string, error) {
	var modules []string
	err := s.db.SelectContext(ctx, &modules,
		"SELECT DISTINCT module FROM answer_events ORDER BY module")
	if err != nil {
		return nil, fmt.Errorf("query modules: %w", err)
	}
	return modules, nil
}
