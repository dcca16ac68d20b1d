package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tOgg1/streamwatch/internal/channel"
)

// ErrNotFound is returned when no observation matches.
var ErrNotFound = errors.New("status observation not found")

// Observation is one recorded status check result.
type Observation struct {
	ID         string
	Handle     string
	Status     channel.Status
	Game       string
	ObservedAt time.Time
}

// StatusStore records and queries status observations.
type StatusStore struct {
	db    *DB
	retry RetryPolicy
	now   func() time.Time
}

// NewStatusStore creates a store over db.
func NewStatusStore(db *DB) *StatusStore {
	return &StatusStore{db: db, retry: DefaultRetry, now: time.Now}
}

// Record stores result, assigning an ID and timestamp.
func (s *StatusStore) Record(ctx context.Context, result channel.Result) (*Observation, error) {
	handle := strings.TrimSpace(result.Handle)
	if handle == "" {
		return nil, channel.ErrEmptyHandle
	}

	obs := &Observation{
		ID:         uuid.New().String(),
		Handle:     handle,
		Status:     result.Status,
		Game:       result.Game,
		ObservedAt: s.now().UTC(),
	}

	var game *string
	if obs.Game != "" {
		game = &obs.Game
	}

	err := s.db.TransactionWithRetry(ctx, s.retry, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO status_observations (id, handle, status, game, observed_at)
			VALUES (?, ?, ?, ?, ?)
		`, obs.ID, obs.Handle, obs.Status.String(), game, obs.ObservedAt.Format(time.RFC3339Nano))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record status for %s: %w", handle, err)
	}
	return obs, nil
}

// History returns the newest observations for handle, newest first.
// A non-positive limit returns everything.
func (s *StatusStore) History(ctx context.Context, handle string, limit int) ([]*Observation, error) {
	query := `
		SELECT id, handle, status, game, observed_at
		FROM status_observations
		WHERE handle = ?
		ORDER BY observed_at DESC, rowid DESC
	`
	args := []any{handle}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var out []*Observation
	for rows.Next() {
		obs, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return out, nil
}

// Latest returns the most recent observation for handle.
func (s *StatusStore) Latest(ctx context.Context, handle string) (*Observation, error) {
	history, err := s.History(ctx, handle, 1)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrNotFound
	}
	return history[0], nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanObservation(row scanner) (*Observation, error) {
	var (
		obs        Observation
		status     string
		game       sql.NullString
		observedAt string
	)
	if err := row.Scan(&obs.ID, &obs.Handle, &status, &game, &observedAt); err != nil {
		return nil, fmt.Errorf("failed to scan observation: %w", err)
	}

	parsed, err := channel.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	obs.Status = parsed
	obs.Game = game.String

	ts, err := time.Parse(time.RFC3339Nano, observedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid observed_at %q: %w", observedAt, err)
	}
	obs.ObservedAt = ts
	return &obs, nil
}
