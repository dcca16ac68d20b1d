package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fastRetry = RetryPolicy{Attempts: 3, Backoff: time.Millisecond}

func TestWithRetryRetriesOnBusy(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), fastRetry, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("database is locked")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, attempts)
}

func TestWithRetryStopsOnOtherErrors(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), fastRetry, func() error {
		attempts++
		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")
	require.Equal(t, 1, attempts)
}

func TestWithRetryGivesUp(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), RetryPolicy{Attempts: 2, Backoff: time.Millisecond}, func() error {
		attempts++
		return errors.New("SQLITE_BUSY")
	})
	require.Error(t, err)
	require.Equal(t, 2, attempts)
}

func TestWithRetryHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := withRetry(ctx, fastRetry, func() error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestTransactionWithRetryRollsBack(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := db.TransactionWithRetry(ctx, fastRetry, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO status_observations (id, handle, status, observed_at) VALUES ('x', 'foo', 'Online', '2026-01-01T00:00:00Z')`); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.EqualError(t, err, "abort")

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM status_observations`).Scan(&count))
	require.Zero(t, count)
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
