package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// RetryPolicy bounds how long a write waits out SQLITE_BUSY.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

// DefaultRetry is used when a zero policy is given.
var DefaultRetry = RetryPolicy{Attempts: 3, Backoff: 50 * time.Millisecond}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.Attempts <= 0 {
		p.Attempts = DefaultRetry.Attempts
	}
	if p.Backoff <= 0 {
		p.Backoff = DefaultRetry.Backoff
	}
	return p
}

// TransactionWithRetry runs fn in a transaction, retrying with doubling
// backoff while the database reports itself locked. Checker goroutines and
// the CLI may write at the same time.
func (db *DB) TransactionWithRetry(ctx context.Context, policy RetryPolicy, fn func(*sql.Tx) error) error {
	return withRetry(ctx, policy, func() error {
		return db.Transaction(ctx, fn)
	})
}

func withRetry(ctx context.Context, policy RetryPolicy, fn func() error) error {
	policy = policy.normalized()
	backoff := policy.Backoff

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil || !isBusyError(err) || attempt >= policy.Attempts {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

func isBusyError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"database is locked", "database is busy", "sqlite_busy"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
