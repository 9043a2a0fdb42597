package service

import (
	"context"
	"errors"
	"time"

	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/metrics"
	"health-record-vault/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATEs that signal a retryable conflict.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// RetryPolicy is the one retry policy applied to units of work that hit a
// transient store conflict. Any other failure surfaces immediately.
type RetryPolicy struct {
	MaxRetries uint64
	Backoff    time.Duration
	Metrics    *metrics.Metrics
}

// DefaultRetryPolicy retries 3 times with a fixed 100ms pause.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, Backoff: 100 * time.Millisecond}
}

// IsTransient reports whether err is a write conflict worth retrying.
func IsTransient(err error) bool {
	if errors.Is(err, domain.ErrWriteConflict) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	return false
}

// Do runs fn, retrying transient failures. Exhausted retries surface as
// SYS_002; non-transient errors are returned unchanged.
func (p RetryPolicy) Do(ctx context.Context, operation string, fn func() error) error {
	attempt := 0
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Backoff), p.MaxRetries),
		ctx,
	)

	err := backoff.Retry(func() error {
		if attempt > 0 {
			p.Metrics.IncrementTransientRetries(operation)
		}
		attempt++

		err := fn()
		if err == nil || IsTransient(err) {
			return err
		}
		return backoff.Permanent(err)
	}, b)

	if err != nil && IsTransient(err) {
		return apperror.ErrServiceUnavailable(err)
	}
	return err
}
