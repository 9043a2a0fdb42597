package service

import (
	"context"
	"fmt"
	"time"

	"health-record-vault/internal/core/ports"
	"health-record-vault/internal/metrics"
	"health-record-vault/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("health-record-vault/service")

// runInTx executes fn inside a fresh transaction, retrying the whole unit
// of work on transient conflicts. fn must be safe to re-run.
func runInTx(ctx context.Context, transactor ports.DBTransactor, retry RetryPolicy, operation string, fn func(tx pgx.Tx) error) error {
	return retry.Do(ctx, operation, func() error {
		dbTx, err := transactor.Begin(ctx)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		if err := fn(dbTx); err != nil {
			return err
		}

		if err := dbTx.Commit(ctx); err != nil {
			return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
		}
		return nil
	})
}

// startOperation opens a span for a lifecycle operation. The returned
// func ends it, records err on the span and observes latency.
func startOperation(ctx context.Context, m *metrics.Metrics, operation string, attrs ...attribute.KeyValue) (context.Context, func(err error)) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, operation, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, apperror.CodeOf(err))
		}
		span.End()
		m.ObserveOperationLatency(operation, time.Since(start).Seconds())
	}
}
