// Package memory is an in-process store for local runs and end-to-end tests.
// Transactions are serialized and buffer their writes until Commit, so a
// rolled back unit of work leaves no trace.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"health-record-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var errSQLUnsupported = errors.New("memory: SQL is not supported")

// Store holds committed state. One transaction runs at a time.
type Store struct {
	sem chan struct{}

	mu      sync.RWMutex
	records map[uuid.UUID]*domain.HealthRecord
	audit   []domain.AuditLogEntry
	stats   map[string]*domain.UserStatistics
}

// New creates an empty store.
func New() *Store {
	return &Store{
		sem:     make(chan struct{}, 1),
		records: make(map[uuid.UUID]*domain.HealthRecord),
		stats:   make(map[string]*domain.UserStatistics),
	}
}

// Begin implements ports.DBTransactor. It blocks until the previous
// transaction finishes or ctx is done.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &Tx{
		store:   s,
		records: make(map[uuid.UUID]*domain.HealthRecord),
		stats:   make(map[string]*domain.UserStatistics),
	}, nil
}

// Ping implements ports.HealthChecker.
func (s *Store) Ping(context.Context) error { return nil }

// Name returns the dependency name.
func (s *Store) Name() string { return "memory" }

// Tx buffers a unit of work. Reads inside the transaction see its own writes.
type Tx struct {
	store   *Store
	done    bool
	records map[uuid.UUID]*domain.HealthRecord
	audit   []domain.AuditLogEntry
	stats   map[string]*domain.UserStatistics
}

func asTx(tx pgx.Tx) (*Tx, error) {
	t, ok := tx.(*Tx)
	if !ok {
		return nil, fmt.Errorf("memory: foreign transaction %T", tx)
	}
	if t.done {
		return nil, pgx.ErrTxClosed
	}
	return t, nil
}

// record returns the transaction's working copy of a record, loading it
// from committed state on first touch. Returns nil if the record does not exist.
func (t *Tx) record(id uuid.UUID) *domain.HealthRecord {
	if r, ok := t.records[id]; ok {
		return r
	}
	t.store.mu.RLock()
	committed, ok := t.store.records[id]
	t.store.mu.RUnlock()
	if !ok {
		return nil
	}
	r := cloneRecord(committed)
	t.records[id] = r
	return r
}

func (t *Tx) userStats(userID string) *domain.UserStatistics {
	if s, ok := t.stats[userID]; ok {
		return s
	}
	s := &domain.UserStatistics{UserID: userID}
	t.store.mu.RLock()
	if committed, ok := t.store.stats[userID]; ok {
		*s = *committed
	}
	t.store.mu.RUnlock()
	t.stats[userID] = s
	return s
}

// Commit publishes the buffered writes and releases the store.
func (t *Tx) Commit(context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.store.mu.Lock()
	for id, r := range t.records {
		t.store.records[id] = r
	}
	t.store.audit = append(t.store.audit, t.audit...)
	for id, s := range t.stats {
		t.store.stats[id] = s
	}
	t.store.mu.Unlock()
	t.finish()
	return nil
}

// Rollback discards the buffered writes. Rolling back a finished
// transaction returns pgx.ErrTxClosed.
func (t *Tx) Rollback(context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.finish()
	return nil
}

func (t *Tx) finish() {
	t.done = true
	t.records, t.audit, t.stats = nil, nil, nil
	<-t.store.sem
}

func (t *Tx) Begin(context.Context) (pgx.Tx, error) {
	return nil, errors.New("memory: nested transactions are not supported")
}

func (t *Tx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, errSQLUnsupported
}

func (t *Tx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }

func (t *Tx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *Tx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, errSQLUnsupported
}

func (t *Tx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errSQLUnsupported
}

func (t *Tx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errSQLUnsupported
}

func (t *Tx) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func (t *Tx) Conn() *pgx.Conn { return nil }

func cloneRecord(r *domain.HealthRecord) *domain.HealthRecord {
	c := *r
	c.Grants = cloneGrants(r.Grants)
	c.Transactions = append([]domain.Transaction(nil), r.Transactions...)
	if r.Statistics.LastAccessDate != nil {
		at := *r.Statistics.LastAccessDate
		c.Statistics.LastAccessDate = &at
	}
	return &c
}

func cloneGrants(grants []domain.AccessGrant) []domain.AccessGrant {
	if grants == nil {
		return nil
	}
	out := make([]domain.AccessGrant, len(grants))
	for i, g := range grants {
		if g.ExpiresAt != nil {
			exp := *g.ExpiresAt
			g.ExpiresAt = &exp
		}
		if g.Consent.ConsentedAt != nil {
			at := *g.Consent.ConsentedAt
			g.Consent.ConsentedAt = &at
		}
		out[i] = g
	}
	return out
}
