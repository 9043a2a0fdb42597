package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"health-record-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const auditColumns = `id, record_id, action, performed_by, occurred_at, ip_address, user_agent, purpose,
	consent_validated, repeated_attempt, unusual_location, risk_score, risk_level, risk_factors,
	details, retain_until`

// AuditRepo implements ports.AuditRepository. The table rejects UPDATE and
// DELETE through a trigger, so the repository only inserts and reads.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Append inserts an entry within a database transaction.
func (r *AuditRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.AuditLogEntry) error {
	factors, err := json.Marshal(nonNilFactors(e.Risk.Factors))
	if err != nil {
		return fmt.Errorf("marshal risk factors: %w", err)
	}
	var details []byte
	if e.Details != nil {
		if details, err = json.Marshal(e.Details); err != nil {
			return fmt.Errorf("marshal audit details: %w", err)
		}
	}

	query := `INSERT INTO audit_log (` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err = tx.Exec(ctx, query,
		e.ID, e.RecordID, string(e.Action), e.PerformedBy, e.Timestamp, e.IPAddress, e.UserAgent, e.Purpose,
		e.ConsentValidated, e.Flags.RepeatedAttempt, e.Flags.UnusualLocation,
		e.Risk.Score, string(e.Risk.Level), factors, details, e.RetainUntil,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", translateError(err))
	}
	return nil
}

// ListByRecord returns up to limit entries for a record, newest first.
// Entries with the same timestamp are ordered by insertion sequence.
func (r *AuditRepo) ListByRecord(ctx context.Context, recordID uuid.UUID, limit int) ([]domain.AuditLogEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_log WHERE record_id = $1 ORDER BY occurred_at DESC, seq DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, recordID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.AuditLogEntry
	for rows.Next() {
		var (
			e               domain.AuditLogEntry
			action, level   string
			factors, detail []byte
		)
		err := rows.Scan(
			&e.ID, &e.RecordID, &action, &e.PerformedBy, &e.Timestamp, &e.IPAddress, &e.UserAgent, &e.Purpose,
			&e.ConsentValidated, &e.Flags.RepeatedAttempt, &e.Flags.UnusualLocation,
			&e.Risk.Score, &level, &factors, &detail, &e.RetainUntil,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		e.Action = domain.AuditAction(action)
		e.Risk.Level = domain.RiskLevel(level)
		if len(factors) > 0 {
			if err := json.Unmarshal(factors, &e.Risk.Factors); err != nil {
				return nil, fmt.Errorf("decode risk factors: %w", err)
			}
		}
		if len(detail) > 0 {
			if err := json.Unmarshal(detail, &e.Details); err != nil {
				return nil, fmt.Errorf("decode audit details: %w", err)
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit rows: %w", err)
	}
	return entries, nil
}

func nonNilFactors(f []string) []string {
	if f == nil {
		return []string{}
	}
	return f
}
