package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/core/ports"
	"health-record-vault/internal/metrics"
	"health-record-vault/pkg/apperror"

	"github.com/google/uuid"
	"github.com/hengadev/errsx"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultAuditPageSize = 100
	maxAuditPageSize     = 500

	defaultAttemptWindow    = 15 * time.Minute
	defaultAttemptThreshold = 3
)

// AttemptPolicy controls when denied reads mark later entries as repeated attempts.
type AttemptPolicy struct {
	Window    time.Duration
	Threshold int64
}

// RecordServiceDeps groups the collaborators of the record lifecycle.
// Blobs and Attempts are optional.
type RecordServiceDeps struct {
	Records    ports.RecordRepository
	Stats      ports.UserStatsRepository
	Audit      ports.AuditService
	Access     ports.AccessControlService
	Envelope   ports.EnvelopeService
	Integrity  ports.IntegrityService
	PHI        ports.PHIDetector
	Blobs      ports.BlobStore
	Attempts   ports.AttemptCounter
	Transactor ports.DBTransactor
	Retry      RetryPolicy
	Attempt    AttemptPolicy
	Metrics    *metrics.Metrics
}

// RecordServiceImpl implements ports.RecordService.
type RecordServiceImpl struct {
	records    ports.RecordRepository
	stats      ports.UserStatsRepository
	audit      ports.AuditService
	access     ports.AccessControlService
	envelope   ports.EnvelopeService
	integrity  ports.IntegrityService
	phi        ports.PHIDetector
	blobs      ports.BlobStore
	attempts   ports.AttemptCounter
	transactor ports.DBTransactor
	retry      RetryPolicy
	attempt    AttemptPolicy
	metrics    *metrics.Metrics
	now        func() time.Time
	log        zerolog.Logger
}

// NewRecordService creates a new RecordServiceImpl.
func NewRecordService(deps RecordServiceDeps, log zerolog.Logger) *RecordServiceImpl {
	if deps.Attempt.Window <= 0 {
		deps.Attempt.Window = defaultAttemptWindow
	}
	if deps.Attempt.Threshold <= 0 {
		deps.Attempt.Threshold = defaultAttemptThreshold
	}
	return &RecordServiceImpl{
		records:    deps.Records,
		stats:      deps.Stats,
		audit:      deps.Audit,
		access:     deps.Access,
		envelope:   deps.Envelope,
		integrity:  deps.Integrity,
		phi:        deps.PHI,
		blobs:      deps.Blobs,
		attempts:   deps.Attempts,
		transactor: deps.Transactor,
		retry:      deps.Retry,
		attempt:    deps.Attempt,
		metrics:    deps.Metrics,
		now:        time.Now,
		log:        log,
	}
}

// Upload encrypts the protected section, seeds the owner grant and stores the
// record together with its CREATE entry and the owner's upload counter.
func (s *RecordServiceImpl) Upload(ctx context.Context, owner domain.Caller, req ports.UploadRequest, meta domain.RequestMeta) (record *domain.HealthRecord, err error) {
	ctx, end := startOperation(ctx, s.metrics, "upload_record", attribute.String("category", string(req.Category)))
	defer func() { end(err) }()

	if err := s.validateUpload(owner, req); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	recordID := uuid.New()

	content := domain.RecordContent{Fields: req.Fields, Attachment: req.Attachment}
	canonical, err := content.Canonical()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("canonicalize content: %w", err))
	}
	checksums := s.integrity.Checksum(canonical)

	stored := content
	var contentID string
	if len(req.Attachment) > 0 && s.blobs != nil {
		contentID, err = s.storeAttachment(ctx, req.Attachment)
		if err != nil {
			if isCryptoFailure(err) {
				s.recordSystemError(ctx, recordID, owner.ID, "upload_attachment", err, meta)
			}
			return nil, err
		}
		stored.Attachment = nil
	}

	plaintext, err := json.Marshal(stored)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal content: %w", err))
	}
	env, err := s.envelope.Encrypt(plaintext)
	if err != nil {
		err = asCryptoError(err)
		s.recordSystemError(ctx, recordID, owner.ID, "upload", err, meta)
		return nil, err
	}

	retention := req.RetentionPeriod
	if retention == 0 {
		retention = domain.DefaultRetentionPeriod
	}

	record = &domain.HealthRecord{
		ID:          recordID,
		OwnerID:     owner.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Protected:   env,
		Metadata: domain.RecordMetadata{
			FileType:        req.FileType,
			Size:            int64(len(canonical)),
			Checksums:       checksums,
			UploadDate:      now,
			RetentionPeriod: retention,
			ContentID:       contentID,
		},
		Status: domain.RecordStatus{IsVerified: true, IsAvailable: req.Available},
		Grants: []domain.AccessGrant{{
			ID:        uuid.New(),
			GranteeID: owner.ID,
			Level:     domain.AccessLevelAdmin,
			GrantedBy: owner.ID,
			GrantedAt: now,
			Reason:    ReasonOwner,
			Consent:   domain.ConsentMeta{Validated: true, Method: "owner", ConsentedAt: &now},
		}},
		Transactions: []domain.Transaction{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = runInTx(ctx, s.transactor, s.retry, "upload_record", func(tx pgx.Tx) error {
		if err := s.records.Create(ctx, tx, record); err != nil {
			return apperror.InternalError(fmt.Errorf("create record: %w", err))
		}
		if err := s.audit.Append(ctx, tx, newAuditEntry(record.ID, domain.AuditActionCreate, owner.ID, meta, map[string]any{
			"category":   string(record.Category),
			"file_type":  record.Metadata.FileType,
			"size":       record.Metadata.Size,
			"attachment": contentID != "",
		})); err != nil {
			return err
		}
		if err := s.stats.IncrementUploads(ctx, tx, owner.ID, now); err != nil {
			return apperror.InternalError(fmt.Errorf("increment uploads: %w", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("record_id", record.ID.String()).
		Str("owner_id", owner.ID).
		Str("category", string(record.Category)).
		Msg("Record uploaded successfully")
	return record, nil
}

func (s *RecordServiceImpl) validateUpload(owner domain.Caller, req ports.UploadRequest) error {
	var errs errsx.Map
	if owner.ID == "" {
		errs.Set("owner", "owner identity is required")
	}
	if strings.TrimSpace(req.Title) == "" {
		errs.Set("title", "title is required")
	}
	if !req.Category.IsValid() {
		errs.Set("category", fmt.Sprintf("unknown category %q", req.Category))
	}
	if req.Price < 0 {
		errs.Set("price", "price must be non-negative")
	}
	if len(req.Fields) == 0 && len(req.Attachment) == 0 {
		errs.Set("content", "content requires protected fields or an attachment")
	}
	switch {
	case req.RetentionPeriod < 0:
		errs.Set("retention_period", "retention_period must be non-negative")
	case req.RetentionPeriod > 0 && req.RetentionPeriod < time.Second:
		errs.Set("retention_period", "retention_period must be at least one second")
	}
	if !errs.IsEmpty() {
		return apperror.Validation(errs.AsError().Error())
	}

	if s.phi != nil {
		if tags := s.phi.Detect(map[string]string{"title": req.Title, "description": req.Description}); len(tags) > 0 {
			return apperror.Validation("protected health information outside the protected section: " + strings.Join(tags, ", "))
		}
	}
	return nil
}

func (s *RecordServiceImpl) storeAttachment(ctx context.Context, attachment []byte) (string, error) {
	env, err := s.envelope.Encrypt(attachment)
	if err != nil {
		return "", asCryptoError(err)
	}
	blob, err := json.Marshal(env)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("marshal attachment envelope: %w", err))
	}
	contentID, err := s.blobs.Store(ctx, blob)
	if err != nil {
		return "", apperror.ErrServiceUnavailable(fmt.Errorf("store attachment: %w", err))
	}
	return contentID, nil
}

// Read decrypts a record for a requester holding read access, verifies its
// checksums and records the view. Denied requests feed the attempt counter.
func (s *RecordServiceImpl) Read(ctx context.Context, requester domain.Caller, recordID uuid.UUID, meta domain.RequestMeta) (view *domain.DecryptedView, err error) {
	ctx, end := startOperation(ctx, s.metrics, "read_record", attribute.String("record_id", recordID.String()))
	defer func() { end(err) }()

	key := attemptKey(recordID, requester.ID)
	var cryptoErr error

	err = runInTx(ctx, s.transactor, s.retry, "read_record", func(tx pgx.Tx) error {
		cryptoErr = nil

		record, err := s.records.GetByIDForUpdate(ctx, tx, recordID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock record: %w", err))
		}
		if record == nil {
			return apperror.ErrNotFound("record")
		}

		now := s.now().UTC()
		decision := s.access.Evaluate(record, requester.ID, domain.AccessLevelRead, now)
		if !decision.Granted {
			return apperror.ErrAccessDenied(decision.Reason)
		}
		if record.IsExpired(now) {
			return apperror.ErrDataExpired()
		}

		content, err := s.openContent(ctx, record)
		if err != nil {
			if isCryptoFailure(err) {
				cryptoErr = err
			}
			return err
		}

		entry := newAuditEntry(record.ID, domain.AuditActionRead, requester.ID, meta, map[string]any{
			"access_level": string(decision.Level),
			"reason":       decision.Reason,
		})
		entry.Flags.RepeatedAttempt = s.repeatedAttempts(ctx, key)
		if err := s.audit.Append(ctx, tx, entry); err != nil {
			return err
		}
		if err := s.records.IncrementViews(ctx, tx, record.ID, now); err != nil {
			return fmt.Errorf("increment views: %w", err)
		}

		view = &domain.DecryptedView{
			RecordID:     record.ID,
			OwnerID:      record.OwnerID,
			Title:        record.Title,
			Category:     record.Category,
			Fields:       content.Fields,
			Attachment:   content.Attachment,
			Metadata:     record.Metadata,
			AccessLevel:  decision.Level,
			Restrictions: decision.Restrictions,
		}
		if decision.Restrictions.NoDownload {
			view.Attachment = nil
		}
		return nil
	})
	if err != nil {
		switch {
		case apperror.CodeOf(err) == "ACC_001":
			s.countDenied(ctx, key)
		case cryptoErr != nil:
			s.recordSystemError(ctx, recordID, requester.ID, "read", cryptoErr, meta)
		case apperror.CodeOf(err) == "":
			err = apperror.InternalError(err)
		}
		return nil, err
	}

	s.log.Info().
		Str("record_id", recordID.String()).
		Str("requester_id", requester.ID).
		Str("access_level", string(view.AccessLevel)).
		Msg("Record read successfully")
	return view, nil
}

// openContent decrypts the protected section plus any external attachment
// and checks the result against the stored checksums.
func (s *RecordServiceImpl) openContent(ctx context.Context, record *domain.HealthRecord) (domain.RecordContent, error) {
	var content domain.RecordContent

	if record.Protected.IsZero() {
		return content, apperror.ErrIntegrity(errors.New("record has no protected content"))
	}
	plaintext, err := s.envelope.Decrypt(record.Protected)
	if err != nil {
		return content, asCryptoError(err)
	}
	if err := json.Unmarshal(plaintext, &content); err != nil {
		return content, apperror.ErrIntegrity(fmt.Errorf("decode protected content: %w", err))
	}

	if record.Metadata.ContentID != "" {
		if s.blobs == nil {
			return content, apperror.ErrServiceUnavailable(errors.New("attachment store not configured"))
		}
		blob, err := s.blobs.Retrieve(ctx, record.Metadata.ContentID)
		if err != nil {
			return content, apperror.ErrServiceUnavailable(fmt.Errorf("retrieve attachment: %w", err))
		}
		var env domain.Envelope
		if err := json.Unmarshal(blob, &env); err != nil {
			return content, apperror.ErrIntegrity(fmt.Errorf("decode attachment envelope: %w", err))
		}
		attachment, err := s.envelope.Decrypt(env)
		if err != nil {
			return content, asCryptoError(err)
		}
		content.Attachment = attachment
	}

	canonical, err := content.Canonical()
	if err != nil {
		return content, apperror.InternalError(fmt.Errorf("canonicalize content: %w", err))
	}
	if err := s.integrity.Verify(canonical, record.Metadata.Checksums); err != nil {
		return content, asCryptoError(err)
	}
	return content, nil
}

// VerifyIntegrity recomputes the record's checksums. Decryption and checksum
// failures are reported in the result, not returned as errors.
func (s *RecordServiceImpl) VerifyIntegrity(ctx context.Context, caller domain.Caller, recordID uuid.UUID, meta domain.RequestMeta) (result *domain.IntegrityResult, err error) {
	ctx, end := startOperation(ctx, s.metrics, "verify_integrity", attribute.String("record_id", recordID.String()))
	defer func() { end(err) }()

	err = runInTx(ctx, s.transactor, s.retry, "verify_integrity", func(tx pgx.Tx) error {
		record, err := s.records.GetByIDForUpdate(ctx, tx, recordID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock record: %w", err))
		}
		if record == nil {
			return apperror.ErrNotFound("record")
		}

		now := s.now().UTC()
		if !caller.IsAdmin() {
			if d := s.access.Evaluate(record, caller.ID, domain.AccessLevelRead, now); !d.Granted {
				return apperror.ErrAccessDenied(d.Reason)
			}
		}

		result = &domain.IntegrityResult{RecordID: record.ID, IsValid: true, CheckedAt: now}
		if _, err := s.openContent(ctx, record); err != nil {
			if !isCryptoFailure(err) {
				return err
			}
			result.IsValid = false
			result.MismatchAlgorithm = mismatchAlgorithm(err, record.Protected.Version)
			result.Reason = cryptoReason(err)
		}

		details := map[string]any{"is_valid": result.IsValid}
		if !result.IsValid {
			details["mismatch_algorithm"] = result.MismatchAlgorithm
		}
		if err := s.audit.Append(ctx, tx, newAuditEntry(record.ID, domain.AuditActionVerifyIntegrity, caller.ID, meta, details)); err != nil {
			return err
		}
		if err := s.records.SetVerified(ctx, tx, record.ID, result.IsValid); err != nil {
			return fmt.Errorf("set verified: %w", err)
		}
		return nil
	})
	if err != nil {
		if apperror.CodeOf(err) == "" {
			err = apperror.InternalError(err)
		}
		return nil, err
	}

	evt := s.log.Info()
	if !result.IsValid {
		evt = s.log.Warn().Str("mismatch_algorithm", result.MismatchAlgorithm)
	}
	evt.Str("record_id", recordID.String()).Bool("is_valid", result.IsValid).Msg("Integrity verified")
	return result, nil
}

// ViewAccessLog returns the record's audit trail. Callers with admin access
// see full entries; read-only callers get the sanitized export.
func (s *RecordServiceImpl) ViewAccessLog(ctx context.Context, caller domain.Caller, recordID uuid.UUID, limit int, meta domain.RequestMeta) (entries []domain.AuditLogEntry, err error) {
	ctx, end := startOperation(ctx, s.metrics, "view_access_log", attribute.String("record_id", recordID.String()))
	defer func() { end(err) }()

	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}

	err = runInTx(ctx, s.transactor, s.retry, "view_access_log", func(tx pgx.Tx) error {
		record, err := s.records.GetByIDForUpdate(ctx, tx, recordID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock record: %w", err))
		}
		if record == nil {
			return apperror.ErrNotFound("record")
		}

		now := s.now().UTC()
		full := caller.IsAdmin() || s.access.Evaluate(record, caller.ID, domain.AccessLevelAdmin, now).Granted
		if !full {
			if d := s.access.Evaluate(record, caller.ID, domain.AccessLevelRead, now); !d.Granted {
				return apperror.ErrAccessDenied(d.Reason)
			}
		}

		list, err := s.audit.ListForRecord(ctx, record.ID, limit)
		if err != nil {
			return err
		}
		if !full {
			list = s.audit.SanitizeForExport(list)
		}

		if err := s.audit.Append(ctx, tx, newAuditEntry(record.ID, domain.AuditActionViewAuditLog, caller.ID, meta, map[string]any{
			"entries":   len(list),
			"sanitized": !full,
		})); err != nil {
			return err
		}
		entries = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// recordSystemError writes a SYSTEM_ERROR entry in its own transaction after
// the failing operation has rolled back.
func (s *RecordServiceImpl) recordSystemError(ctx context.Context, recordID uuid.UUID, actor, operation string, cause error, meta domain.RequestMeta) {
	entry := newAuditEntry(recordID, domain.AuditActionSystemError, actor, meta, map[string]any{
		"operation":  operation,
		"error_code": apperror.CodeOf(cause),
	})
	if err := s.audit.AppendStandalone(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("record_id", recordID.String()).Msg("failed to audit system error")
	}
	s.log.Error().Err(cause).Str("record_id", recordID.String()).Str("operation", operation).Msg("crypto failure")
}

func (s *RecordServiceImpl) countDenied(ctx context.Context, key string) {
	if s.attempts == nil {
		return
	}
	if _, err := s.attempts.Increment(ctx, key, s.attempt.Window); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to count denied attempt")
	}
}

func (s *RecordServiceImpl) repeatedAttempts(ctx context.Context, key string) bool {
	if s.attempts == nil {
		return false
	}
	n, err := s.attempts.Count(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to read attempt counter")
		return false
	}
	return n >= s.attempt.Threshold
}

func attemptKey(recordID uuid.UUID, requesterID string) string {
	return recordID.String() + ":" + requesterID
}

// asCryptoError keeps CRY_* errors as they are and classifies anything else
// as an encryption failure.
func asCryptoError(err error) error {
	if isCryptoFailure(err) {
		return err
	}
	return apperror.ErrEncryption(err)
}

func isCryptoFailure(err error) bool {
	return strings.HasPrefix(apperror.CodeOf(err), "CRY_")
}

func mismatchAlgorithm(err error, version domain.AlgorithmVersion) string {
	var mm *ChecksumMismatchError
	if errors.As(err, &mm) {
		return mm.Algorithm
	}
	return CipherName(version)
}

func cryptoReason(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
