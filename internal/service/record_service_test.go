package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/core/ports"
	"health-record-vault/internal/core/ports/mocks"
	"health-record-vault/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordTestDeps struct {
	svc        *RecordServiceImpl
	records    *mocks.MockRecordRepository
	stats      *mocks.MockUserStatsRepository
	audit      *mocks.MockAuditService
	blobs      *mocks.MockBlobStore
	attempts   *mocks.MockAttemptCounter
	transactor *mocks.MockDBTransactor
	envelope   *EnvelopeServiceImpl
	integrity  *ChecksumService
}

func setupRecordService(t *testing.T, withBlobs bool) *recordTestDeps {
	ctrl := gomock.NewController(t)
	env, err := NewEnvelopeService(testKey(t), domain.AlgorithmAESGCM)
	require.NoError(t, err)

	d := &recordTestDeps{
		records:    mocks.NewMockRecordRepository(ctrl),
		stats:      mocks.NewMockUserStatsRepository(ctrl),
		audit:      mocks.NewMockAuditService(ctrl),
		blobs:      mocks.NewMockBlobStore(ctrl),
		attempts:   mocks.NewMockAttemptCounter(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		envelope:   env,
		integrity:  NewChecksumService(),
	}
	access := NewAccessControlService(d.records, d.audit, d.transactor, fastRetry(), nil, newTestLogger())

	deps := RecordServiceDeps{
		Records:    d.records,
		Stats:      d.stats,
		Audit:      d.audit,
		Access:     access,
		Envelope:   d.envelope,
		Integrity:  d.integrity,
		PHI:        NewRegexPHIDetector(),
		Attempts:   d.attempts,
		Transactor: d.transactor,
		Retry:      fastRetry(),
	}
	if withBlobs {
		deps.Blobs = d.blobs
	}
	d.svc = NewRecordService(deps, newTestLogger())
	d.svc.now = func() time.Time { return testNow }
	return d
}

func uploadRequest() ports.UploadRequest {
	return ports.UploadRequest{
		Title:     "Lipid panel",
		Category:  domain.CategoryLabResult,
		Price:     5,
		FileType:  "application/json",
		Fields:    map[string]string{"ldl": "131", "hdl": "48"},
		Available: true,
	}
}

// sealedRecord builds a stored record the same way Upload does.
func sealedRecord(t *testing.T, d *recordTestDeps, owner string, content domain.RecordContent, grants ...domain.AccessGrant) *domain.HealthRecord {
	t.Helper()
	canonical, err := content.Canonical()
	require.NoError(t, err)
	plaintext, err := json.Marshal(content)
	require.NoError(t, err)
	env, err := d.envelope.Encrypt(plaintext)
	require.NoError(t, err)

	r := testRecord(owner, grants...)
	r.Protected = env
	r.Metadata.Checksums = d.integrity.Checksum(canonical)
	r.Metadata.Size = int64(len(canonical))
	return r
}

func expectTx(d *recordTestDeps) *mockTx {
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	return tx
}

func TestRecordService_Upload_Success(t *testing.T) {
	d := setupRecordService(t, false)
	ctx := context.Background()
	tx := expectTx(d)
	owner := domain.Caller{ID: "pat-1", Role: domain.RolePatient}

	var created *domain.HealthRecord
	d.records.EXPECT().Create(gomock.Any(), tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, r *domain.HealthRecord) error {
			created = r
			return nil
		})
	d.audit.EXPECT().Append(gomock.Any(), tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, e *domain.AuditLogEntry) error {
			assert.Equal(t, domain.AuditActionCreate, e.Action)
			assert.Equal(t, "pat-1", e.PerformedBy)
			return nil
		})
	d.stats.EXPECT().IncrementUploads(gomock.Any(), tx, "pat-1", testNow).Return(nil)

	record, err := d.svc.Upload(ctx, owner, uploadRequest(), domain.RequestMeta{IPAddress: "10.0.0.1"})
	require.NoError(t, err)
	require.Same(t, created, record)

	require.Len(t, record.Grants, 1)
	assert.Equal(t, "pat-1", record.Grants[0].GranteeID)
	assert.Equal(t, domain.AccessLevelAdmin, record.Grants[0].Level)
	assert.Nil(t, record.Grants[0].ExpiresAt)
	assert.Equal(t, domain.DefaultRetentionPeriod, record.Metadata.RetentionPeriod)
	assert.False(t, record.Protected.IsZero())
	assert.NotContains(t, string(record.Protected.Ciphertext), "131")

	plaintext, err := d.envelope.Decrypt(record.Protected)
	require.NoError(t, err)
	var content domain.RecordContent
	require.NoError(t, json.Unmarshal(plaintext, &content))
	assert.Equal(t, uploadRequest().Fields, content.Fields)

	canonical, _ := content.Canonical()
	assert.NoError(t, d.integrity.Verify(canonical, record.Metadata.Checksums))
}

func TestRecordService_Upload_Validation(t *testing.T) {
	owner := domain.Caller{ID: "pat-1", Role: domain.RolePatient}

	tests := []struct {
		name   string
		mutate func(r *ports.UploadRequest)
		owner  domain.Caller
		msg    string
	}{
		{"missing title", func(r *ports.UploadRequest) { r.Title = " " }, owner, "title"},
		{"bad category", func(r *ports.UploadRequest) { r.Category = "xray" }, owner, "category"},
		{"negative price", func(r *ports.UploadRequest) { r.Price = -1 }, owner, "price"},
		{"no content", func(r *ports.UploadRequest) { r.Fields = nil }, owner, "content"},
		{"negative retention", func(r *ports.UploadRequest) { r.RetentionPeriod = -time.Hour }, owner, "retention_period"},
		{"sub-second retention", func(r *ports.UploadRequest) { r.RetentionPeriod = 500 * time.Millisecond }, owner, "retention_period"},
		{"no owner", func(r *ports.UploadRequest) {}, domain.Caller{}, "owner"},
		{"phi in title", func(r *ports.UploadRequest) { r.Title = "Labs for SSN 123-45-6789" }, owner, "title:ssn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRecordService(t, false)
			req := uploadRequest()
			tt.mutate(&req)

			_, err := d.svc.Upload(context.Background(), tt.owner, req, domain.RequestMeta{})
			assertAppError(t, err, "VAL_001")
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestRecordService_Upload_AttachmentGoesToBlobStore(t *testing.T) {
	d := setupRecordService(t, true)
	tx := expectTx(d)

	req := uploadRequest()
	req.Attachment = []byte("%PDF-1.7 scanned report")

	d.blobs.EXPECT().Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, blob []byte) (string, error) {
			var env domain.Envelope
			require.NoError(t, json.Unmarshal(blob, &env))
			pt, err := d.envelope.Decrypt(env)
			require.NoError(t, err)
			assert.Equal(t, req.Attachment, pt)
			return "sha256:feed", nil
		})
	d.records.EXPECT().Create(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.audit.EXPECT().Append(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.stats.EXPECT().IncrementUploads(gomock.Any(), tx, "pat-1", testNow).Return(nil)

	record, err := d.svc.Upload(context.Background(), domain.Caller{ID: "pat-1"}, req, domain.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, "sha256:feed", record.Metadata.ContentID)

	plaintext, err := d.envelope.Decrypt(record.Protected)
	require.NoError(t, err)
	var content domain.RecordContent
	require.NoError(t, json.Unmarshal(plaintext, &content))
	assert.Empty(t, content.Attachment)
}

func TestRecordService_Upload_EncryptionFailureIsAudited(t *testing.T) {
	d := setupRecordService(t, false)
	ctrl := gomock.NewController(t)
	badEnvelope := mocks.NewMockEnvelopeService(ctrl)
	d.svc.envelope = badEnvelope

	badEnvelope.EXPECT().Encrypt(gomock.Any()).Return(domain.Envelope{}, apperror.ErrEncryption(errors.New("key absent")))
	d.audit.EXPECT().AppendStandalone(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.AuditLogEntry) error {
			assert.Equal(t, domain.AuditActionSystemError, e.Action)
			assert.Equal(t, "CRY_001", e.Details["error_code"])
			return nil
		})

	_, err := d.svc.Upload(context.Background(), domain.Caller{ID: "pat-1"}, uploadRequest(), domain.RequestMeta{})
	assertAppError(t, err, "CRY_001")
}

func TestRecordService_Upload_StoreFailureRollsBack(t *testing.T) {
	d := setupRecordService(t, false)
	tx := expectTx(d)

	d.records.EXPECT().Create(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.audit.EXPECT().Append(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.stats.EXPECT().IncrementUploads(gomock.Any(), tx, gomock.Any(), gomock.Any()).Return(errors.New("constraint violation"))

	_, err := d.svc.Upload(context.Background(), domain.Caller{ID: "pat-1"}, uploadRequest(), domain.RequestMeta{})
	assertAppError(t, err, "SYS_001")
}

func TestRecordService_Read_Success(t *testing.T) {
	d := setupRecordService(t, false)
	tx := expectTx(d)
	content := domain.RecordContent{Fields: map[string]string{"ldl": "131"}}
	record := sealedRecord(t, d, "pat-1", content, domain.AccessGrant{GranteeID: "res-9", Level: domain.AccessLevelRead})

	d.records.EXPECT().GetByIDForUpdate(gomock.Any(), tx, record.ID).Return(record, nil)
	d.attempts.EXPECT().Count(gomock.Any(), attemptKey(record.ID, "res-9")).Return(int64(0), nil)
	d.audit.EXPECT().Append(gomock.Any(), tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, e *domain.AuditLogEntry) error {
			assert.Equal(t, domain.AuditActionRead, e.Action)
			assert.False(t, e.Flags.RepeatedAttempt)
			return nil
		})
	d.records.EXPECT().IncrementViews(gomock.Any(), tx, record.ID, testNow).Return(nil)

	view, err := d.svc.Read(context.Background(), domain.Caller{ID: "res-9", Role: domain.RoleResearcher}, record.ID, domain.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, content.Fields, view.Fields)
	assert.Equal(t, domain.AccessLevelRead, view.AccessLevel)
}

func TestRecordService_Read_DeniedCountsAttempt(t *testing.T) {
	d := setupRecordService(t, false)
	expectTx(d)
	record := sealedRecord(t, d, "pat-1", domain.RecordContent{Fields: map[string]string{"a": "b"}})

	d.records.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), record.ID).Return(record, nil)
	d.attempts.EXPECT().Increment(gomock.Any(), attemptKey(record.ID, "stranger"), defaultAttemptWindow).Return(int64(1), nil)

	_, err := d.svc.Read(context.Background(), domain.Caller{ID: "stranger"}, record.ID, domain.RequestMeta{})
	assertAppError(t, err, "ACC_001")
}

func TestRecordService_Read_RepeatedAttemptsFlagged(t *testing.T) {
	d := setupRecordService(t, false)
	tx := expectTx(d)
	record := sealedRecord(t, d, "pat-1", domain.RecordContent{Fields: map[string]string{"a": "b"}},
		domain.AccessGrant{GranteeID: "res-9", Level: domain.AccessLevelRead})

	d.records.EXPECT().GetByIDForUpdate(gomock.Any(), tx, record.ID).Return(record, nil)
	d.attempts.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(3), nil)
	d.audit.EXPECT().Append(gomock.Any(), tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, e *domain.AuditLogEntry) error {
			assert.True(t, e.Flags.RepeatedAttempt)
			return nil
		})
	d.records.EXPECT().IncrementViews(gomock.Any(), tx, record.ID, testNow).Return(nil)

	_, err := d.svc.Read(context.Background(), domain.Caller{ID: "res-9"}, record.ID, domain.RequestMeta{})
	require.NoError(t, err)
}

func TestRecordService_Read_Expired(t *testing.T) {
	d := setupRecordService(t, false)
	expectTx(d)
	record := sealedRecord(t, d, "pat-1", domain.RecordContent{Fields: map[string]string{"a": "b"}})
	record.Metadata.UploadDate = testNow.Add(-domain.DefaultRetentionPeriod - time.Minute)

	d.records.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), record.ID).Return(record, nil)

	_, err := d.svc.Read(context.Background(), domain.Caller{ID: "pat-1"}, record.ID, domain.RequestMeta{})
	assertAppError(t, err, "REC_003")
}

func TestRecordService_Read_NotFound(t *testing.T) {
	d := setupRecordService(t, false)
	expectTx(d)
	id := uuid.New()
	d.records.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, nil)

	_, err := d.svc.Read(context.Background(), domain.Caller{ID: "pat-1"}, id, domain.RequestMeta{})
	assertAppError(t, err, "REC_001")
}

func TestRecordService_Read_TamperedEnvelopeFailsClosed(t *testing.T) {
	d := setupRecordService(t, false)
	expectTx(d)
	record := sealedRecord(t, d, "pat-1", domain.RecordContent{Fields: map[string]string{"a": "b"}})
	record.Protected.Tag[0] ^= 0x01

	d.records.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), record.ID).Return(record, nil)
	d.audit.EXPECT().AppendStandalone(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.AuditLogEntry) error {
			assert.Equal(t, domain.AuditActionSystemError, e.Action)
			assert.Equal(t, "CRY_002", e.Details["error_code"])
			return nil
		})

	view, err := d.svc.Read(context.Background(), domain.Caller{ID: "pat-1"}, record.ID, domain.RequestMeta{})
	assertAppError(t, err, "CRY_002")
	assert.Nil(t, view)
}

func TestRecordService_Read_EmptyEnvelopeFailsClosed(t *testing.T) {
	d := setupRecordService(t, false)
	expectTx(d)
	record := sealedRecord(t, d, "pat-1", domain.RecordContent{Fields: map[string]string{"a": "b"}})
	record.Protected = domain.Envelope{}

	d.records.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), record.ID).Return(record, nil)
	d.audit.EXPECT().AppendStandalone(gomock.Any(), gomock.Any()).Return(nil)

	view, err := d.svc.Read(context.Background(), domain.Caller{ID: "pat-1"}, record.ID, domain.RequestMeta{})
	assertAppError(t, err, "CRY_002")
	assert.Contains(t, err.Error(), "no protected content")
	assert.Nil(t, view)
}

func TestRecordService_Read_NoDownloadStripsAttachment(t *testing.T) {
	d := setupRecordService(t, false)
	tx := expectTx(d)
	exp := testNow.Add(20 * time.Minute)
	content := domain.RecordContent{Fields: map[string]string{"bp": "120/80"}, Attachment: []byte("scan")}
	record := sealedRecord(t, d, "pat-1", content, domain.AccessGrant{
		GranteeID: "doc", Level: domain.AccessLevelEmergency, ExpiresAt: &exp,
		Restrictions: domain.Restrictions{ReadOnly: true, NoDownload: true},
	})

	d.records.EXPECT().GetByIDForUpdate(gomock.Any(), tx, record.ID).Return(record, nil)
	d.attempts.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	d.audit.EXPECT().Append(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.records.EXPECT().IncrementViews(gomock.Any(), tx, record.ID, testNow).Return(nil)

	view, err := d.svc.Read(context.Background(), domain.Caller{ID: "doc", Role: domain.RoleProvider}, record.ID, domain.RequestMeta{})
	require.NoError(t, err)
	assert.Nil(t, view.Attachment)
	assert.True(t, view.Restrictions.ReadOnly)
	assert.Equal(t, "120/80", view.Fields["bp"])
}

func TestRecordService_Read_AttachmentFromBlobStore(t *testing.T) {
	d := setupRecordService(t, true)
	tx := expectTx(d)
	content := domain.RecordContent{Fields: map[string]string{"a": "b"}, Attachment: []byte("dicom bytes")}

	record := sealedRecord(t, d, "pat-1", domain.RecordContent{Fields: content.Fields})
	canonical, _ := content.Canonical()
	record.Metadata.Checksums = d.integrity.Checksum(canonical)
	record.Metadata.ContentID = "sha256:abc"
	attEnv, err := d.envelope.Encrypt(content.Attachment)
	require.NoError(t, err)
	blob, _ := json.Marshal(attEnv)

	d.records.EXPECT().GetByIDForUpdate(gomock.Any(), tx, record.ID).Return(record, nil)
	d.blobs.EXPECT().Retrieve(gomock.Any(), "sha256:abc").Return(blob, nil)
	d.attempts.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	d.audit.EXPECT().Append(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.records.EXPECT().IncrementViews(gomock.Any(), tx, record.ID, testNow).Return(nil)

	view, err := d.svc.Read(context.Background(), domain.Caller{ID: "pat-1"}, record.ID, domain.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, content.Attachment, view.Attachment)
}

func TestRecordService_VerifyIntegrity(t *testing.T) {
	tests := []struct {
		name      string
		corrupt   func(r *domain.HealthRecord)
		valid     bool
		algorithm string
	}{
		{"unmodified", func(*domain.HealthRecord) {}, true, ""},
		{"sha256 mismatch", func(r *domain.HealthRecord) { r.Metadata.Checksums.SHA256 = "00" }, false, AlgorithmSHA256},
		{"blake2b mismatch", func(r *domain.HealthRecord) { r.Metadata.Checksums.BLAKE2b = "00" }, false, AlgorithmBLAKE2b},
		{"both mismatch reports first", func(r *domain.HealthRecord) {
			r.Metadata.Checksums = domain.Checksums{SHA256: "00", BLAKE2b: "00"}
		}, false, AlgorithmSHA256},
		{"tag tampered", func(r *domain.HealthRecord) { r.Protected.Tag[3] ^= 0x80 }, false, "aes-256-gcm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRecordService(t, false)
			tx := expectTx(d)
			record := sealedRecord(t, d, "pat-1", domain.RecordContent{Fields: map[string]string{"a": "b"}})
			tt.corrupt(record)

			d.records.EXPECT().GetByIDForUpdate(gomock.Any(), tx, record.ID).Return(record, nil)
			d.audit.EXPECT().Append(gomock.Any(), tx, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, e *domain.AuditLogEntry) error {
					assert.Equal(t, domain.AuditActionVerifyIntegrity, e.Action)
					assert.Equal(t, tt.valid, e.Details["is_valid"])
					return nil
				})
			d.records.EXPECT().SetVerified(gomock.Any(), tx, record.ID, tt.valid).Return(nil)

			res, err := d.svc.VerifyIntegrity(context.Background(), domain.Caller{ID: "pat-1"}, record.ID, domain.RequestMeta{})
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.IsValid)
			assert.Equal(t, tt.algorithm, res.MismatchAlgorithm)
		})
	}
}

func TestRecordService_VerifyIntegrity_AccessRules(t *testing.T) {
	d := setupRecordService(t, false)
	expectTx(d)
	record := sealedRecord(t, d, "pat-1", domain.RecordContent{Fields: map[string]string{"a": "b"}})
	d.records.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), record.ID).Return(record, nil)

	_, err := d.svc.VerifyIntegrity(context.Background(), domain.Caller{ID: "stranger"}, record.ID, domain.RequestMeta{})
	assertAppError(t, err, "ACC_001")

	tx := expectTx(d)
	d.records.EXPECT().GetByIDForUpdate(gomock.Any(), tx, record.ID).Return(record, nil)
	d.audit.EXPECT().Append(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.records.EXPECT().SetVerified(gomock.Any(), tx, record.ID, true).Return(nil)

	res, err := d.svc.VerifyIntegrity(context.Background(), domain.Caller{ID: "ops", Role: domain.RoleAdmin}, record.ID, domain.RequestMeta{})
	require.NoError(t, err)
	assert.True(t, res.IsValid)
}

func TestRecordService_ViewAccessLog(t *testing.T) {
	entries := []domain.AuditLogEntry{{Action: domain.AuditActionCreate, IPAddress: "10.1.2.3"}}
	sanitized := []domain.AuditLogEntry{{Action: domain.AuditActionCreate, IPAddress: "10.1.2.0"}}

	t.Run("owner sees full log", func(t *testing.T) {
		d := setupRecordService(t, false)
		tx := expectTx(d)
		record := testRecord("pat-1")
		d.records.EXPECT().GetByIDForUpdate(gomock.Any(), tx, record.ID).Return(record, nil)
		d.audit.EXPECT().ListForRecord(gomock.Any(), record.ID, defaultAuditPageSize).Return(entries, nil)
		d.audit.EXPECT().Append(gomock.Any(), tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e *domain.AuditLogEntry) error {
				assert.Equal(t, domain.AuditActionViewAuditLog, e.Action)
				assert.Equal(t, false, e.Details["sanitized"])
				return nil
			})

		got, err := d.svc.ViewAccessLog(context.Background(), domain.Caller{ID: "pat-1"}, record.ID, 0, domain.RequestMeta{})
		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})

	t.Run("reader gets sanitized log", func(t *testing.T) {
		d := setupRecordService(t, false)
		tx := expectTx(d)
		record := testRecord("pat-1", domain.AccessGrant{GranteeID: "res-9", Level: domain.AccessLevelRead})
		d.records.EXPECT().GetByIDForUpdate(gomock.Any(), tx, record.ID).Return(record, nil)
		d.audit.EXPECT().ListForRecord(gomock.Any(), record.ID, maxAuditPageSize).Return(entries, nil)
		d.audit.EXPECT().SanitizeForExport(entries).Return(sanitized)
		d.audit.EXPECT().Append(gomock.Any(), tx, gomock.Any()).Return(nil)

		got, err := d.svc.ViewAccessLog(context.Background(), domain.Caller{ID: "res-9"}, record.ID, 10_000, domain.RequestMeta{})
		require.NoError(t, err)
		assert.Equal(t, sanitized, got)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		d := setupRecordService(t, false)
		expectTx(d)
		record := testRecord("pat-1")
		d.records.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), record.ID).Return(record, nil)

		_, err := d.svc.ViewAccessLog(context.Background(), domain.Caller{ID: "bob"}, record.ID, 10, domain.RequestMeta{})
		assertAppError(t, err, "ACC_001")
	})
}
