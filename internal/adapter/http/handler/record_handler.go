package handler

import (
	"strconv"
	"time"

	"health-record-vault/internal/adapter/http/dto"
	"health-record-vault/internal/adapter/http/middleware"
	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/core/ports"
	"health-record-vault/pkg/apperror"
	"health-record-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// RecordHandler handles the record lifecycle endpoints.
type RecordHandler struct {
	recordSvc ports.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordSvc ports.RecordService) *RecordHandler {
	return &RecordHandler{recordSvc: recordSvc}
}

// Upload handles POST /api/v1/records.
func (h *RecordHandler) Upload(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.UploadRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	var retention time.Duration
	if d := dto.ParseOptionalDuration(req.RetentionPeriod); d != nil {
		retention = *d
	}

	record, err := h.recordSvc.Upload(c.Request.Context(), caller, ports.UploadRequest{
		Title:           req.Title,
		Description:     req.Description,
		Category:        domain.RecordCategory(req.Category),
		Price:           req.Price,
		FileType:        req.FileType,
		Fields:          req.Fields,
		Attachment:      req.Attachment,
		Available:       req.Available,
		RetentionPeriod: retention,
	}, middleware.RequestMetaFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToRecordResponse(record, time.Now()))
}

// Read handles GET /api/v1/records/:id and returns the decrypted view.
func (h *RecordHandler) Read(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	recordID, ok := recordIDParam(c)
	if !ok {
		return
	}

	view, err := h.recordSvc.Read(c.Request.Context(), caller, recordID, middleware.RequestMetaFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, view)
}

// Verify handles POST /api/v1/records/:id/verify.
func (h *RecordHandler) Verify(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	recordID, ok := recordIDParam(c)
	if !ok {
		return
	}

	result, err := h.recordSvc.VerifyIntegrity(c.Request.Context(), caller, recordID, middleware.RequestMetaFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// AccessLog handles GET /api/v1/records/:id/audit?limit=N.
func (h *RecordHandler) AccessLog(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	recordID, ok := recordIDParam(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Error(c, apperror.Validation("limit must be a positive integer"))
			return
		}
		limit = n
	}

	entries, err := h.recordSvc.ViewAccessLog(c.Request.Context(), caller, recordID, limit, middleware.RequestMetaFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	if entries == nil {
		entries = []domain.AuditLogEntry{}
	}

	response.OK(c, dto.AuditLogResponse{
		RecordID: recordID.String(),
		Entries:  entries,
		Count:    len(entries),
	})
}
