package handler

import (
	"net/http"

	"health-record-vault/internal/adapter/http/dto"
	"health-record-vault/internal/adapter/http/middleware"
	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/core/ports"
	"health-record-vault/pkg/apperror"
	"health-record-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccessHandler handles grant management on a record.
type AccessHandler struct {
	accessSvc ports.AccessControlService
}

// NewAccessHandler creates a new AccessHandler.
func NewAccessHandler(accessSvc ports.AccessControlService) *AccessHandler {
	return &AccessHandler{accessSvc: accessSvc}
}

// Grant handles POST /api/v1/records/:id/grants.
func (h *AccessHandler) Grant(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	recordID, ok := recordIDParam(c)
	if !ok {
		return
	}

	var req dto.GrantAccessRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	grant, err := h.accessSvc.Grant(c.Request.Context(), caller, ports.GrantRequest{
		RecordID:  recordID,
		GranteeID: req.GranteeID,
		Level:     domain.AccessLevel(req.Level),
		Duration:  dto.ParseOptionalDuration(req.Duration),
		Reason:    req.Reason,
		Consent:   toConsentMeta(req.Consent),
		Restrictions: domain.Restrictions{
			ReadOnly:   req.ReadOnly,
			NoDownload: req.NoDownload,
		},
	}, middleware.RequestMetaFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, grant)
}

// Revoke handles DELETE /api/v1/records/:id/grants/:grantee.
func (h *AccessHandler) Revoke(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	recordID, ok := recordIDParam(c)
	if !ok {
		return
	}
	granteeID := c.Param("grantee")
	if granteeID == "" {
		response.Error(c, apperror.Validation("grantee is required"))
		return
	}

	if err := h.accessSvc.Revoke(c.Request.Context(), caller, recordID, granteeID, middleware.RequestMetaFrom(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateConsent handles PUT /api/v1/records/:id/grants/:grantee/consent.
func (h *AccessHandler) UpdateConsent(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	recordID, ok := recordIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateConsentRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	grant, err := h.accessSvc.UpdateConsent(c.Request.Context(), caller, recordID, c.Param("grantee"),
		toConsentMeta(req.Consent), middleware.RequestMetaFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, grant)
}

func toConsentMeta(req dto.ConsentRequest) domain.ConsentMeta {
	return domain.ConsentMeta{
		Validated: req.Validated,
		Method:    req.Method,
		Reference: req.Reference,
	}
}
