package handler

import (
	"health-record-vault/internal/adapter/http/dto"
	"health-record-vault/internal/adapter/http/middleware"
	"health-record-vault/internal/core/ports"
	"health-record-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// EmergencyHandler handles break-glass access for providers.
type EmergencyHandler struct {
	emergencySvc ports.EmergencyService
}

// NewEmergencyHandler creates a new EmergencyHandler.
func NewEmergencyHandler(emergencySvc ports.EmergencyService) *EmergencyHandler {
	return &EmergencyHandler{emergencySvc: emergencySvc}
}

// RequestAccess handles POST /api/v1/records/:id/emergency.
func (h *EmergencyHandler) RequestAccess(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	recordID, ok := recordIDParam(c)
	if !ok {
		return
	}

	var req dto.EmergencyAccessRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	grant, err := h.emergencySvc.RequestAccess(c.Request.Context(), caller, recordID, req.Reason, middleware.RequestMetaFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, grant)
}
