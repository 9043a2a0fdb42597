package handler

import (
	"health-record-vault/internal/adapter/http/dto"
	"health-record-vault/internal/adapter/http/middleware"
	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/core/ports"
	"health-record-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles record purchases backed by chain receipts.
type PurchaseHandler struct {
	purchaseSvc ports.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseSvc ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseSvc: purchaseSvc}
}

// Purchase handles POST /api/v1/records/:id/purchase.
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	recordID, ok := recordIDParam(c)
	if !ok {
		return
	}

	var req dto.PurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.purchaseSvc.Purchase(c.Request.Context(), caller, recordID, domain.ChainReceipt{
		TransactionHash: req.TransactionHash,
		BlockNumber:     req.BlockNumber,
		Confirmations:   req.Confirmations,
		Status:          req.Status,
	}, middleware.RequestMetaFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}
