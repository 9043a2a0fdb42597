package handler

import (
	"health-record-vault/internal/core/ports"
	"health-record-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves per-user statistics.
type StatsHandler struct {
	statsSvc ports.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsSvc ports.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// GetMyStats handles GET /api/v1/me/stats.
func (h *StatsHandler) GetMyStats(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	stats, err := h.statsSvc.GetUserStats(c.Request.Context(), caller.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stats)
}
