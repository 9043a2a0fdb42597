package handler

import (
	"context"
	"net/http"
	"time"

	"health-record-vault/internal/adapter/http/dto"
	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/core/ports"
	"health-record-vault/pkg/apperror"
	"health-record-vault/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const healthTimeout = 3 * time.Second

// AuthHandler issues identity tokens for local development. Production
// tokens come from the external identity provider sharing the JWT secret.
type AuthHandler struct {
	tokenSvc ports.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokenSvc ports.TokenService) *AuthHandler {
	return &AuthHandler{tokenSvc: tokenSvc}
}

// IssueToken handles POST /api/v1/auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if !bindJSON(c, &req) {
		return
	}

	token, expiry, err := h.tokenSvc.Generate(domain.Caller{ID: req.UserID, Role: domain.Role(req.Role)})
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	response.OK(c, dto.TokenResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// HealthCheck handles GET /health. Dependencies are pinged concurrently;
// any failure reports the service as degraded.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		results := make([]depStatus, len(checkers))
		var g errgroup.Group
		for i, checker := range checkers {
			g.Go(func() error {
				if err := checker.Ping(ctx); err != nil {
					results[i] = depStatus{Status: "unhealthy", Error: err.Error()}
					return err
				}
				results[i] = depStatus{Status: "healthy"}
				return nil
			})
		}
		allHealthy := g.Wait() == nil

		deps := make(map[string]depStatus, len(checkers))
		for i, checker := range checkers {
			deps[checker.Name()] = results[i]
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
