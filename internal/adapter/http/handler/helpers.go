package handler

import (
	"errors"
	"net/http"

	"health-record-vault/internal/adapter/http/middleware"
	"health-record-vault/internal/core/domain"
	"health-record-vault/pkg/apperror"
	"health-record-vault/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindJSON decodes the body into req and writes the error response on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge(tooLarge.Limit))
			return false
		}
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}

// requireCaller returns the authenticated caller or writes ACC_002.
func requireCaller(c *gin.Context) (domain.Caller, bool) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated())
		return domain.Caller{}, false
	}
	return caller, true
}

// recordIDParam parses the :id path parameter.
func recordIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("record id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
