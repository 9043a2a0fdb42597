package middleware

import (
	"net/http"

	"health-record-vault/pkg/apperror"
	"health-record-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// MaxBodySize limits the request body. Requests that announce a larger
// Content-Length are rejected up front; chunked bodies fail on read and
// handlers map the *http.MaxBytesError to the same 413.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, apperror.ErrPayloadTooLarge(maxBytes))
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
