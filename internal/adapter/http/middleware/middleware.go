package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"health-record-vault/internal/core/domain"
	"health-record-vault/internal/core/ports"
	"health-record-vault/pkg/apperror"
	"health-record-vault/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// Request headers
	HeaderRequestID       = "X-Request-ID"
	HeaderRequestNonce    = "X-Request-Nonce"
	HeaderPurpose         = "X-Access-Purpose"
	HeaderConsent         = "X-Consent-Validated"
	HeaderUnusualLocation = "X-Location-Unusual"

	maxNonceLength = 128

	// Context keys
	CtxCaller    = "caller"
	CtxRequestID = "request_id"
)

// RequestID propagates X-Request-ID or assigns a fresh one. The id is
// echoed on the response and used by the response envelope.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// JWTAuth validates the bearer token issued by the identity collaborator
// and stores the caller in the request context.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrUnauthenticated())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(authHeader[7:])
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("token rejected")
			response.Error(c, apperror.ErrUnauthenticated())
			c.Abort()
			return
		}

		c.Set(CtxCaller, domain.Caller{ID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// CallerFrom returns the authenticated caller set by JWTAuth.
func CallerFrom(c *gin.Context) (domain.Caller, bool) {
	v, ok := c.Get(CtxCaller)
	if !ok {
		return domain.Caller{}, false
	}
	caller, ok := v.(domain.Caller)
	return caller, ok && caller.ID != ""
}

// RequestMetaFrom collects the request context that ends up in audit entries.
// Consent and location flags are set by the upstream gateway.
func RequestMetaFrom(c *gin.Context) domain.RequestMeta {
	consent, _ := strconv.ParseBool(c.GetHeader(HeaderConsent))
	unusual, _ := strconv.ParseBool(c.GetHeader(HeaderUnusualLocation))
	return domain.RequestMeta{
		IPAddress:        c.ClientIP(),
		UserAgent:        c.Request.UserAgent(),
		Purpose:          strings.TrimSpace(c.GetHeader(HeaderPurpose)),
		ConsentValidated: consent,
		UnusualLocation:  unusual,
	}
}

// RequestNonce rejects replayed write requests. Each caller may use a nonce
// once within ttl. Safe methods pass through untouched.
func RequestNonce(nonceStore ports.NonceStore, ttl time.Duration, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		nonce := c.GetHeader(HeaderRequestNonce)
		if nonce == "" || len(nonce) > maxNonceLength {
			response.Error(c, apperror.Validation(fmt.Sprintf("%s header is required (max %d chars)", HeaderRequestNonce, maxNonceLength)))
			c.Abort()
			return
		}

		scope := c.ClientIP()
		if caller, ok := CallerFrom(c); ok {
			scope = caller.ID
		}

		isNew, err := nonceStore.CheckAndSet(c.Request.Context(), scope, nonce, ttl)
		if err != nil {
			log.Warn().Err(err).Msg("nonce store error, allowing request")
		} else if !isNew {
			response.Error(c, apperror.ErrNonceUsed())
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		if caller, ok := CallerFrom(c); ok {
			event = event.Str("caller_id", caller.ID)
		}
		event.
			Str("request_id", c.GetString(CtxRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				response.Error(c, apperror.InternalError(fmt.Errorf("panic: %v", r)))
				c.Abort()
			}
		}()
		c.Next()
	}
}
