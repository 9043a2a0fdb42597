package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Validation (VAL) ----

// Validation returns a VAL_001 error with a caller supplied message.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ErrPayloadTooLarge is returned when a request body exceeds the configured limit.
func ErrPayloadTooLarge(limit int64) *AppError {
	return New("VAL_001", fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// ---- Access (ACC) ----

func ErrAccessDenied(reason string) *AppError {
	msg := "Access denied"
	if reason != "" {
		msg = "Access denied: " + reason
	}
	return New("ACC_001", msg, http.StatusForbidden)
}

func ErrUnauthenticated() *AppError {
	return New("ACC_002", "Missing or invalid identity", http.StatusUnauthorized)
}

// ---- Records (REC) ----

func ErrNotFound(entity string) *AppError {
	return New("REC_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrNotAvailable() *AppError {
	return New("REC_002", "Record is not available for purchase", http.StatusConflict)
}

func ErrDataExpired() *AppError {
	return New("REC_003", "Record retention period has elapsed", http.StatusGone)
}

// ---- Purchases (PUR) ----

func ErrDuplicateTransaction() *AppError {
	return New("PUR_001", "Transaction hash already recorded for this record", http.StatusConflict)
}

// ---- Cryptography (CRY) ----

func ErrEncryption(err error) *AppError {
	return Wrap("CRY_001", "Encryption failure", http.StatusInternalServerError, err)
}

func ErrIntegrity(err error) *AppError {
	return Wrap("CRY_002", "Integrity verification failed", http.StatusUnprocessableEntity, err)
}

// ---- Security (SEC) ----

func ErrNonceUsed() *AppError {
	return New("SEC_001", "Nonce has already been used", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrServiceUnavailable is returned once retries of a transient failure are exhausted.
func ErrServiceUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Service temporarily unavailable", http.StatusServiceUnavailable, err)
}
