package domain

import "errors"

// Store adapters translate driver-specific failures into these sentinels.
var (
	// ErrWriteConflict is a transient conflict; the unit of work may be retried.
	ErrWriteConflict = errors.New("write conflict")
	// ErrDuplicateTransactionHash is a uniqueness violation on (record, transaction hash).
	ErrDuplicateTransactionHash = errors.New("duplicate transaction hash")
)
