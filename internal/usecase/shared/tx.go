package shared

import (
	"context"
	"errors"

	"github.com/arjitrawat15/Stavia/internal/pkg/errs"
	"github.com/arjitrawat15/Stavia/internal/pkg/pgconv"
)

const (
	PgErrCodeSerializationFailure = "40001"
	PgErrCodeDeadlockDetected     = "40P01"
)

var (
	ErrTransactionBegin  = errs.New("failed to begin transaction")
	ErrTransactionCommit = errs.New("failed to commit transaction")
	// ErrTxConflict marks a transaction that kept failing on serialization
	// or deadlock errors until the retry budget ran out.
	ErrTxConflict = errs.New("transaction conflict")
)

// IsRetryable reports whether a transaction failing with err may succeed
// when run again from the start.
func IsRetryable(err error) bool {
	switch pgconv.PgErrorCode(err) {
	case PgErrCodeSerializationFailure, PgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

// IsContention reports whether err means the store could not settle the
// write in time, as opposed to a plain failure.
func IsContention(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTxConflict) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return pgconv.PgErrorCode(err) == pgconv.PgErrCodeLockNotAvailable
}
