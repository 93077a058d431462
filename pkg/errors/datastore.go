package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuery is returned for an empty or missing query statement.
	// It signals a caller bug and is never retried.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrCacheUnavailable is returned when a nil cache or nil session is used.
	ErrCacheUnavailable = errors.New("prepared statement cache unavailable")

	// ErrRecordNotFound is returned by single-row reads that match nothing.
	ErrRecordNotFound = errors.New("record not found")
)

// PreparationFailedError reports that the session could not prepare a
// statement. The driver error is kept as the cause.
type PreparationFailedError struct {
	Statement string
	Err       error
}

func NewPreparationFailedError(statement string, err error) *PreparationFailedError {
	return &PreparationFailedError{Statement: statement, Err: err}
}

func (e *PreparationFailedError) Error() string {
	return fmt.Sprintf("failed to prepare %q: %v", e.Statement, e.Err)
}

func (e *PreparationFailedError) Unwrap() error {
	return e.Err
}

// IsPreparationFailed reports whether err, or anything it wraps, is a
// PreparationFailedError.
func IsPreparationFailed(err error) bool {
	var prepErr *PreparationFailedError
	return errors.As(err, &prepErr)
}
