package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest marks a malformed or out-of-range search request.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrProfileNotFound marks a lookup for a profile that does not exist.
	ErrProfileNotFound = errors.New("profile not found")
)

// ValidationError reports which request field failed validation. It
// unwraps to ErrInvalidRequest so callers can match the whole class.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return ErrInvalidRequest
}
