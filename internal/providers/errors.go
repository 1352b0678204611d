package providers

import (
	"errors"
	"fmt"
)

// ProviderError marks a failure of a provider's search or status call.
// The aggregation that triggered the call is aborted; partial results
// are discarded.
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AsProviderError attempts to unwrap an error into a ProviderError.
func AsProviderError(err error) (*ProviderError, bool) {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

func wrapProviderErr(provider, op string, err error) error {
	if _, ok := AsProviderError(err); ok {
		return err
	}
	return &ProviderError{Provider: provider, Op: op, Err: err}
}
