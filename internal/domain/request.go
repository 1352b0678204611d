package domain

import "strings"

const (
	minQueryLength = 2
	maxQueryLength = 256

	// DefaultLimit applies when a request does not set one.
	DefaultLimit = 25
	// MaxLimit bounds how many results a single search may return.
	MaxLimit = 100
)

// Normalize trims the free-text query (empty after trimming means
// absent) and applies the default limit. Call before Validate.
func (r *SearchRequest) Normalize() {
	r.Query = strings.TrimSpace(r.Query)
	if r.Limit == 0 {
		r.Limit = DefaultLimit
	}
}

// Validate enforces the request invariants: a bounded positive limit,
// a minimum query length, an ordered date range, and at least one of
// query or filters present.
func (r SearchRequest) Validate() error {
	if r.Limit <= 0 {
		return ValidationError{Field: "limit", Message: "must be a positive integer"}
	}
	if r.Limit > MaxLimit {
		return ValidationError{Field: "limit", Message: "exceeds maximum"}
	}
	if r.Query != "" && len(r.Query) < minQueryLength {
		return ValidationError{Field: "query", Message: "too short"}
	}
	if len(r.Query) > maxQueryLength {
		return ValidationError{Field: "query", Message: "too long"}
	}
	if r.Filters.DateFrom != nil && r.Filters.DateTo != nil && r.Filters.DateFrom.After(*r.Filters.DateTo) {
		return ValidationError{Field: "filters.date_from", Message: "must be earlier than date_to"}
	}
	if r.Query == "" && r.Filters.IsEmpty() {
		return ValidationError{Field: "query", Message: "provide either a search query or at least one filter"}
	}
	return nil
}
