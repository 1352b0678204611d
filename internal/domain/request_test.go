package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeTrimsQueryAndDefaultsLimit(t *testing.T) {
	req := SearchRequest{Query: "  lakers  "}
	req.Normalize()

	if req.Query != "lakers" {
		t.Fatalf("expected trimmed query, got %q", req.Query)
	}
	if req.Limit != DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultLimit, req.Limit)
	}
}

func TestNormalizeEmptyQueryBecomesAbsent(t *testing.T) {
	req := SearchRequest{Query: "   ", Filters: SearchFilters{Team: "Lakers"}}
	req.Normalize()

	if req.Query != "" {
		t.Fatalf("expected empty query, got %q", req.Query)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestValidateRejectsEmptyRequest(t *testing.T) {
	req := SearchRequest{Limit: 10}

	err := req.Validate()
	if err == nil {
		t.Fatal("expected error for request with no query and no filters")
	}
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestValidateRejectsNonPositiveLimit(t *testing.T) {
	for _, limit := range []int{0, -1, -100} {
		req := SearchRequest{Query: "warriors", Limit: limit}
		if err := req.Validate(); err == nil {
			t.Fatalf("expected error for limit %d", limit)
		}
	}
}

func TestValidateRejectsExcessiveLimit(t *testing.T) {
	req := SearchRequest{Query: "warriors", Limit: MaxLimit + 1}
	if err := req.Validate(); err == nil {
		t.Fatal("expected error for limit above maximum")
	}
}

func TestValidateRejectsShortQuery(t *testing.T) {
	req := SearchRequest{Query: "a", Limit: 10}

	err := req.Validate()
	if err == nil {
		t.Fatal("expected error for one-character query")
	}

	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Field != "query" {
		t.Fatalf("expected field query, got %s", verr.Field)
	}
}

func TestValidateRejectsInvertedDateRange(t *testing.T) {
	from := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	req := SearchRequest{
		Filters: SearchFilters{DateFrom: &from, DateTo: &to},
		Limit:   10,
	}

	if err := req.Validate(); err == nil {
		t.Fatal("expected error for date_from after date_to")
	}
}

func TestValidateAcceptsFilterOnlyRequest(t *testing.T) {
	req := SearchRequest{Filters: SearchFilters{League: "NBA"}, Limit: 5}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}
