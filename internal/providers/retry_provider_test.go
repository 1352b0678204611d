package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticket-search-service/internal/domain"
	"ticket-search-service/internal/teststubs"
	"ticket-search-service/internal/testutil"
)

func TestRetryingProviderRecoversFromTransientFailure(t *testing.T) {
	base := testutil.MustParseRFC3339("2024-06-01T18:00:00Z")
	stub := &teststubs.StubProvider{
		ID:                    "flaky",
		Events:                testutil.Events(1, base),
		Err:                   errors.New("transient"),
		FailuresBeforeSuccess: 2,
	}
	p := NewRetryingProvider(stub, "flaky", nil, 3, time.Millisecond)

	events, err := p.Search(context.Background(), domain.SearchRequest{Query: "anything", Limit: 5})
	if err != nil {
		t.Fatalf("expected recovery after retries, got %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if got := stub.SearchCalls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestRetryingProviderGivesUpAfterMaxAttempts(t *testing.T) {
	stub := &teststubs.StubProvider{
		ID:                    "down",
		Err:                   errors.New("still down"),
		FailuresBeforeSuccess: 100,
	}
	p := NewRetryingProvider(stub, "down", nil, 2, time.Millisecond)

	if _, err := p.Search(context.Background(), domain.SearchRequest{Query: "anything", Limit: 5}); err == nil {
		t.Fatal("expected failure after exhausting retries")
	}
	if got := stub.SearchCalls.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestRetryingProviderHonorsCancellation(t *testing.T) {
	stub := &teststubs.StubProvider{
		ID:                    "slow",
		Err:                   errors.New("transient"),
		FailuresBeforeSuccess: 100,
	}
	p := NewRetryingProvider(stub, "slow", nil, 10, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Search(ctx, domain.SearchRequest{Query: "anything", Limit: 5}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if got := stub.SearchCalls.Load(); got > 1 {
		t.Fatalf("expected at most 1 attempt after cancellation, got %d", got)
	}
}

func TestRetryingProviderDoesNotRetryStatus(t *testing.T) {
	stub := &teststubs.StubProvider{ID: "p", StatusErr: errors.New("probe failed")}
	p := NewRetryingProvider(stub, "p", nil, 3, time.Millisecond)

	if _, err := p.Status(context.Background()); err == nil {
		t.Fatal("expected status error to surface")
	}
	if got := stub.StatusCalls.Load(); got != 1 {
		t.Fatalf("expected 1 status call, got %d", got)
	}
}
