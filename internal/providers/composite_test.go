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

func TestCompositeStopsOnceLimitReached(t *testing.T) {
	base := testutil.MustParseRFC3339("2024-06-01T18:00:00Z")
	p1 := &teststubs.StubProvider{ID: "p1", Events: testutil.Events(10, base)}
	p2 := &teststubs.StubProvider{ID: "p2", Events: testutil.Events(10, base.Add(24*time.Hour))}
	p3 := &teststubs.StubProvider{ID: "p3", Events: testutil.Events(10, base.Add(48*time.Hour))}
	composite := NewComposite(p1, p2, p3)

	events, err := composite.Search(context.Background(), domain.SearchRequest{Query: "anything", Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events) != 5 {
		t.Fatalf("expected exactly 5 events, got %d", len(events))
	}
	if p1.SearchCalls.Load() != 1 {
		t.Fatalf("expected first provider called once, got %d", p1.SearchCalls.Load())
	}
	if p2.SearchCalls.Load() != 0 || p3.SearchCalls.Load() != 0 {
		t.Fatal("expected no calls past the provider that satisfied the limit")
	}
}

func TestCompositeConcatenatesInProviderOrder(t *testing.T) {
	base := testutil.MustParseRFC3339("2024-06-01T18:00:00Z")
	p1 := &teststubs.StubProvider{ID: "p1", Events: []domain.Event{testutil.Event("a", "A", base), testutil.Event("b", "B", base)}}
	p2 := &teststubs.StubProvider{ID: "p2", Events: []domain.Event{testutil.Event("c", "C", base)}}
	composite := NewComposite(p1, p2)

	events, err := composite.Search(context.Background(), domain.SearchRequest{Query: "anything", Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a", "b", "c"}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i, id := range want {
		if events[i].EventID != id {
			t.Fatalf("expected %s at position %d, got %s", id, i, events[i].EventID)
		}
	}
}

func TestCompositeTruncatesMidProvider(t *testing.T) {
	base := testutil.MustParseRFC3339("2024-06-01T18:00:00Z")
	p1 := &teststubs.StubProvider{ID: "p1", Events: testutil.Events(3, base)}
	p2 := &teststubs.StubProvider{ID: "p2", Events: testutil.Events(10, base.Add(24*time.Hour))}
	composite := NewComposite(p1, p2)

	events, err := composite.Search(context.Background(), domain.SearchRequest{Query: "anything", Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 5 {
		t.Fatalf("expected 5 events after truncation, got %d", len(events))
	}
	if p2.SearchCalls.Load() != 1 {
		t.Fatalf("expected second provider called once, got %d", p2.SearchCalls.Load())
	}
}

func TestCompositeSearchFailureAbortsAggregation(t *testing.T) {
	base := testutil.MustParseRFC3339("2024-06-01T18:00:00Z")
	p1 := &teststubs.StubProvider{ID: "p1", Events: testutil.Events(2, base)}
	p2 := &teststubs.StubProvider{ID: "p2", Err: errors.New("upstream down")}
	composite := NewComposite(p1, p2)

	events, err := composite.Search(context.Background(), domain.SearchRequest{Query: "anything", Limit: 10})
	if err == nil {
		t.Fatal("expected error when a provider fails")
	}
	if events != nil {
		t.Fatal("expected partial results discarded on failure")
	}

	perr, ok := AsProviderError(err)
	if !ok {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if perr.Provider != "p2" || perr.Op != "search" {
		t.Fatalf("unexpected error details: %+v", perr)
	}
}

func TestCompositeStatusConcatenatesAll(t *testing.T) {
	p1 := &teststubs.StubProvider{ID: "p1", Statuses: []domain.ProviderStatus{{ProviderID: "p1", Status: domain.HealthHealthy}}}
	p2 := &teststubs.StubProvider{ID: "p2", Statuses: []domain.ProviderStatus{
		{ProviderID: "p2-a", Status: domain.HealthDegraded},
		{ProviderID: "p2-b", Status: domain.HealthDown},
	}}
	composite := NewComposite(p1, p2)

	statuses, err := composite.Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
}

func TestCompositeStatusFailureIsFatal(t *testing.T) {
	p1 := &teststubs.StubProvider{ID: "p1", Statuses: []domain.ProviderStatus{{ProviderID: "p1"}}}
	p2 := &teststubs.StubProvider{ID: "p2", StatusErr: errors.New("probe failed")}
	composite := NewComposite(p1, p2)

	if _, err := composite.Status(context.Background()); err == nil {
		t.Fatal("expected status failure to propagate")
	}
}

func TestCompositeEmptyProviderList(t *testing.T) {
	composite := NewComposite()

	events, err := composite.Search(context.Background(), domain.SearchRequest{Query: "anything", Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}
