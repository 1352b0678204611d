// Package providers defines the capability exposed by ticket data
// sources and the composite that aggregates them.
package providers

import (
	"context"

	"ticket-search-service/internal/domain"
)

// Provider is an independently owned source of event/ticket data.
// Search returns events matching the request; Status returns read-only
// health snapshots (one provider may report several upstreams).
// Implementations own their retry and timeout policy.
type Provider interface {
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.Event, error)
	Status(ctx context.Context) ([]domain.ProviderStatus, error)
}
