package providers

import (
	"context"

	"ticket-search-service/internal/domain"
)

// Identifier is implemented by providers that can name themselves;
// decorators pass it through for error wrapping and telemetry.
type Identifier interface {
	ProviderID() string
}

// Composite fans a search out to an ordered list of providers and
// concatenates their results. Any single live provider can satisfy a
// request; any provider failure aborts the whole aggregation.
type Composite struct {
	providers []Provider
}

// NewComposite builds a composite over providers in the given order.
// The order is part of the contract: it decides concatenation order and
// therefore which duplicate survives normalization downstream.
func NewComposite(providers ...Provider) *Composite {
	return &Composite{providers: providers}
}

// Search queries providers one at a time in configured order, stops
// issuing calls once the accumulated count reaches the request limit,
// and truncates the concatenation to exactly that limit.
func (c *Composite) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Event, error) {
	results := make([]domain.Event, 0, req.Limit)
	for _, p := range c.providers {
		events, err := p.Search(ctx, req)
		if err != nil {
			return nil, wrapProviderErr(nameOf(p), "search", err)
		}
		results = append(results, events...)
		if len(results) >= req.Limit {
			break
		}
	}
	if len(results) > req.Limit {
		results = results[:req.Limit]
	}
	return results, nil
}

// Status concatenates every provider's status list. No deduplication,
// no failure suppression: a failing status call fails the whole
// operation.
func (c *Composite) Status(ctx context.Context) ([]domain.ProviderStatus, error) {
	statuses := make([]domain.ProviderStatus, 0, len(c.providers))
	for _, p := range c.providers {
		s, err := p.Status(ctx)
		if err != nil {
			return nil, wrapProviderErr(nameOf(p), "status", err)
		}
		statuses = append(statuses, s...)
	}
	return statuses, nil
}

func nameOf(p Provider) string {
	if ident, ok := p.(Identifier); ok {
		return ident.ProviderID()
	}
	return "unknown"
}
