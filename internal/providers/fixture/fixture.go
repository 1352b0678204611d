// Package fixture provides a deterministic in-memory provider useful
// for local development and bootstrapping.
package fixture

import (
	"context"
	"strings"
	"time"

	"ticket-search-service/internal/domain"
)

const providerID = "sample-tickets"

// Provider serves a static catalog of events with listings.
type Provider struct {
	now    func() time.Time
	events []domain.Event
}

// New creates a fixture provider with a time source.
func New() *Provider {
	p := &Provider{now: time.Now}
	p.events = sampleEvents(p.now())
	return p
}

// NewWithClock creates a fixture provider pinned to a fixed time
// source; intended for tests.
func NewWithClock(now func() time.Time) *Provider {
	p := &Provider{now: now}
	p.events = sampleEvents(p.now())
	return p
}

// ProviderID names this provider.
func (p *Provider) ProviderID() string {
	return providerID
}

// Search filters the static catalog against the request. Matching is
// case-insensitive substring matching; scanning stops once the request
// limit is reached.
func (p *Provider) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Event, error) {
	_ = ctx

	query := strings.ToLower(req.Query)
	filters := req.Filters

	matched := make([]domain.Event, 0, req.Limit)
	for _, evt := range p.events {
		if query != "" && !matchesQuery(evt, query) {
			continue
		}
		if filters.Team != "" && !matchesTeam(evt, filters.Team) {
			continue
		}
		if filters.League != "" && !containsFold(evt.League, filters.League) {
			continue
		}
		if filters.Location != "" && !containsFold(evt.Venue, filters.Location) {
			continue
		}
		if filters.DateFrom != nil && evt.StartAt.Before(*filters.DateFrom) {
			continue
		}
		if filters.DateTo != nil && evt.StartAt.After(*filters.DateTo) {
			continue
		}

		matched = append(matched, evt)
		if len(matched) >= req.Limit {
			break
		}
	}

	return matched, nil
}

// Status reports the fixture as healthy with a synthetic latency.
func (p *Provider) Status(ctx context.Context) ([]domain.ProviderStatus, error) {
	_ = ctx
	now := p.now().UTC()
	return []domain.ProviderStatus{
		{
			ProviderID:    providerID,
			Status:        domain.HealthHealthy,
			LastSuccessAt: &now,
			LatencyMS:     120,
		},
	}, nil
}

func matchesQuery(evt domain.Event, query string) bool {
	haystack := append([]string{evt.Title, evt.League, evt.Venue}, evt.Teams...)
	for _, value := range haystack {
		if strings.Contains(strings.ToLower(value), query) {
			return true
		}
	}
	return false
}

func matchesTeam(evt domain.Event, team string) bool {
	for _, t := range evt.Teams {
		if containsFold(t, team) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sampleEvents(now time.Time) []domain.Event {
	fetched := now.UTC()
	return []domain.Event{
		{
			EventID: "evt-001",
			Title:   "Barcelona vs Real Madrid",
			League:  "La Liga",
			Venue:   "Camp Nou, Barcelona",
			StartAt: fetched.AddDate(0, 1, 0).Truncate(time.Hour),
			Teams:   []string{"FC Barcelona", "Real Madrid"},
			Listings: []domain.Listing{
				{
					ListingID: "list-001",
					Provider:  providerID,
					URL:       "https://tickets.example.com/barca-real",
					Price:     domain.Price{Amount: 125.0, Currency: domain.CurrencyEUR},
					Seat:      domain.Seat{Section: "Lower", Row: "12", Seat: "18"},
					FetchedAt: fetched,
				},
			},
		},
		{
			EventID: "evt-002",
			Title:   "New York Yankees vs Boston Red Sox",
			League:  "MLB",
			Venue:   "Yankee Stadium, New York",
			StartAt: fetched.AddDate(0, 0, 14).Truncate(time.Hour),
			Teams:   []string{"New York Yankees", "Boston Red Sox"},
			Listings: []domain.Listing{
				{
					ListingID: "list-002",
					Provider:  providerID,
					URL:       "https://tickets.example.com/yankees-redsox",
					Price:     domain.Price{Amount: 85.0, Currency: domain.CurrencyUSD},
					Seat:      domain.Seat{Section: "Main", Row: "7", Seat: "4"},
					FetchedAt: fetched,
				},
			},
		},
		{
			EventID: "evt-003",
			Title:   "Los Angeles Lakers vs Golden State Warriors",
			League:  "NBA",
			Venue:   "Crypto.com Arena, Los Angeles",
			StartAt: fetched.AddDate(0, 2, 0).Truncate(time.Hour),
			Teams:   []string{"Los Angeles Lakers", "Golden State Warriors"},
			Listings: []domain.Listing{
				{
					ListingID: "list-003",
					Provider:  providerID,
					URL:       "https://tickets.example.com/lakers-warriors",
					Price:     domain.Price{Amount: 190.0, Currency: domain.CurrencyUSD},
					Seat:      domain.Seat{Section: "200", Row: "C"},
					FetchedAt: fetched,
				},
			},
		},
	}
}
