package domain

import "time"

// Currency identifies the ISO code a price is denominated in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// Price is a ticket price in a single currency.
type Price struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// Seat carries optional seat placement details for a listing.
type Seat struct {
	Section string `json:"section,omitempty"`
	Row     string `json:"row,omitempty"`
	Seat    string `json:"seat,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Listing is a single purchasable ticket offer from one provider.
// IsBestPrice is recomputed on every pricing pass and must not be
// trusted across passes.
type Listing struct {
	ListingID   string    `json:"listing_id"`
	Provider    string    `json:"provider"`
	URL         string    `json:"url"`
	Price       Price     `json:"price"`
	Seat        Seat      `json:"seat"`
	IsBestPrice bool      `json:"is_best_price"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Event is the canonical event shape exposed by the service.
// Identity is EventID: two events with the same id are duplicates
// regardless of their listings.
type Event struct {
	EventID  string    `json:"event_id"`
	Title    string    `json:"title"`
	League   string    `json:"league,omitempty"`
	Venue    string    `json:"venue,omitempty"`
	StartAt  time.Time `json:"start_at"`
	Teams    []string  `json:"teams"`
	Listings []Listing `json:"listings"`
}

// ProviderHealth mirrors the shared contract for provider health states.
type ProviderHealth string

const (
	HealthHealthy  ProviderHealth = "healthy"
	HealthDegraded ProviderHealth = "degraded"
	HealthDown     ProviderHealth = "down"
)

// ProviderStatus is a read-only health snapshot for one provider.
type ProviderStatus struct {
	ProviderID    string         `json:"provider_id"`
	Status        ProviderHealth `json:"status"`
	LastSuccessAt *time.Time     `json:"last_success_at,omitempty"`
	LastError     string         `json:"last_error,omitempty"`
	LatencyMS     int64          `json:"latency_ms,omitempty"`
}

// SearchFilters narrows a search by team, league, venue substring or
// event date range.
type SearchFilters struct {
	Team     string     `json:"team,omitempty"`
	League   string     `json:"league,omitempty"`
	Location string     `json:"location,omitempty"`
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`
}

// IsEmpty reports whether no filter field is set.
func (f SearchFilters) IsEmpty() bool {
	return f.Team == "" && f.League == "" && f.Location == "" && f.DateFrom == nil && f.DateTo == nil
}

// SearchRequest describes one event search. Construct via the HTTP
// layer or call Normalize + Validate before handing it to the core.
type SearchRequest struct {
	Query   string        `json:"query,omitempty"`
	Filters SearchFilters `json:"filters"`
	Limit   int           `json:"limit"`
}

// SearchResponse is the payload returned by the search operation.
type SearchResponse struct {
	Results []Event `json:"results"`
	Total   int     `json:"total"`
}

// NewSearchResponse wraps a result set with its total count.
func NewSearchResponse(events []Event) SearchResponse {
	if events == nil {
		events = []Event{}
	}
	return SearchResponse{Results: events, Total: len(events)}
}

// ProviderStatusResponse is the payload returned by the status operation.
type ProviderStatusResponse struct {
	Providers []ProviderStatus `json:"providers"`
}
