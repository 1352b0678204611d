package httpapi

import (
	"time"

	"github.com/google/uuid"

	"ticket-search-service/internal/domain"
)

// mapEvent converts an upstream payload to the canonical event shape.
// Upstream timestamps are RFC3339; an unparseable start time falls back
// to the fetch time rather than dropping the event.
func mapEvent(payload eventPayload, providerID string, fetchedAt time.Time) domain.Event {
	startAt, err := time.Parse(time.RFC3339, payload.StartAt)
	if err != nil {
		startAt = fetchedAt
	}

	listings := make([]domain.Listing, 0, len(payload.Listings))
	for _, l := range payload.Listings {
		listings = append(listings, mapListing(l, providerID, fetchedAt))
	}

	return domain.Event{
		EventID:  payload.EventID,
		Title:    payload.Title,
		League:   payload.League,
		Venue:    payload.Venue,
		StartAt:  startAt.UTC(),
		Teams:    payload.Teams,
		Listings: listings,
	}
}

func mapListing(payload listingPayload, providerID string, fetchedAt time.Time) domain.Listing {
	id := payload.ListingID
	if id == "" {
		// Some upstreams omit listing ids; responses still need a unique one.
		id = uuid.NewString()
	}

	currency := domain.Currency(payload.Currency)
	if currency == "" {
		currency = domain.CurrencyUSD
	}

	return domain.Listing{
		ListingID: id,
		Provider:  providerID,
		URL:       payload.URL,
		Price:     domain.Price{Amount: payload.Price, Currency: currency},
		Seat:      domain.Seat{Section: payload.Section, Row: payload.Row, Seat: payload.Seat},
		FetchedAt: fetchedAt,
	}
}
