package testutil

import (
	"fmt"
	"time"

	"ticket-search-service/internal/domain"
)

// Event builds a minimal event for tests.
func Event(id, title string, start time.Time, listings ...domain.Listing) domain.Event {
	return domain.Event{
		EventID:  id,
		Title:    title,
		StartAt:  start,
		Teams:    []string{"Home", "Away"},
		Listings: listings,
	}
}

// Listing builds a listing priced in the given currency.
func Listing(id string, amount float64, currency domain.Currency) domain.Listing {
	return domain.Listing{
		ListingID: id,
		Provider:  "test",
		URL:       fmt.Sprintf("https://tickets.example.com/%s", id),
		Price:     domain.Price{Amount: amount, Currency: currency},
		FetchedAt: MustParseRFC3339("2024-06-01T00:00:00Z"),
	}
}

// Events builds n distinct events starting at hourly offsets from base.
func Events(n int, base time.Time) []domain.Event {
	out := make([]domain.Event, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Event(
			fmt.Sprintf("evt-%03d", i),
			fmt.Sprintf("Event %03d", i),
			base.Add(time.Duration(i)*time.Hour),
		))
	}
	return out
}
