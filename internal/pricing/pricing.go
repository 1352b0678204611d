// Package pricing converts listing prices to a common currency and
// flags the cheapest listing per event.
package pricing

import "ticket-search-service/internal/domain"

// Rates maps a currency to its value in base-currency units per 1 unit.
type Rates map[domain.Currency]float64

// DefaultRates is the fixed conversion table, relative to USD.
func DefaultRates() Rates {
	return Rates{
		domain.CurrencyUSD: 1.0,
		domain.CurrencyEUR: 1.08,
		domain.CurrencyGBP: 1.28,
	}
}

// Convert converts amount from source to target using the rate table.
// Identical currencies return the amount unchanged. A currency missing
// from the table is treated as rate 1.0 rather than an error.
func Convert(amount float64, source, target domain.Currency, rates Rates) float64 {
	if source == target {
		return amount
	}
	sourceRate, ok := rates[source]
	if !ok {
		sourceRate = 1.0
	}
	targetRate, ok := rates[target]
	if !ok {
		targetRate = 1.0
	}
	return amount * sourceRate / targetRate
}

// MarkBestPrices flags, per event, the listing with the lowest price
// after conversion to target. Ties keep the earliest listing. Flags on
// every other listing are cleared. Events without listings are left
// untouched. The pass mutates the events in place and requires
// exclusive write access to their listings for its duration.
func MarkBestPrices(events []domain.Event, target domain.Currency) []domain.Event {
	rates := DefaultRates()
	for i := range events {
		listings := events[i].Listings
		if len(listings) == 0 {
			continue
		}

		bestIdx := 0
		bestAmount := Convert(listings[0].Price.Amount, listings[0].Price.Currency, target, rates)
		for j := 1; j < len(listings); j++ {
			converted := Convert(listings[j].Price.Amount, listings[j].Price.Currency, target, rates)
			if converted < bestAmount {
				bestIdx = j
				bestAmount = converted
			}
		}

		for j := range listings {
			listings[j].IsBestPrice = j == bestIdx
		}
	}
	return events
}
