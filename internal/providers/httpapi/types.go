package httpapi

// Wire types for the upstream events endpoint.

type eventPayload struct {
	EventID  string           `json:"event_id"`
	Title    string           `json:"title"`
	League   string           `json:"league"`
	Venue    string           `json:"venue"`
	StartAt  string           `json:"start_at"`
	Teams    []string         `json:"teams"`
	Listings []listingPayload `json:"listings"`
}

type listingPayload struct {
	ListingID string  `json:"listing_id"`
	URL       string  `json:"url"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Section   string  `json:"section"`
	Row       string  `json:"row"`
	Seat      string  `json:"seat"`
}
