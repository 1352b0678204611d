package httpapi

import "time"

const (
	defaultProviderID  = "http-tickets"
	defaultHTTPTimeout = 5 * time.Second
)
