package config

const (
	envTicketAPIBaseURL = "PROVIDER_BASE_URL"
	envTicketAPIKey     = "PROVIDER_API_KEY"
	envTicketAPIID      = "PROVIDER_ID"
)

// TicketAPIConfig controls how we talk to an HTTP ticket provider.
type TicketAPIConfig struct {
	ProviderID string
	BaseURL    string
	APIKey     string
}

func loadTicketAPI() TicketAPIConfig {
	return TicketAPIConfig{
		ProviderID: envOrDefault(envTicketAPIID, ""),
		BaseURL:    envOrDefault(envTicketAPIBaseURL, ""),
		APIKey:     envOrDefault(envTicketAPIKey, ""),
	}
}
