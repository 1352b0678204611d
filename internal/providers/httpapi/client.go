// Package httpapi implements a provider backed by an upstream HTTP
// events endpoint.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"ticket-search-service/internal/domain"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	ProviderID string
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches events from an upstream provider API and maps them to
// domain models. It tracks its last success/error for Status reporting.
type Client struct {
	providerID string
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time

	mu            sync.Mutex
	lastError     string
	lastSuccessAt *time.Time
	lastLatency   time.Duration
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		providerID: resolveProviderID(cfg.ProviderID),
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// ProviderID names this provider.
func (c *Client) ProviderID() string {
	return c.providerID
}

// Search queries the upstream events endpoint with the request's
// parameters and maps the payload. Results are truncated to the
// request limit even if the upstream returns more.
func (c *Client) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Event, error) {
	start := c.now()

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, c.fail(err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.fail(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return nil, c.fail(err)
	}

	var payload []eventPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, c.fail(err)
	}

	fetchedAt := c.now().UTC()
	events := make([]domain.Event, 0, len(payload))
	for _, p := range payload {
		events = append(events, mapEvent(p, c.providerID, fetchedAt))
	}
	if len(events) > req.Limit {
		events = events[:req.Limit]
	}

	c.succeed(fetchedAt, fetchedAt.Sub(start.UTC()))
	return events, nil
}

// Status reports this client's health from its call history: healthy
// until a call fails, degraded after.
func (c *Client) Status(ctx context.Context) ([]domain.ProviderStatus, error) {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()

	health := domain.HealthHealthy
	if c.lastError != "" {
		health = domain.HealthDegraded
	}
	return []domain.ProviderStatus{
		{
			ProviderID:    c.providerID,
			Status:        health,
			LastSuccessAt: c.lastSuccessAt,
			LastError:     c.lastError,
			LatencyMS:     c.lastLatency.Milliseconds(),
		},
	}, nil
}

func (c *Client) buildRequest(ctx context.Context, req domain.SearchRequest) (*http.Request, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events", nil)
	if err != nil {
		return nil, err
	}

	q := httpReq.URL.Query()
	if req.Query != "" {
		q.Set("query", req.Query)
	}
	if req.Filters.Team != "" {
		q.Set("team", req.Filters.Team)
	}
	if req.Filters.League != "" {
		q.Set("league", req.Filters.League)
	}
	if req.Filters.Location != "" {
		q.Set("location", req.Filters.Location)
	}
	if req.Filters.DateFrom != nil {
		q.Set("date_from", req.Filters.DateFrom.UTC().Format(time.RFC3339))
	}
	if req.Filters.DateTo != nil {
		q.Set("date_to", req.Filters.DateTo.UTC().Format(time.RFC3339))
	}
	q.Set("limit", strconv.Itoa(req.Limit))
	httpReq.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return httpReq, nil
}

func (c *Client) fail(err error) error {
	c.mu.Lock()
	c.lastError = err.Error()
	c.mu.Unlock()
	return err
}

func (c *Client) succeed(at time.Time, latency time.Duration) {
	c.mu.Lock()
	c.lastError = ""
	c.lastSuccessAt = &at
	c.lastLatency = latency
	c.mu.Unlock()
}
