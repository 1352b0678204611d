package http

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ticket-search-service/internal/domain"
	"ticket-search-service/internal/profile"
	"ticket-search-service/internal/providers"
	"ticket-search-service/internal/search"
	"ticket-search-service/internal/teststubs"
	"ticket-search-service/internal/testutil"
)

const (
	testSecret    = "test-secret"
	testDemoToken = "demo-token"
)

func newTestRouter(t *testing.T, provider *teststubs.StubProvider) nethttp.Handler {
	t.Helper()

	searchSvc := search.New(provider, nil, search.Config{}, nil, nil)
	profileSvc := profile.NewService(profile.NewMemoryStore(), nil)
	handler := NewHandler(searchSvc, profileSvc, nil)
	auth := NewAuthMiddleware(AuthConfig{Secret: testSecret, DemoToken: testDemoToken}, nil)
	return NewRouter(handler, auth)
}

func signToken(t *testing.T, sub, email string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, &teststubs.StubProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	base := testutil.MustParseRFC3339("2024-07-01T19:00:00Z")
	provider := &teststubs.StubProvider{Events: testutil.Events(2, base)}
	router := newTestRouter(t, provider)

	body := strings.NewReader(`{"query": "lakers"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodPost, "/v1/search", body))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp domain.SearchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 || len(resp.Results) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSearchRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t, &teststubs.StubProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodPost, "/v1/search", strings.NewReader("{not json")))

	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSearchRejectsInvalidRequest(t *testing.T) {
	provider := &teststubs.StubProvider{}
	router := newTestRouter(t, provider)

	// A single-character query is below the minimum length.
	body := strings.NewReader(`{"query": "x"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodPost, "/v1/search", body))

	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := provider.SearchCalls.Load(); got != 0 {
		t.Fatalf("invalid requests must not reach providers, got %d calls", got)
	}
}

func TestSearchMapsProviderFailureToBadGateway(t *testing.T) {
	provider := &teststubs.StubProvider{ID: "flaky", Err: errors.New("upstream timeout")}
	searchSvc := search.New(providers.NewComposite(provider), nil, search.Config{}, nil, nil)
	profileSvc := profile.NewService(profile.NewMemoryStore(), nil)
	handler := NewHandler(searchSvc, profileSvc, nil)
	auth := NewAuthMiddleware(AuthConfig{Secret: testSecret}, nil)
	router := NewRouter(handler, auth)

	body := strings.NewReader(`{"query": "lakers"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodPost, "/v1/search", body))

	if rec.Code != nethttp.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestProvidersStatusEndpoint(t *testing.T) {
	provider := &teststubs.StubProvider{Statuses: []domain.ProviderStatus{
		{ProviderID: "sample-tickets", Status: domain.HealthHealthy},
	}}
	router := newTestRouter(t, provider)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/v1/providers/status", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.ProviderStatusResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Providers) != 1 || resp.Providers[0].ProviderID != "sample-tickets" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestProfileRequiresAuth(t *testing.T) {
	router := newTestRouter(t, &teststubs.StubProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/v1/profile/me", nil))

	if rec.Code != nethttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestProfileWithDemoToken(t *testing.T) {
	router := newTestRouter(t, &teststubs.StubProvider{})

	req := httptest.NewRequest(nethttp.MethodGet, "/v1/profile/me", nil)
	req.Header.Set("Authorization", "Bearer "+testDemoToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var prof domain.UserProfile
	if err := json.NewDecoder(rec.Body).Decode(&prof); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if prof.UserID != "demo-user" {
		t.Fatalf("unexpected profile: %+v", prof)
	}
}

func TestProfileRejectsBadToken(t *testing.T) {
	router := newTestRouter(t, &teststubs.StubProvider{})

	req := httptest.NewRequest(nethttp.MethodGet, "/v1/profile/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != nethttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestFavoriteLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t, &teststubs.StubProvider{})
	token := signToken(t, "user-7", "fan@example.com")

	add := httptest.NewRequest(nethttp.MethodPut, "/v1/profile/me/favorites",
		strings.NewReader(`{"type": "team", "name": "Lakers"}`))
	add.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, add)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("add favorite: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	list := httptest.NewRequest(nethttp.MethodGet, "/v1/profile/me/favorites", nil)
	list.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, list)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("list favorites: expected 200, got %d", rec.Code)
	}
	var listed map[string][]domain.Favorite
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("failed to decode favorites: %v", err)
	}
	if len(listed["favorites"]) != 1 || listed["favorites"][0].Name != "Lakers" {
		t.Fatalf("unexpected favorites: %+v", listed)
	}

	remove := httptest.NewRequest(nethttp.MethodDelete, "/v1/profile/me/favorites/team/Lakers", nil)
	remove.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, remove)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("remove favorite: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var prof domain.UserProfile
	if err := json.NewDecoder(rec.Body).Decode(&prof); err != nil {
		t.Fatalf("failed to decode profile: %v", err)
	}
	if len(prof.Favorites) != 0 {
		t.Fatalf("expected no favorites after removal, got %+v", prof.Favorites)
	}
}

func TestAddFavoriteRejectsUnknownType(t *testing.T) {
	router := newTestRouter(t, &teststubs.StubProvider{})
	token := signToken(t, "user-7", "fan@example.com")

	add := httptest.NewRequest(nethttp.MethodPut, "/v1/profile/me/favorites",
		strings.NewReader(`{"type": "venue", "name": "Madison Square Garden"}`))
	add.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, add)

	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMethodMismatchReturns405(t *testing.T) {
	router := newTestRouter(t, &teststubs.StubProvider{})

	cases := []struct {
		method string
		path   string
	}{
		{nethttp.MethodGet, "/v1/search"},
		{nethttp.MethodDelete, "/health"},
		{nethttp.MethodPost, "/v1/providers/status"},
		{nethttp.MethodPost, "/v1/profile/me/favorites"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

		if rec.Code != nethttp.StatusMethodNotAllowed {
			t.Fatalf("%s %s: expected 405, got %d", tc.method, tc.path, rec.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("%s %s: expected a JSON error body: %v", tc.method, tc.path, err)
		}
		if body["error"] == "" {
			t.Fatalf("%s %s: expected an error message, got %v", tc.method, tc.path, body)
		}
	}
}
