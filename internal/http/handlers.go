// Package http exposes the gateway's REST surface.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"

	"ticket-search-service/internal/domain"
	"ticket-search-service/internal/logging"
	"ticket-search-service/internal/profile"
	"ticket-search-service/internal/providers"
	"ticket-search-service/internal/search"
)

// Handler wires HTTP routes to the domain services.
type Handler struct {
	search   *search.Service
	profiles *profile.Service
	logger   *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(searchSvc *search.Service, profileSvc *profile.Service, logger *slog.Logger) *Handler {
	return &Handler{
		search:   searchSvc,
		profiles: profileSvc,
		logger:   logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness to serve traffic.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// Search runs a ticket search across the configured providers.
func (h *Handler) Search(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req domain.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "invalid request body")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	resp, err := h.search.Search(r.Context(), req)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.writeJSON(w, nethttp.StatusOK, resp)
}

// ProvidersStatus returns a health snapshot per provider.
func (h *Handler) ProvidersStatus(w nethttp.ResponseWriter, r *nethttp.Request) {
	statuses, err := h.search.ProvidersStatus(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, domain.ProviderStatusResponse{Providers: statuses})
}

// Profile returns the caller's profile, creating it on first contact.
func (h *Handler) Profile(w nethttp.ResponseWriter, r *nethttp.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		h.writeError(w, nethttp.StatusUnauthorized, "authentication required")
		return
	}

	prof, err := h.profiles.GetOrCreateProfile(r.Context(), user)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, prof)
}

// ListFavorites returns the caller's favorites.
func (h *Handler) ListFavorites(w nethttp.ResponseWriter, r *nethttp.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		h.writeError(w, nethttp.StatusUnauthorized, "authentication required")
		return
	}

	favorites, err := h.profiles.ListFavorites(r.Context(), user.UserID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string][]domain.Favorite{"favorites": favorites})
}

// AddFavorite attaches a favorite to the caller's profile.
func (h *Handler) AddFavorite(w nethttp.ResponseWriter, r *nethttp.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		h.writeError(w, nethttp.StatusUnauthorized, "authentication required")
		return
	}

	var favorite domain.Favorite
	if err := json.NewDecoder(r.Body).Decode(&favorite); err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "invalid request body")
		return
	}

	prof, err := h.profiles.AddFavorite(r.Context(), user, favorite)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, prof)
}

// RemoveFavorite detaches a favorite from the caller's profile.
func (h *Handler) RemoveFavorite(w nethttp.ResponseWriter, r *nethttp.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		h.writeError(w, nethttp.StatusUnauthorized, "authentication required")
		return
	}

	vars := mux.Vars(r)
	favoriteType := domain.FavoriteType(vars["type"])
	name := vars["name"]

	prof, err := h.profiles.RemoveFavorite(r.Context(), user.UserID, favoriteType, name)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, prof)
}

// writeDomainError maps domain errors onto HTTP statuses.
func (h *Handler) writeDomainError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		h.writeError(w, nethttp.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrProfileNotFound):
		h.writeError(w, nethttp.StatusNotFound, "profile not found")
	default:
		if perr, ok := providers.AsProviderError(err); ok {
			logging.Error(logging.FromContext(r.Context(), h.logger), "provider failure", perr,
				slog.String(logging.FieldProvider, perr.Provider))
			h.writeError(w, nethttp.StatusBadGateway, "upstream provider unavailable")
			return
		}
		logging.Error(logging.FromContext(r.Context(), h.logger), "internal error", err)
		h.writeError(w, nethttp.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
