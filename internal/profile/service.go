package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"ticket-search-service/internal/domain"
	"ticket-search-service/internal/logging"
)

// Service implements profile operations on top of a Store.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService wires a store.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// GetOrCreateProfile returns the caller's profile, creating an empty
// one on first contact.
func (s *Service) GetOrCreateProfile(ctx context.Context, user domain.UserContext) (domain.UserProfile, error) {
	profile, err := s.store.Get(ctx, user.UserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return domain.UserProfile{}, err
	}

	profile = domain.UserProfile{UserID: user.UserID, Email: user.Email}
	if err := s.store.Create(ctx, profile); err != nil {
		return domain.UserProfile{}, err
	}
	logging.Info(s.logger, "created profile", slog.String(logging.FieldUserID, user.UserID))
	return profile, nil
}

// GetProfile returns an existing profile or domain.ErrProfileNotFound.
func (s *Service) GetProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	return s.store.Get(ctx, userID)
}

// ListFavorites returns the favorites of an existing profile.
func (s *Service) ListFavorites(ctx context.Context, userID string) ([]domain.Favorite, error) {
	profile, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Favorites == nil {
		return []domain.Favorite{}, nil
	}
	return profile.Favorites, nil
}

// AddFavorite validates and attaches a favorite, returning the updated
// profile. The profile is created on demand so a fresh user can
// favorite a team in their first request.
func (s *Service) AddFavorite(ctx context.Context, user domain.UserContext, favorite domain.Favorite) (domain.UserProfile, error) {
	favorite.Name = strings.TrimSpace(favorite.Name)
	if err := validateFavorite(favorite); err != nil {
		return domain.UserProfile{}, err
	}

	if _, err := s.GetOrCreateProfile(ctx, user); err != nil {
		return domain.UserProfile{}, err
	}
	if err := s.store.AddFavorite(ctx, user.UserID, favorite); err != nil {
		return domain.UserProfile{}, err
	}
	return s.store.Get(ctx, user.UserID)
}

// RemoveFavorite detaches a favorite and returns the updated profile.
func (s *Service) RemoveFavorite(ctx context.Context, userID string, favoriteType domain.FavoriteType, name string) (domain.UserProfile, error) {
	if err := validateFavorite(domain.Favorite{Type: favoriteType, Name: strings.TrimSpace(name)}); err != nil {
		return domain.UserProfile{}, err
	}
	if err := s.store.RemoveFavorite(ctx, userID, favoriteType, strings.TrimSpace(name)); err != nil {
		return domain.UserProfile{}, err
	}
	return s.store.Get(ctx, userID)
}

func validateFavorite(favorite domain.Favorite) error {
	switch favorite.Type {
	case domain.FavoriteTeam, domain.FavoriteLeague:
	default:
		return domain.ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("must be %q or %q", domain.FavoriteTeam, domain.FavoriteLeague),
		}
	}
	if favorite.Name == "" {
		return domain.ValidationError{Field: "name", Message: "must not be empty"}
	}
	return nil
}
