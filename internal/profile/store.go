// Package profile persists per-user state: the profile record itself
// and the teams/leagues a user follows.
package profile

import (
	"context"

	"ticket-search-service/internal/domain"
)

// Store abstracts profile persistence so the service can run against
// the in-memory store in tests and sqlite in deployments.
type Store interface {
	// Get returns the profile for userID, or domain.ErrProfileNotFound.
	Get(ctx context.Context, userID string) (domain.UserProfile, error)

	// Create inserts a new profile. Creating an existing profile is an
	// error.
	Create(ctx context.Context, profile domain.UserProfile) error

	// AddFavorite attaches a favorite to a profile. Adding a favorite
	// that is already present is a no-op.
	AddFavorite(ctx context.Context, userID string, favorite domain.Favorite) error

	// RemoveFavorite detaches a favorite. Removing an absent favorite
	// is a no-op.
	RemoveFavorite(ctx context.Context, userID string, favoriteType domain.FavoriteType, name string) error
}
