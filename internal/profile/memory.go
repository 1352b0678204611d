package profile

import (
	"context"
	"fmt"
	"sync"

	"ticket-search-service/internal/domain"
)

// MemoryStore keeps profiles in process memory. Suitable for tests and
// single-instance deployments without durability requirements.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.UserProfile
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]domain.UserProfile)}
}

// Get returns a copy of the stored profile.
func (s *MemoryStore) Get(ctx context.Context, userID string) (domain.UserProfile, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return domain.UserProfile{}, domain.ErrProfileNotFound
	}
	return copyProfile(profile), nil
}

// Create inserts a new profile.
func (s *MemoryStore) Create(ctx context.Context, profile domain.UserProfile) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[profile.UserID]; ok {
		return fmt.Errorf("profile %q already exists", profile.UserID)
	}
	s.profiles[profile.UserID] = copyProfile(profile)
	return nil
}

// AddFavorite attaches a favorite, ignoring duplicates.
func (s *MemoryStore) AddFavorite(ctx context.Context, userID string, favorite domain.Favorite) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	for _, existing := range profile.Favorites {
		if existing.Type == favorite.Type && existing.Name == favorite.Name {
			return nil
		}
	}
	profile.Favorites = append(profile.Favorites, favorite)
	s.profiles[userID] = profile
	return nil
}

// RemoveFavorite detaches a favorite, ignoring absent ones.
func (s *MemoryStore) RemoveFavorite(ctx context.Context, userID string, favoriteType domain.FavoriteType, name string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	kept := profile.Favorites[:0]
	for _, existing := range profile.Favorites {
		if existing.Type == favoriteType && existing.Name == name {
			continue
		}
		kept = append(kept, existing)
	}
	profile.Favorites = kept
	s.profiles[userID] = profile
	return nil
}

func copyProfile(profile domain.UserProfile) domain.UserProfile {
	out := profile
	out.Favorites = append([]domain.Favorite(nil), profile.Favorites...)
	return out
}
