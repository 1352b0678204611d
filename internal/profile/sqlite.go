package profile

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ticket-search-service/internal/domain"
)

// SQLiteStore persists profiles in sqlite. Favorites live in their own
// table keyed by (user_id, type, name).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an open sqlite connection and creates the
// schema if it does not exist yet.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	store := &SQLiteStore{db: db}
	if err := store.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS profiles (
		user_id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS favorites (
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		name TEXT NOT NULL,
		metadata TEXT,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, type, name),
		FOREIGN KEY (user_id) REFERENCES profiles(user_id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_favorites_user_id ON favorites(user_id);
	`

	_, err := s.db.Exec(query)
	return err
}

// Get loads a profile and its favorites.
func (s *SQLiteStore) Get(ctx context.Context, userID string) (domain.UserProfile, error) {
	var profile domain.UserProfile

	err := s.db.QueryRowContext(ctx,
		`SELECT user_id, email FROM profiles WHERE user_id = ?`, userID,
	).Scan(&profile.UserID, &profile.Email)
	if err == sql.ErrNoRows {
		return domain.UserProfile{}, domain.ErrProfileNotFound
	}
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	favorites, err := s.listFavorites(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, err
	}
	profile.Favorites = favorites
	return profile, nil
}

func (s *SQLiteStore) listFavorites(ctx context.Context, userID string) ([]domain.Favorite, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT type, name, COALESCE(metadata, '')
		 FROM favorites
		 WHERE user_id = ?
		 ORDER BY created_at ASC, type ASC, name ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var favorite domain.Favorite
		if err := rows.Scan(&favorite.Type, &favorite.Name, &favorite.Metadata); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, favorite)
	}
	return favorites, rows.Err()
}

// Create inserts a profile row plus any favorites it already carries.
func (s *SQLiteStore) Create(ctx context.Context, profile domain.UserProfile) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO profiles (user_id, email, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		profile.UserID, profile.Email, now, now)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("profile %q already exists", profile.UserID)
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	for _, favorite := range profile.Favorites {
		_, err = tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO favorites (user_id, type, name, metadata, created_at) VALUES (?, ?, ?, ?, ?)`,
			profile.UserID, favorite.Type, favorite.Name, favorite.Metadata, now)
		if err != nil {
			return fmt.Errorf("failed to insert favorite: %w", err)
		}
	}

	return tx.Commit()
}

// AddFavorite attaches a favorite; duplicates are ignored.
func (s *SQLiteStore) AddFavorite(ctx context.Context, userID string, favorite domain.Favorite) error {
	if err := s.profileExists(ctx, userID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO favorites (user_id, type, name, metadata, created_at) VALUES (?, ?, ?, ?, ?)`,
		userID, favorite.Type, favorite.Name, favorite.Metadata, time.Now())
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return s.touch(ctx, userID)
}

// RemoveFavorite detaches a favorite; absent rows are ignored.
func (s *SQLiteStore) RemoveFavorite(ctx context.Context, userID string, favoriteType domain.FavoriteType, name string) error {
	if err := s.profileExists(ctx, userID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND type = ? AND name = ?`,
		userID, favoriteType, name)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return s.touch(ctx, userID)
}

func (s *SQLiteStore) profileExists(ctx context.Context, userID string) error {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM profiles WHERE user_id = ?`, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return domain.ErrProfileNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check profile: %w", err)
	}
	return nil
}

func (s *SQLiteStore) touch(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE profiles SET updated_at = ? WHERE user_id = ?`, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to touch profile: %w", err)
	}
	return nil
}
