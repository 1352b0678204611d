package domain

// FavoriteType distinguishes what kind of entity a favorite points at.
type FavoriteType string

const (
	FavoriteTeam   FavoriteType = "team"
	FavoriteLeague FavoriteType = "league"
)

// Favorite is a team or league a user follows.
type Favorite struct {
	Type     FavoriteType `json:"type"`
	Name     string       `json:"name"`
	Metadata string       `json:"metadata,omitempty"`
}

// UserProfile holds per-user state persisted across sessions.
type UserProfile struct {
	UserID    string     `json:"user_id"`
	Email     string     `json:"email"`
	Favorites []Favorite `json:"favorites"`
}

// UserContext identifies the authenticated caller of a request.
type UserContext struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
