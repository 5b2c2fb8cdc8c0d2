package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is one saved color. A user's favorites are unique by color and
// ordered by Position.
type Favorite struct {
	FavoriteID string    `json:"favoriteId" db:"favorite_id"`
	UserID     string    `json:"userId" db:"user_id"`
	Color      string    `json:"color" db:"color"`
	Position   int       `json:"position" db:"position"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type FavoriteRequest struct {
	Color string `json:"color"`
}

// FavoriteStatus answers whether a single color is saved
type FavoriteStatus struct {
	Color    string `json:"color"`
	Favorite bool   `json:"favorite"`
}

// FavoriteToggleResponse reports whether the color ended up saved
type FavoriteToggleResponse struct {
	Color     string     `json:"color"`
	Favorite  bool       `json:"favorite"`
	Favorites []Favorite `json:"favorites"`
}

func NewFavorite(userID, color string) Favorite {
	return Favorite{
		FavoriteID: uuid.New().String(),
		UserID:     userID,
		Color:      color,
		CreatedAt:  time.Now(),
	}
}
