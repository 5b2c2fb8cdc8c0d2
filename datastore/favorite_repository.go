package datastore

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/chromix/api/models"
	_ "github.com/lib/pq"
)

// FavoriteRepository stores each user's saved colors. Colors are unique per
// user and listed in the order they were added.
type FavoriteRepository interface {
	List(userID string) ([]models.Favorite, error)
	IsFavorite(userID, color string) (bool, error)
	Toggle(userID, color string) (bool, error)
	Remove(userID, color string) (bool, error)
}

type FavoriteDatabase struct {
	database *sql.DB
}

func NewFavoriteDatabase(db *sql.DB) (FavoriteDatabase, error) {
	return FavoriteDatabase{database: db}, nil
}

// List returns the user's favorites in insertion order
func (fdb FavoriteDatabase) List(userID string) ([]models.Favorite, error) {
	sqlStatement := `
		SELECT favorite_id, user_id, color, position, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY position ASC, created_at ASC`

	rows, err := fdb.database.Query(sqlStatement, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %v", err)
	}
	defer rows.Close()

	favorites := []models.Favorite{}
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.FavoriteID, &f.UserID, &f.Color, &f.Position, &f.CreatedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}

// IsFavorite reports whether color is saved for the user
func (fdb FavoriteDatabase) IsFavorite(userID, color string) (bool, error) {
	var exists bool
	err := fdb.database.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND color = $2)`,
		userID, color,
	).Scan(&exists)
	return exists, err
}

// Toggle adds color when absent and removes it when present. It returns true
// when the color is saved afterwards. A concurrent toggle that saved the color
// first is not an error: both callers see it saved.
func (fdb FavoriteDatabase) Toggle(userID, color string) (bool, error) {
	tx, err := fdb.database.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM favorites WHERE user_id = $1 AND color = $2`, userID, color)
	if err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %v", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	if removed == 0 {
		fav := models.NewFavorite(userID, color)
		res, err = tx.Exec(`
			INSERT INTO favorites (favorite_id, user_id, color, position, created_at)
			VALUES ($1, $2, $3,
				(SELECT COALESCE(MAX(position), 0) + 1 FROM favorites WHERE user_id = $2),
				$4)
			ON CONFLICT (user_id, color) DO NOTHING`,
			fav.FavoriteID, fav.UserID, fav.Color, fav.CreatedAt,
		)
		if err != nil {
			return false, fmt.Errorf("failed to add favorite: %v", err)
		}
		if added, err := res.RowsAffected(); err != nil {
			return false, err
		} else if added == 0 {
			log.Printf("favorite %s for user %s was saved concurrently", color, userID)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return removed == 0, nil
}

// Remove deletes color from the user's favorites, reporting whether it was there
func (fdb FavoriteDatabase) Remove(userID, color string) (bool, error) {
	res, err := fdb.database.Exec(`DELETE FROM favorites WHERE user_id = $1 AND color = $2`, userID, color)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %v", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
