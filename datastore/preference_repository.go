package datastore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/chromix/api/models"
	_ "github.com/lib/pq"
)

type PreferenceRepository interface {
	Get(userID string) (models.Preference, error)
	SetTheme(userID, theme string) (models.Preference, error)
}

type PreferenceDatabase struct {
	database *sql.DB
}

func NewPreferenceDatabase(db *sql.DB) (PreferenceDatabase, error) {
	return PreferenceDatabase{database: db}, nil
}

// Get returns the stored preferences or NoRowsError when none were saved
func (pdb PreferenceDatabase) Get(userID string) (models.Preference, error) {
	var pref models.Preference
	err := pdb.database.QueryRow(
		`SELECT user_id, theme, updated_at FROM preferences WHERE user_id = $1`,
		userID,
	).Scan(&pref.UserID, &pref.Theme, &pref.UpdatedAt)

	switch err {
	case sql.ErrNoRows:
		return models.Preference{}, NoRowsError{true, err}
	case nil:
		return pref, nil
	default:
		return models.Preference{}, err
	}
}

// SetTheme upserts the user's theme
func (pdb PreferenceDatabase) SetTheme(userID, theme string) (models.Preference, error) {
	pref := models.Preference{UserID: userID, Theme: theme, UpdatedAt: time.Now()}
	_, err := pdb.database.Exec(`
		INSERT INTO preferences (user_id, theme, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET theme = $2, updated_at = $3`,
		pref.UserID, pref.Theme, pref.UpdatedAt,
	)
	if err != nil {
		return models.Preference{}, fmt.Errorf("failed to save theme: %v", err)
	}
	return pref, nil
}
