package models

import (
	"fmt"
	"time"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preference holds per-user display settings
type Preference struct {
	UserID    string    `json:"userId" db:"user_id"`
	Theme     string    `json:"theme" db:"theme"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ValidateTheme accepts only the light and dark themes
func ValidateTheme(theme string) error {
	switch theme {
	case ThemeLight, ThemeDark:
		return nil
	default:
		return fmt.Errorf("theme must be %q or %q, got %q", ThemeLight, ThemeDark, theme)
	}
}
