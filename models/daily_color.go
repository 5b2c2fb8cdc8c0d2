package models

import "time"

// DailyColor is the featured base color for one day
type DailyColor struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	R         int       `json:"r"`
	G         int       `json:"g"`
	B         int       `json:"b"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyColorResponse is the simplified response for API endpoints
type DailyColorResponse struct {
	Date    string           `json:"date"`
	RGB     string           `json:"rgb"`
	Hex     string           `json:"hex"`
	Palette *PaletteResponse `json:"palette,omitempty"`
}
