package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/chromix/api/datastore"
	"github.com/chromix/api/models"
	"github.com/chromix/api/palette"
)

// GET, DELETE /v1/favorites. GET with ?color= reports whether that color is saved.
func (app *Application) favorites(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		app.listFavorites(w, r)
	case http.MethodDelete:
		app.removeFavorite(w, r)
	default:
		app.requireMethod(w, r, "GET, DELETE", fmt.Errorf("GET or DELETE method required for this endpoint"))
	}
}

func (app *Application) listFavorites(w http.ResponseWriter, r *http.Request) {
	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	if r.URL.Query().Get("color") != "" {
		color, err := colorParam(r)
		if err != nil {
			app.invalidColor(w, r, err)
			return
		}
		saved, err := app.FavoriteRepo.IsFavorite(user.UserID, color)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.FavoriteStatus{Color: color, Favorite: saved})
		return
	}

	favorites, err := app.FavoriteRepo.List(user.UserID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, favorites)
}

func (app *Application) removeFavorite(w http.ResponseWriter, r *http.Request) {
	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	if r.URL.Query().Get("color") == "" {
		app.invalidColor(w, r, errors.New("color is required"))
		return
	}
	color, err := colorParam(r)
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	removed, err := app.FavoriteRepo.Remove(user.UserID, color)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !removed {
		app.notFound(w, r, fmt.Errorf("%s is not a favorite", color))
		return
	}
	MetricFavoriteToggles.WithLabelValues("removed").Inc()

	favorites, err := app.FavoriteRepo.List(user.UserID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, favorites)
}

// POST /v1/favorites/toggle
func (app *Application) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	req := &models.FavoriteRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}
	color, err := palette.NormalizeHex(strings.TrimSpace(req.Color))
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	saved, err := app.FavoriteRepo.Toggle(user.UserID, color)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	action := "removed"
	if saved {
		action = "added"
	}
	MetricFavoriteToggles.WithLabelValues(action).Inc()

	favorites, err := app.FavoriteRepo.List(user.UserID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.FavoriteToggleResponse{
		Color:     color,
		Favorite:  saved,
		Favorites: favorites,
	})
}

// GET, PUT /v1/preferences/theme
func (app *Application) theme(w http.ResponseWriter, r *http.Request) {
	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	switch r.Method {
	case http.MethodGet:
		pref, err := app.PreferenceRepo.Get(user.UserID)
		if _, noRows := err.(datastore.NoRowsError); noRows {
			pref = models.Preference{UserID: user.UserID, Theme: models.ThemeLight}
		} else if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, pref)

	case http.MethodPut:
		req := &models.ThemeRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			app.badJSONRequest(w, r, err)
			return
		}
		if err := models.ValidateTheme(req.Theme); err != nil {
			app.badRequest(w, r, err)
			return
		}
		pref, err := app.PreferenceRepo.SetTheme(user.UserID, req.Theme)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, pref)

	default:
		app.requireMethod(w, r, "GET, PUT", fmt.Errorf("GET or PUT method required for this endpoint"))
	}
}
