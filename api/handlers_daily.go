package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/chromix/api/datastore"
	"github.com/chromix/api/models"
	"github.com/chromix/api/palette"
)

func dailyColorResponse(dc models.DailyColor) models.DailyColorResponse {
	return models.DailyColorResponse{
		Date: dc.Date.Format("2006-01-02"),
		RGB:  models.RGBString(dc.R, dc.G, dc.B),
		Hex:  palette.RGBToHex(dc.R, dc.G, dc.B),
	}
}

// GET /v1/colors/daily?format=
func (app *Application) getDailyColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}
	f, err := formatParam(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dailyColor, err := app.DailyColorRepo.GetToday()
	var noRows datastore.NoRowsError
	if errors.As(err, &noRows) && app.DailyColorMaker != nil {
		// the scheduler only runs at midnight, so the first request of a
		// fresh deployment creates today's color
		dailyColor, _, err = app.DailyColorMaker.Generate()
	}
	if errors.As(err, &noRows) {
		app.notFound(w, r, errors.New("no featured color for today"))
		return
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	resp := dailyColorResponse(dailyColor)
	p, err := app.buildPalette(resp.Hex, f)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	resp.Palette = &p

	writeJSON(w, http.StatusOK, resp)
}

// GET /v1/colors/daily/all
func (app *Application) getAllDailyColors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	dailyColors, err := app.DailyColorRepo.GetAll()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	responses := make([]models.DailyColorResponse, 0, len(dailyColors))
	for _, dc := range dailyColors {
		responses = append(responses, dailyColorResponse(dc))
	}

	writeJSON(w, http.StatusOK, responses)
}

// POST /v1/admin/colors/generate
func (app *Application) generateDailyColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}
	if app.DailyColorMaker == nil {
		app.internalServerError(w, r, errors.New("daily color generation is not configured"))
		return
	}

	dailyColor, created, err := app.DailyColorMaker.Generate()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, dailyColorResponse(dailyColor))
}

// DELETE /v1/admin/colors/daily?id=
func (app *Application) deleteDailyColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		app.requireMethod(w, r, http.MethodDelete, fmt.Errorf("DELETE method required for this endpoint"))
		return
	}

	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		app.badRequest(w, r, fmt.Errorf("id must be an integer: %v", err))
		return
	}

	if err := app.DailyColorRepo.Delete(id); err != nil {
		var noRows datastore.NoRowsError
		if errors.As(err, &noRows) {
			app.notFound(w, r, fmt.Errorf("no featured color with id %d", id))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
