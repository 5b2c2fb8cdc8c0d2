package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/chromix/api/models"
	"github.com/chromix/api/palette"
)

// colorParam reads the color query parameter. A missing color selects the
// default base color and a bare RRGGBB gets its leading '#'.
func colorParam(r *http.Request) (string, error) {
	value := strings.TrimSpace(r.URL.Query().Get("color"))
	if value == "" {
		return palette.DefaultColor, nil
	}
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	return palette.NormalizeHex(value)
}

func formatParam(r *http.Request) (palette.Format, error) {
	f := palette.ParseFormat(r.URL.Query().Get("format"))
	if !f.Valid() {
		return "", fmt.Errorf("unknown format %q, expected one of %v", f, palette.Formats)
	}
	return f, nil
}

// readColorAndFormat handles the shared GET, color and format checks. It
// writes the error response itself and reports whether to continue.
func (app *Application) readColorAndFormat(w http.ResponseWriter, r *http.Request) (string, palette.Format, bool) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return "", "", false
	}
	color, err := colorParam(r)
	if err != nil {
		app.invalidColor(w, r, err)
		return "", "", false
	}
	f, err := formatParam(r)
	if err != nil {
		app.badRequest(w, r, err)
		return "", "", false
	}
	return color, f, true
}

func (app *Application) schemeResponse(s palette.Scheme, f palette.Format) models.SchemeResponse {
	formatted := make([]string, len(s.Colors))
	for i, c := range s.Colors {
		formatted[i] = app.Engine.FormatColor(c, f)
	}
	MetricSchemesGenerated.WithLabelValues(string(s.Kind)).Inc()
	return models.SchemeResponse{
		Kind:      s.Kind,
		Name:      s.Name,
		Colors:    s.Colors,
		Formatted: formatted,
	}
}

func (app *Application) buildPalette(color string, f palette.Format) (models.PaletteResponse, error) {
	p, err := app.Engine.ComputePalette(color)
	if err != nil {
		return models.PaletteResponse{}, err
	}
	score, err := app.Engine.ScoreColor(color)
	if err != nil {
		return models.PaletteResponse{}, err
	}

	resp := models.PaletteResponse{
		Base:    p.Base,
		Format:  f,
		Score:   score,
		Schemes: make([]models.SchemeResponse, 0, len(p.Schemes)),
	}
	for _, s := range p.Schemes {
		resp.Schemes = append(resp.Schemes, app.schemeResponse(s, f))
	}
	return resp, nil
}

// GET /v1/palette?color=%23RRGGBB&format=hex
func (app *Application) getPalette(w http.ResponseWriter, r *http.Request) {
	color, f, ok := app.readColorAndFormat(w, r)
	if !ok {
		return
	}

	resp, err := app.buildPalette(color, f)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GET /v1/palette/schemes/{kind}?color=
func (app *Application) getScheme(w http.ResponseWriter, r *http.Request) {
	color, f, ok := app.readColorAndFormat(w, r)
	if !ok {
		return
	}

	kind, err := palette.ParseKind(r.PathValue("kind"))
	if err != nil {
		app.notFound(w, r, err)
		return
	}

	p, err := app.Engine.ComputePalette(color)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	scheme, found := p.Scheme(kind)
	if !found {
		app.notFound(w, r, fmt.Errorf("scheme %q missing from palette", kind))
		return
	}

	writeJSON(w, http.StatusOK, app.schemeResponse(scheme, f))
}

// GET /v1/colors/format?color=&format=
func (app *Application) formatColor(w http.ResponseWriter, r *http.Request) {
	color, f, ok := app.readColorAndFormat(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, models.FormatResponse{
		Color:  color,
		Format: f,
		Value:  app.Engine.FormatColor(color, f),
	})
}

// GET /v1/colors/convert?color=
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	color, _, ok := app.readColorAndFormat(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, models.NewColorDetail(color))
}

// GET /v1/colors/score?color=
func (app *Application) scoreColor(w http.ResponseWriter, r *http.Request) {
	color, _, ok := app.readColorAndFormat(w, r)
	if !ok {
		return
	}

	score, err := app.Engine.ScoreColor(color)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ScoreResponse{
		Color:        color,
		HSL:          app.Engine.FormatColor(color, palette.FormatHSL),
		HarmonyScore: score,
	})
}

// GET /v1/colors/invert?color=
func (app *Application) invertColor(w http.ResponseWriter, r *http.Request) {
	color, _, ok := app.readColorAndFormat(w, r)
	if !ok {
		return
	}

	inverted, err := palette.InvertHex(color)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.InvertResponse{Color: color, Inverted: inverted})
}

// GET /v1/palette/export?color=
func (app *Application) exportPalette(w http.ResponseWriter, r *http.Request) {
	color, _, ok := app.readColorAndFormat(w, r)
	if !ok {
		return
	}

	p, err := app.Engine.ComputePalette(color)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="chromix-palette.css"`)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, palette.ExportCSS(p))
}

// GET /v1/palette/copy?color=&format=
func (app *Application) copyPalette(w http.ResponseWriter, r *http.Request) {
	color, f, ok := app.readColorAndFormat(w, r)
	if !ok {
		return
	}

	p, err := app.Engine.ComputePalette(color)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, strings.Join(palette.CopyAll(p, f), "\n"))
}

// GET /v1/palette/share?color=
func (app *Application) sharePalette(w http.ResponseWriter, r *http.Request) {
	color, _, ok := app.readColorAndFormat(w, r)
	if !ok {
		return
	}

	p, err := app.Engine.ComputePalette(color)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	shareURL, err := palette.ShareURL(app.Config.ShareBaseURL, p)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ShareResponse{Color: color, URL: shareURL})
}

// GET /v1/palette/shared?palette=%23RRGGBB,...
func (app *Application) openSharedPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	color, err := palette.ParseShared(r.URL.RawQuery)
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}
	f, err := formatParam(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	resp, err := app.buildPalette(color, f)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GET /v1/palette/qr?color=&size=
func (app *Application) paletteQR(w http.ResponseWriter, r *http.Request) {
	color, _, ok := app.readColorAndFormat(w, r)
	if !ok {
		return
	}

	size := app.Config.QRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 1000 {
			app.badRequest(w, r, fmt.Errorf("size must be between 1 and 1000, got %q", raw))
			return
		}
		size = parsed
	}

	p, err := app.Engine.ComputePalette(color)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	payload := palette.QRPayload(p)

	writeJSON(w, http.StatusOK, models.QRResponse{
		Color:    color,
		Payload:  payload,
		ImageURL: palette.QRImageURL(payload, size),
	})
}
