package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	cleanedRequest := cleanOrigin(origin)

	// Allow localhost for development
	if localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if cleanOrigin(allowed) == cleanedRequest {
			return true
		}
	}

	return false
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, app Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = r.Header.Get("Referer")
		}

		if origin == "" || isAllowedOrigin(origin, app.Config.AllowedOrigins) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

func (app Application) BuildRoutes(mux *http.ServeMux) *http.ServeMux {
	finalMux := http.NewServeMux()

	// Public endpoints
	mux.HandleFunc("/", app.home)
	mux.HandleFunc("/v1/auth/signup", app.signup)
	mux.HandleFunc("/v1/auth/login", app.login)

	// Palette engine
	mux.HandleFunc("/v1/palette", app.getPalette)
	mux.HandleFunc("/v1/palette/schemes/{kind}", app.getScheme)
	mux.HandleFunc("/v1/palette/export", app.exportPalette)
	mux.HandleFunc("/v1/palette/copy", app.copyPalette)
	mux.HandleFunc("/v1/palette/share", app.sharePalette)
	mux.HandleFunc("/v1/palette/shared", app.openSharedPalette)
	mux.HandleFunc("/v1/palette/qr", app.paletteQR)
	mux.HandleFunc("/v1/colors/format", app.formatColor)
	mux.HandleFunc("/v1/colors/convert", app.convertColor)
	mux.HandleFunc("/v1/colors/score", app.scoreColor)
	mux.HandleFunc("/v1/colors/invert", app.invertColor)
	mux.HandleFunc("/v1/colors/daily", app.getDailyColor)
	mux.HandleFunc("/v1/colors/daily/all", app.getAllDailyColors)

	// Authenticated endpoints
	mux.HandleFunc("/v1/users/me", app.authenticate(app.getCurrentUser))
	mux.HandleFunc("/v1/users/me/update", app.authenticate(app.updateCurrentUser))
	mux.HandleFunc("/v1/favorites", app.authenticate(app.favorites))
	mux.HandleFunc("/v1/favorites/toggle", app.authenticate(app.toggleFavorite))
	mux.HandleFunc("/v1/preferences/theme", app.authenticate(app.theme))

	// Admin endpoints
	mux.HandleFunc("/v1/users", app.verifyPermissions(app.getAllUsers))
	mux.HandleFunc("/v1/admin/colors/generate", app.verifyPermissions(app.generateDailyColor))
	mux.HandleFunc("/v1/admin/colors/daily", app.verifyPermissions(app.deleteDailyColor))

	metricsPath := app.Config.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	mux.Handle(metricsPath, promhttp.Handler())

	// Wrap entire mux with CORS and origins check
	finalMux.Handle("/", logRequests(wrapMuxWithCorsAndOrigins(mux, app)))

	return finalMux
}
