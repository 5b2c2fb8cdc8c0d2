package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chromix/api/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.notFound(w, r, fmt.Errorf("no route for %s", r.URL.Path))
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Chromix Palette API")
}

// POST /v1/auth/signup
func (app *Application) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}

	userSignup := &models.UserSignupRequest{}
	if err := json.NewDecoder(r.Body).Decode(userSignup); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if len(userSignup.Username) == 0 {
		app.badRequest(w, r, errors.New("username is required"))
		return
	}
	if strings.ContainsRune(userSignup.Username, ' ') {
		app.badRequest(w, r, errors.New("username cannot contain spaces"))
		return
	}
	if len(userSignup.Password) < 8 {
		app.badRequest(w, r, errors.New("password must be at least 8 characters"))
		return
	}

	newUser, err := models.NewUser(*userSignup)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if _, err := app.UserRepo.GetUserByEmail(newUser.Email); err == nil {
		app.userAlreadyExists(w, r, err)
		return
	}
	if _, err := app.UserRepo.GetUserByUsername(newUser.Username); err == nil {
		app.badRequest(w, r, errors.New("username already taken"))
		return
	}

	storedUser, err := app.UserRepo.Create(newUser)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, storedUser)
}

func (app *Application) signToken(user models.User, fingerprint, scope, tokenType string, expiry time.Time) (string, error) {
	return models.SignJWT(models.NewJWTClaims(user, fingerprint, scope, tokenType, expiry), app.Config.JwtSecret)
}

func (app *Application) setTokenCookie(w http.ResponseWriter, name, value string, expiry time.Time) {
	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  expiry,
	})
}

// POST /v1/auth/login
func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}

	creds := &models.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(creds); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}
	if creds.DeviceFingerprint == "" {
		app.badRequest(w, r, errors.New("deviceFingerprint is required"))
		return
	}

	user, err := app.UserRepo.ValidateAndGetUser(*creds)
	if err != nil {
		app.invalidCredentials(w, r, err)
		return
	}
	if !user.Approved {
		app.invalidCredentials(w, r, errors.New("user not yet approved"))
		return
	}

	refreshExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtRefreshDuration))
	device := models.UserDevice{
		UserID:      user.UserID,
		Fingerprint: creds.DeviceFingerprint,
		DeviceData:  r.Header.Get("User-Agent"),
		Expiry:      refreshExpiry,
	}
	if err := app.UserRepo.CreateDevice(device); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	accessExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtAccessDuration))
	accessToken, err := app.signToken(user, creds.DeviceFingerprint, models.ScopeAuthentication, models.JWT.ACCESS_COOKIE_NAME, accessExpiry)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	refreshToken, err := app.signToken(user, creds.DeviceFingerprint, models.ScopeRefresh, models.JWT.REFRESH_COOKIE_NAME, refreshExpiry)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.setTokenCookie(w, models.JWT.ACCESS_COOKIE_NAME, accessToken, accessExpiry)
	app.setTokenCookie(w, models.JWT.REFRESH_COOKIE_NAME, refreshToken, refreshExpiry)

	writeJSON(w, http.StatusOK, models.JWTRefreshResponse{
		Expiry:  refreshExpiry,
		Refresh: refreshToken,
	})
}

// GET /v1/users/me
func (app *Application) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// PUT /v1/users/me/update
func (app *Application) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.requireMethod(w, r, http.MethodPut, ErrPUT)
		return
	}

	currentUser, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	updateReq := &models.UserUpdateRequest{}
	if err := json.NewDecoder(r.Body).Decode(updateReq); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}
	if updateReq.Username != "" {
		currentUser.Username = updateReq.Username
	}
	if updateReq.Email != "" {
		currentUser.Email = updateReq.Email
	}

	updatedUser, err := app.UserRepo.Update(currentUser)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updatedUser)
}

// GET /v1/users
func (app *Application) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := app.UserRepo.GetAllUsers()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
