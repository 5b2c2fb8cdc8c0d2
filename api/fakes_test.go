package api

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/chromix/api/datastore"
	"github.com/chromix/api/models"
	"github.com/chromix/api/palette"
)

func noRows() error {
	return datastore.NoRowsError{NoRows: true, Err: sql.ErrNoRows}
}

type fakeUsers struct {
	mu      sync.Mutex
	users   map[string]models.User
	devices map[string]models.UserDevice
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		users:   map[string]models.User{},
		devices: map[string]models.UserDevice{},
	}
}

func (f *fakeUsers) Create(user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.UserID] = user
	return user, nil
}

func (f *fakeUsers) Get(userID string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return models.User{}, noRows()
	}
	return user, nil
}

func (f *fakeUsers) find(match func(models.User) bool) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if match(user) {
			return user, nil
		}
	}
	return models.User{}, noRows()
}

func (f *fakeUsers) GetUserByEmail(email string) (models.User, error) {
	return f.find(func(u models.User) bool { return u.Email == email })
}

func (f *fakeUsers) GetUserByUsername(username string) (models.User, error) {
	return f.find(func(u models.User) bool { return u.Username == username })
}

func (f *fakeUsers) DeleteUserByID(userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, userID)
	return nil
}

func (f *fakeUsers) Update(user models.User) (models.User, error) {
	return f.Create(user)
}

func (f *fakeUsers) ValidateAndGetUser(creds models.Credentials) (models.User, error) {
	user, err := f.GetUserByEmail(creds.Email)
	if err != nil {
		return models.User{}, err
	}
	if err := user.CheckPassword(creds.Password); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (f *fakeUsers) GetAllUsers() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, user := range f.users {
		out = append(out, user)
	}
	return out, nil
}

func (f *fakeUsers) CreateDevice(device models.UserDevice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.devices[device.UserID+"/"+device.Fingerprint] = device
	return nil
}

func (f *fakeUsers) GetDeviceByFingerprint(userID, fingerprint string) (models.UserDevice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	device, ok := f.devices[userID+"/"+fingerprint]
	if !ok {
		return models.UserDevice{}, noRows()
	}
	return device, nil
}

func (f *fakeUsers) DeleteDevice(deviceID string) error { return nil }

type fakeFavorites struct {
	mu     sync.Mutex
	colors map[string][]string
}

func newFakeFavorites() *fakeFavorites {
	return &fakeFavorites{colors: map[string][]string{}}
}

func (f *fakeFavorites) List(userID string) ([]models.Favorite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Favorite{}
	for i, c := range f.colors[userID] {
		out = append(out, models.Favorite{UserID: userID, Color: c, Position: i + 1})
	}
	return out, nil
}

func (f *fakeFavorites) IsFavorite(userID, color string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.colors[userID] {
		if c == color {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavorites) Toggle(userID, color string) (bool, error) {
	removed, _ := f.Remove(userID, color)
	if removed {
		return false, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.colors[userID] = append(f.colors[userID], color)
	return true, nil
}

func (f *fakeFavorites) Remove(userID, color string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	colors := f.colors[userID]
	for i, c := range colors {
		if c == color {
			f.colors[userID] = append(colors[:i:i], colors[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakePreferences struct {
	mu    sync.Mutex
	prefs map[string]models.Preference
}

func (f *fakePreferences) Get(userID string) (models.Preference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pref, ok := f.prefs[userID]
	if !ok {
		return models.Preference{}, noRows()
	}
	return pref, nil
}

func (f *fakePreferences) SetTheme(userID, theme string) (models.Preference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pref := models.Preference{UserID: userID, Theme: theme, UpdatedAt: time.Now()}
	f.prefs[userID] = pref
	return pref, nil
}

type fakeDailyColors struct {
	mu     sync.Mutex
	colors []models.DailyColor
}

func (f *fakeDailyColors) Create(dc models.DailyColor) (models.DailyColor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dc.ID = len(f.colors) + 1
	f.colors = append(f.colors, dc)
	return dc, nil
}

func (f *fakeDailyColors) GetByDate(date time.Time) (models.DailyColor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	day := date.Format("2006-01-02")
	for _, dc := range f.colors {
		if dc.Date.Format("2006-01-02") == day {
			return dc, nil
		}
	}
	return models.DailyColor{}, noRows()
}

func (f *fakeDailyColors) GetToday() (models.DailyColor, error) {
	return f.GetByDate(time.Now())
}

func (f *fakeDailyColors) GetAll() ([]models.DailyColor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.DailyColor(nil), f.colors...), nil
}

func (f *fakeDailyColors) Delete(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, dc := range f.colors {
		if dc.ID == id {
			f.colors = append(f.colors[:i:i], f.colors[i+1:]...)
			return nil
		}
	}
	return noRows()
}

// fakeGenerator stores #6366F1 for today the first time it is called
type fakeGenerator struct {
	repo *fakeDailyColors
}

func (g fakeGenerator) Generate() (models.DailyColor, bool, error) {
	if dc, err := g.repo.GetToday(); err == nil {
		return dc, false, nil
	}
	dc, err := g.repo.Create(models.DailyColor{
		Date: datastore.NormalizeDate(time.Now()),
		R:    99,
		G:    102,
		B:    241,
	})
	return dc, true, err
}

type testEnv struct {
	app        *Application
	handler    http.Handler
	users      *fakeUsers
	favorites  *fakeFavorites
	dailyColor *fakeDailyColors
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := newFakeUsers()
	favorites := newFakeFavorites()
	daily := &fakeDailyColors{}
	app := &Application{
		Config: Config{
			JwtSecret:          "test-secret",
			JwtAccessDuration:  900,
			JwtRefreshDuration: 3600,
			AllowedOrigins:     []string{"https://chromix.example"},
			ShareBaseURL:       "https://chromix.example/",
			QRSize:             palette.DefaultQRSize,
		},
		Engine:          palette.Engine{},
		UserRepo:        users,
		FavoriteRepo:    favorites,
		PreferenceRepo:  &fakePreferences{prefs: map[string]models.Preference{}},
		DailyColorRepo:  daily,
		DailyColorMaker: fakeGenerator{repo: daily},
	}
	return &testEnv{
		app:        app,
		handler:    app.BuildRoutes(http.NewServeMux()),
		users:      users,
		favorites:  favorites,
		dailyColor: daily,
	}
}

func (env *testEnv) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}
