package api

import (
	"github.com/chromix/api/datastore"
	"github.com/chromix/api/models"
	"github.com/chromix/api/palette"
)

type Config struct {
	HTTPPort           string
	DatabaseType       string
	DatabaseHost       string
	DatabaseUser       string
	DatabasePassword   string
	DatabaseName       string
	SSLMode            string
	JwtSecret          string
	JwtAccessDuration  int // seconds
	JwtRefreshDuration int // seconds
	JwtDomain          string
	AllowedOrigins     []string
	DevMode            bool
	MetricsPath        string
	ShareBaseURL       string
	QRSize             int
}

// Engine is the narrow palette interface the handlers depend on
type Engine interface {
	ComputePalette(hex string) (palette.Palette, error)
	FormatColor(hex string, f palette.Format) string
	ScoreColor(hex string) (palette.HarmonyScore, error)
}

// DailyColorGenerator creates today's featured color on demand
type DailyColorGenerator interface {
	Generate() (models.DailyColor, bool, error)
}

type Application struct {
	Config          Config
	Engine          Engine
	UserRepo        datastore.UserRepository
	FavoriteRepo    datastore.FavoriteRepository
	PreferenceRepo  datastore.PreferenceRepository
	DailyColorRepo  datastore.DailyColorRepository
	DailyColorMaker DailyColorGenerator
}
