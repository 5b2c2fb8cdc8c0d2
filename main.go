package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/chromix/api/api"
	"github.com/chromix/api/datastore"
	"github.com/chromix/api/migrations"
	"github.com/chromix/api/palette"
	"github.com/chromix/api/scheduler"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := api.Config{
		HTTPPort:           getEnv("HTTP_PORT", ":8080"),
		DatabaseType:       getEnv("DB_TYPE", "postgres"),
		DatabaseHost:       getEnv("DB_HOST", "localhost"),
		DatabaseUser:       getEnv("DB_USER", "postgres"),
		DatabasePassword:   getEnv("DB_PASSWORD", ""),
		DatabaseName:       getEnv("DB_NAME", "chromix"),
		SSLMode:            getEnv("SSL_MODE", "disable"),
		JwtSecret:          getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtAccessDuration:  getEnvInt("JWT_ACCESS_DURATION", 900),     // 15 minutes
		JwtRefreshDuration: getEnvInt("JWT_REFRESH_DURATION", 604800), // 7 days
		JwtDomain:          getEnv("JWT_DOMAIN", ""),
		AllowedOrigins:     getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:            getEnvBool("DEV_MODE", true),
		MetricsPath:        getEnv("METRICS_PATH", "/metrics"),
		ShareBaseURL:       getEnv("SHARE_BASE_URL", "http://localhost:5173/"),
		QRSize:             getEnvInt("QR_SIZE", palette.DefaultQRSize),
	}

	if !config.DevMode && config.JwtSecret == "your-secret-key-change-this" {
		log.Fatal("JWT_SECRET must be set outside dev mode")
	}

	connStr := datastore.BuildDBConnStr(
		config.DatabaseHost,
		config.DatabasePassword,
		config.DatabaseUser,
		config.DatabaseName,
		config.SSLMode,
	)

	dbConn, err := datastore.NewDB(config.DatabaseType, connStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	log.Println("Running database migrations...")
	if err := migrations.RunMigrations(dbConn); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo, err := datastore.NewUserDatabase(dbConn)
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}
	favoriteRepo, err := datastore.NewFavoriteDatabase(dbConn)
	if err != nil {
		log.Fatalf("Failed to create favorite repository: %v", err)
	}
	preferenceRepo, err := datastore.NewPreferenceDatabase(dbConn)
	if err != nil {
		log.Fatalf("Failed to create preference repository: %v", err)
	}
	dailyColorRepo, err := datastore.NewDailyColorDatabase(dbConn)
	if err != nil {
		log.Fatalf("Failed to create daily color repository: %v", err)
	}

	colorScheduler := scheduler.NewScheduler(dailyColorRepo)
	colorScheduler.Start()
	defer colorScheduler.Stop()

	app := &api.Application{
		Config:          config,
		Engine:          palette.Engine{},
		UserRepo:        userRepo,
		FavoriteRepo:    favoriteRepo,
		PreferenceRepo:  preferenceRepo,
		DailyColorRepo:  dailyColorRepo,
		DailyColorMaker: colorScheduler,
	}

	log.Println("Chromix Palette API starting...")
	if err := app.Serve(http.NewServeMux()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
