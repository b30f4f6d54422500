package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // BOOKING_TIMEZONE must resolve on hosts without zoneinfo

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	HTTPAddr          string
	LogLevel          string
	DBDSN             string
	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int

	// Booking policy
	WorkingHoursStart string // Format: HH:MM
	WorkingHoursEnd   string // Format: HH:MM
	Location          *time.Location

	LoginRatePerMinute int
}

// DBConfig is the subset of configuration needed by tools that only talk to the database.
type DBConfig struct {
	IsProduction bool
	LogLevel     string
	DBDSN        string
}

// LoadDB loads configuration from .env (optional) and environment variables,
// requiring only DB_DSN.
func LoadDB() (*DBConfig, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded, using process environment")
	}

	cfg := &DBConfig{}

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	return cfg, nil
}

// Load loads the full server configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	base, err := LoadDB()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		IsProduction: base.IsProduction,
		LogLevel:     base.LogLevel,
		DBDSN:        base.DBDSN,
	}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// JWT secret is required for signing tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// JWT access token TTL, parse as time.Duration (e.g. "15m", "1h").
	ttlStr := getEnv("JWT_ACCESS_TOKEN_TTL", "15m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_TTL: %w", err)
	}
	cfg.JWTAccessTokenTTL = ttl

	// Bcrypt cost for password hashing (default: 12)
	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	// Bookable hours, inclusive on both ends.
	cfg.WorkingHoursStart = getEnv("WORKING_HOURS_START", "07:00")
	cfg.WorkingHoursEnd = getEnv("WORKING_HOURS_END", "18:00")

	// Calendar "today" is evaluated in this zone.
	tz := getEnv("BOOKING_TIMEZONE", "Europe/Copenhagen")
	cfg.Location, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE: %w", err)
	}

	cfg.LoginRatePerMinute, err = getEnvAsInt("LOGIN_RATE_PER_MINUTE", 10)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_PER_MINUTE: %w", err)
	}
	if cfg.LoginRatePerMinute <= 0 {
		return nil, fmt.Errorf("invalid LOGIN_RATE_PER_MINUTE: must be positive")
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
