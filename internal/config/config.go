package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string
	DBDSN        string

	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int

	// TZOffsetMinutes is the fixed UTC offset of the operating zone. Booking
	// timestamps without explicit zone information are interpreted under it,
	// so it must be set explicitly and is only valid for zones without
	// daylight-saving transitions.
	TZOffsetMinutes int
	MinRentableGap  time.Duration
	EarlyCutoffHour int
	HorizonDays     int

	BookingAPIURL   string
	BookingAPIToken string

	RedisAddr string
	CacheTTL  time.Duration
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origins (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// JWT secret is required for signing tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// JWT access token TTL, parse as time.Duration (e.g. "15m", "1h").
	ttl, err := getEnvAsDuration("JWT_ACCESS_TOKEN_TTL", 8*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.JWTAccessTokenTTL = ttl

	// Bcrypt cost for password hashing (default: 12)
	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}

	// The operating-zone offset is required: naive booking timestamps cannot
	// be interpreted without it, and silently defaulting to UTC would shift
	// every pickup and return.
	offsetStr := os.Getenv("TZ_OFFSET_MINUTES")
	if offsetStr == "" {
		return nil, fmt.Errorf("TZ_OFFSET_MINUTES is required")
	}
	cfg.TZOffsetMinutes, err = strconv.Atoi(offsetStr)
	if err != nil {
		return nil, fmt.Errorf("TZ_OFFSET_MINUTES value %q is not a valid integer: %w", offsetStr, err)
	}
	if cfg.TZOffsetMinutes < -14*60 || cfg.TZOffsetMinutes > 14*60 {
		return nil, fmt.Errorf("TZ_OFFSET_MINUTES %d is outside the valid offset range", cfg.TZOffsetMinutes)
	}

	// Minimum rentable gap between bookings (default: 4h)
	cfg.MinRentableGap, err = getEnvAsDuration("MIN_RENTABLE_GAP", 4*time.Hour)
	if err != nil {
		return nil, err
	}

	// Local hour before which an overnight return does not block the day (default: 6)
	cfg.EarlyCutoffHour, err = getEnvAsInt("EARLY_CUTOFF_HOUR", 6)
	if err != nil {
		return nil, err
	}
	if cfg.EarlyCutoffHour < 0 || cfg.EarlyCutoffHour > 23 {
		return nil, fmt.Errorf("EARLY_CUTOFF_HOUR %d is not a valid hour", cfg.EarlyCutoffHour)
	}

	// Number of forward days on the dashboard grid (default: 7)
	cfg.HorizonDays, err = getEnvAsInt("HORIZON_DAYS", 7)
	if err != nil {
		return nil, err
	}
	if cfg.HorizonDays < 1 {
		return nil, fmt.Errorf("HORIZON_DAYS must be at least 1")
	}

	// External booking system API
	cfg.BookingAPIURL = getEnv("BOOKING_API_URL", "")
	if cfg.BookingAPIURL == "" {
		return nil, fmt.Errorf("BOOKING_API_URL is required")
	}
	cfg.BookingAPIToken = getEnv("BOOKING_API_TOKEN", "")

	// Redis report cache (optional; empty addr disables caching)
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.CacheTTL, err = getEnvAsDuration("CACHE_TTL", time.Minute)
	if err != nil {
		return nil, err
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

// getEnvAsDuration retrieves an environment variable as a time.Duration.
// It returns the default value if the variable is not set.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid duration: %w", key, valStr, err)
	}

	return val, nil
}
