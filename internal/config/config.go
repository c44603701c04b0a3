// Package config loads application configuration from environment
// variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values. Each field
// corresponds to an environment variable: strings for identifiers
// and secrets, ints for durations and costs.
type Config struct {
	Env            string  // application environment (e.g. "dev", "prod")
	Port           string  // HTTP port to listen on
	DBUser         string  // database username
	DBPass         string  // database password (optional)
	DBHost         string  // database host address
	DBPort         string  // database port number
	DBName         string  // database name
	JWTSecret      string  // secret used to sign JWTs
	AccessTTLMin   int     // access token time-to-live in minutes
	RefreshTTLDays int     // refresh token time-to-live in days
	BcryptCost     int     // bcrypt cost for password hashing
	Booking        Booking // reservation transaction tuning
}

// Booking carries the retry tuning for the reservation transaction
// coordinator. The database may abort a serializable transaction
// when two concurrent bookings race; these values bound how often
// and how patiently a request retries before giving up.
type Booking struct {
	MaxAttempts  int           // BOOKING_MAX_ATTEMPTS, default 3
	RetryBackoff time.Duration // BOOKING_RETRY_BACKOFF, default 50ms
}

// Load reads configuration values from environment variables.
// Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:     mustInt("BCRYPT_COST"),
		Booking: Booking{
			MaxAttempts:  envInt("BOOKING_MAX_ATTEMPTS", 3),
			RetryBackoff: envDur("BOOKING_RETRY_BACKOFF", 50*time.Millisecond),
		},
	}
}

// must retrieves the value of a required environment variable. If
// the variable is unset or empty, the application exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the value into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return n
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	return def
}
