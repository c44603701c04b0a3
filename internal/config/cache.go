package config

import (
	"os"
	"strconv"
	"time"
)

// CacheConfig holds settings for the response cache applied to the
// public browse endpoints. Caching is disabled when Enabled is
// false or no Redis client could be constructed.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig builds a CacheConfig from environment variables
// with sensible defaults.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		TTL:          parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
	}
}

// RateLimitConfig holds token-bucket rate limiter settings.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

// LoadRateLimitConfig builds a RateLimitConfig from environment
// variables. One token refills per interval; the bucket key expires
// after TTL of inactivity.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Capacity:       atoi(getenv("RATE_LIMIT_CAPACITY", "60")),
		RefillInterval: parseDur(getenv("RATE_LIMIT_REFILL_INTERVAL", "1s")),
		TTL:            parseDur(getenv("RATE_LIMIT_TTL", "10m")),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if min := 5 * cfg.RefillInterval; cfg.TTL < min {
		cfg.TTL = min
	}
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
