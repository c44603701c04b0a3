package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/karolw/hotel-reservation/internal/config"
)

// RateLimit returns a Redis token-bucket limiter keyed by client IP
// and route. The bucket state lives in Redis so multiple instances
// of this service share one budget. A nil client disables limiting.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	// Refill and take one token atomically.
	script := redis.NewScript(`
		local key = KEYS[1]
		local now_ms = tonumber(ARGV[1])
		local capacity = tonumber(ARGV[2])
		local interval_ms = tonumber(ARGV[3])
		local ttl_s = tonumber(ARGV[4])

		local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
		local tokens = tonumber(state[1])
		local last_refill = tonumber(state[2])
		if tokens == nil or last_refill == nil then
			tokens = capacity
			last_refill = now_ms
		end

		local intervals = math.floor(math.max(0, now_ms - last_refill) / interval_ms)
		if intervals > 0 then
			tokens = math.min(capacity, tokens + intervals)
			last_refill = last_refill + intervals * interval_ms
		end

		local allowed = 0
		local retry_ms = 0
		if tokens > 0 then
			allowed = 1
			tokens = tokens - 1
		else
			retry_ms = math.max(0, interval_ms - (now_ms - last_refill))
		end

		redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
		redis.call('EXPIRE', key, ttl_s)
		return { allowed, retry_ms }
	`)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("%s:%s:%s", cfg.Prefix, c.RealIP(), c.Path())
			args := []interface{}{
				time.Now().UnixMilli(),
				cfg.Capacity,
				cfg.RefillInterval.Milliseconds(),
				int64(cfg.TTL / time.Second),
			}
			vals, err := script.Run(c.Request().Context(), rdb, []string{key}, args...).Int64Slice()
			if err != nil || len(vals) != 2 {
				// Redis trouble must not take the API down.
				return next(c)
			}
			if vals[0] != 1 {
				retryAfter := (vals[1] + 999) / 1000
				c.Response().Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
