package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/karolw/hotel-reservation/internal/config"
)

// cachedResponse is the envelope stored in Redis for one cached
// response.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// captureWriter duplicates the response body into a buffer while
// forwarding it to the client, so a successful response can be put
// in the cache after the handler ran.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.buf.Len() < cw.limit {
		cw.buf.Write(b)
	}
	return cw.ResponseWriter.Write(b)
}

// ResponseCache returns a middleware that caches successful GET
// responses in Redis, keyed by route and raw query. It is meant for
// the public browse endpoints; authenticated routes must not be
// cached. A nil client disables caching entirely.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	disabled := !cfg.Enabled || rdb == nil
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if disabled || c.Request().Method != http.MethodGet {
				return next(c)
			}

			key := cacheKey(cfg.Prefix, c)
			ctx := c.Request().Context()

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(raw, &cached) == nil {
					c.Response().Header().Set(echo.HeaderContentType, cached.ContentType)
					c.Response().Header().Set("X-Cache", "HIT")
					return c.Blob(cached.Status, cached.ContentType, cached.Body)
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK && cw.buf.Len() <= cfg.MaxBodyBytes {
				payload, err := json.Marshal(cachedResponse{
					Status:      cw.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        cw.buf.Bytes(),
				})
				if err == nil {
					// Best effort; a failed SET only means a cache miss later.
					rdb.Set(ctx, key, payload, cfg.TTL)
				}
			}
			return nil
		}
	}
}

func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum)
}
