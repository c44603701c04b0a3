// Package router wires HTTP routes to their handlers. Route
// registration is split by concern so main can opt out of pieces
// (e.g. skip the cached public routes when Redis is absent).
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/karolw/hotel-reservation/internal/config"
	"github.com/karolw/hotel-reservation/internal/handler"
	"github.com/karolw/hotel-reservation/internal/middleware"
)

// RegisterRoutes registers routes that require neither authentication
// nor any backing service. Currently just the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session endpoints under /v1/auth and the
// authenticated /v1/me endpoint. jwtSecret signs and verifies access
// tokens for the protected group.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.POST("/auth/logout-all", a.LogoutAll)
}

// RegisterPublic registers the unauthenticated browse endpoints:
// hotel listings, per-hotel rooms and the availability search. When
// rdb is non-nil the routes get the Redis response cache and the
// per-client rate limiter; with a nil client they run uncached and
// unthrottled, which keeps local development working without Redis.
func RegisterPublic(e *echo.Echo, h *handler.HotelHandler, rdb *redis.Client, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig) {
	g := e.Group("/v1")
	if rdb != nil {
		g.Use(middleware.RateLimit(rlCfg, rdb))
		g.Use(middleware.ResponseCache(cacheCfg, rdb))
	}
	g.GET("/hotels", h.ListHotels)
	g.GET("/hotels/:id/rooms", h.ListRooms)
	g.GET("/rooms/available", h.AvailableRooms)
}

// RegisterReservations registers the authenticated reservation
// endpoints under /v1. Creation goes through the booking coordinator;
// reads and cancellation hit the repository directly.
func RegisterReservations(e *echo.Echo, r *handler.ReservationHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.POST("/reservations", r.Create)
	g.GET("/my-reservations", r.List)
	g.GET("/reservations/:id", r.Get)
	g.DELETE("/reservations/:id", r.Cancel)
}
