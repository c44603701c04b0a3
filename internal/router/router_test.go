package router

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/karolw/hotel-reservation/internal/config"
	"github.com/karolw/hotel-reservation/internal/handler"
)

func registeredRoutes(e *echo.Echo) map[string]bool {
	out := make(map[string]bool)
	for _, r := range e.Routes() {
		out[r.Method+" "+r.Path] = true
	}
	return out
}

func TestAuthRoutesRegistered(t *testing.T) {
	e := echo.New()
	RegisterAuth(e, handler.NewAuthHandler(config.Config{}, nil, nil), "secret")

	routes := registeredRoutes(e)
	for _, want := range []string{
		http.MethodPost + " /v1/auth/register",
		http.MethodPost + " /v1/auth/login",
		http.MethodPost + " /v1/auth/refresh",
		http.MethodPost + " /v1/auth/refresh-access",
		http.MethodPost + " /v1/auth/logout",
		http.MethodPost + " /v1/auth/logout-all",
		http.MethodGet + " /v1/me",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestReservationRoutesRegistered(t *testing.T) {
	e := echo.New()
	RegisterReservations(e, &handler.ReservationHandler{}, "secret")

	routes := registeredRoutes(e)
	for _, want := range []string{
		http.MethodPost + " /v1/reservations",
		http.MethodGet + " /v1/my-reservations",
		http.MethodGet + " /v1/reservations/:id",
		http.MethodDelete + " /v1/reservations/:id",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}
