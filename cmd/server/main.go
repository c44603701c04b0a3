package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/karolw/hotel-reservation/internal/booking"
	"github.com/karolw/hotel-reservation/internal/config"
	"github.com/karolw/hotel-reservation/internal/database"
	"github.com/karolw/hotel-reservation/internal/handler"
	"github.com/karolw/hotel-reservation/internal/queue"
	"github.com/karolw/hotel-reservation/internal/repository"
	"github.com/karolw/hotel-reservation/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional. A nil client disables the response cache and
	// the rate limiter rather than blocking startup.
	rdb := config.NewRedisClient()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	hotels := repository.NewHotelRepo(db)
	rooms := repository.NewRoomRepo(db)
	reservations := repository.NewReservationRepo(db)

	coord := booking.NewCoordinator(repository.NewBookingStore(db), booking.Config{
		MaxAttempts:  cfg.Booking.MaxAttempts,
		RetryBackoff: cfg.Booking.RetryBackoff,
	})

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterPublic(e, handler.NewHotelHandler(hotels, rooms), rdb, config.LoadCacheConfig(), config.LoadRateLimitConfig())
	router.RegisterReservations(e, handler.NewReservationHandler(coord, reservations), cfg.JWTSecret)

	// The consumer reconnects on its own; a startup failure here only
	// means the first dial could not begin (bad URL), so log and move on.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer disabled: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
