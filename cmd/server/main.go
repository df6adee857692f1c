package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/venuedesk/venue-reservation/internal/booking"
	"github.com/venuedesk/venue-reservation/internal/config"
	"github.com/venuedesk/venue-reservation/internal/database"
	"github.com/venuedesk/venue-reservation/internal/handler"
	"github.com/venuedesk/venue-reservation/internal/middleware"
	"github.com/venuedesk/venue-reservation/internal/queue"
	"github.com/venuedesk/venue-reservation/internal/repository"
	"github.com/venuedesk/venue-reservation/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}
	if err := database.SeedVenues(ctx, db); err != nil {
		log.Fatalf("venue seeding failed: %v", err)
	}

	store := repository.NewStore(db)
	users := repository.NewUserRepo(db)
	svc := booking.NewService(store, booking.RealClock{}, cfg.AutoApprove)

	opts := router.Options{JWTSecret: cfg.JWTSecret}
	if rdb := config.NewRedisClient(); rdb != nil {
		opts.Cache = middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
		opts.RateLimit = middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	} else {
		log.Println("redis unavailable: response cache and rate limiting disabled")
	}

	// The consumer reconnects on its own; a broker outage only delays
	// the audit log, never the API.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.RegisterRoutes(e)
	router.RegisterAPI(e, router.Handlers{
		Auth:        handler.NewAuthHandler(cfg, users),
		Reservation: handler.NewReservationHandler(svc),
		Venue:       handler.NewVenueHandler(svc),
		Export:      handler.NewExportHandler(svc),
	}, opts)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
