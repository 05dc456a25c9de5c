package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/marina-berth-reservation/internal/config"
	"github.com/iliyamo/marina-berth-reservation/internal/database"
	"github.com/iliyamo/marina-berth-reservation/internal/handler"
	"github.com/iliyamo/marina-berth-reservation/internal/middleware"
	"github.com/iliyamo/marina-berth-reservation/internal/queue"
	"github.com/iliyamo/marina-berth-reservation/internal/repository"
	"github.com/iliyamo/marina-berth-reservation/internal/router"
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	// Redis is optional infrastructure: when unreachable the limiter and
	// cache middleware become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: rate limiting and response caching disabled")
	}

	userRepo := repository.NewUserRepo(db)
	catwayRepo := repository.NewCatwayRepo(db)
	reservationRepo := repository.NewReservationRepo(db)

	authHandler := handler.NewAuthHandler(cfg, userRepo)
	userHandler := handler.NewUserHandler(cfg, userRepo)
	catwayHandler := handler.NewCatwayHandler(catwayRepo)
	reservationHandler := handler.NewReservationHandler(reservationRepo)

	e := echo.New()

	// Route-level middleware: the limiter is attached where the caller's
	// identity is known (behind JWTAuth on protected groups) and by IP on
	// the public endpoints; the cache covers the resource groups.
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, userHandler, limit)
	router.RegisterAPI(e, cfg.JWTSecret, userHandler, catwayHandler, reservationHandler, limit, cache)

	// Booking confirmations are consumed in the background and appended to
	// logs/reservation.log; the loop reconnects on broker outages.
	go queue.StartReservationConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
