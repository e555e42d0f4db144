package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wanderlab/trip-budget-api/internal/adapters/httpapi"
	membookingrepo "github.com/wanderlab/trip-budget-api/internal/adapters/memory/bookingrepo"
	postgres "github.com/wanderlab/trip-budget-api/internal/adapters/postgres"
	pgbookingrepo "github.com/wanderlab/trip-budget-api/internal/adapters/postgres/bookingrepo"
	"github.com/wanderlab/trip-budget-api/internal/app/bookings"
	"github.com/wanderlab/trip-budget-api/internal/app/planner"
	"github.com/wanderlab/trip-budget-api/internal/app/routing"
	platformclock "github.com/wanderlab/trip-budget-api/internal/platform/clock"
	"github.com/wanderlab/trip-budget-api/internal/platform/config"
	bookingrepoport "github.com/wanderlab/trip-budget-api/internal/ports/out/bookingrepo"
)

func main() {
	// Local development reads env vars from .env; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadServerConfigFromEnv()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	clk := platformclock.NewSystemClock()

	var (
		bookingRepo bookingrepoport.Repository
		cleanup     func()
	)
	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(context.Background(), cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			log.Fatalf("invalid postgres config: %v", err)
		}
		cleanup = pool.Close
		bookingRepo = pgbookingrepo.NewRepo(pool)
	default:
		bookingRepo = membookingrepo.NewRepo()
	}
	if cleanup != nil {
		defer cleanup()
	}

	planSvc := planner.NewService(routing.NewEstimator())
	bookingSvc := bookings.NewService(bookingRepo, clk)

	handler := httpapi.NewRouter(httpapi.NewServer(planSvc, bookingSvc))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("api listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
