package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/go-redis/redis/v8"

	httpadapter "relief-ads/internal/adapter/http"
	"relief-ads/internal/adapter/postgres"
	rediscache "relief-ads/internal/adapter/redis"
	"relief-ads/internal/adapter/usecase"
	"relief-ads/internal/config"
	"relief-ads/internal/core/port"
	"relief-ads/internal/db"
	"relief-ads/internal/rotation"
)

// main is the entry point of the ad resolver. It loads configuration,
// optionally runs database migrations and seeding, initializes the
// database pool, cache and repositories, starts the rotation scheduler and
// the HTTP server. On receiving a termination signal it gracefully shuts
// everything down.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	var cache port.CandidateCache
	if cfg.Redis.Enabled() {
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		cache, err = rediscache.NewCandidateCache(ctx, client, cfg.Redis.TTL, logger)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("eligibility cache enabled", slog.Duration("ttl", cfg.Redis.TTL))
	}

	repo := postgres.NewAdRepository(pool)
	svc := usecase.NewAdUseCase(repo, cache, logger)

	var scheduler *rotation.Scheduler
	if cfg.Cron.Enabled {
		scheduler = rotation.NewScheduler(postgres.NewRotationRepository(pool), cfg.Cron, logger)
		if err = scheduler.Start(); err != nil {
			logger.Error("scheduler error", slog.Any("error", err))
			os.Exit(1)
		}
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	if scheduler != nil {
		scheduler.Stop()
	}
	svc.Drain()
}
