package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"walletbuddy/internal/config"
	apphttp "walletbuddy/internal/http"
	"walletbuddy/internal/ledger"
	applog "walletbuddy/internal/log"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		applog.New(applog.DefaultLevel, applog.ComponentApp).Error("Invalid configuration", applog.FieldError, err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logger := applog.New(level, applog.ComponentApp)
	applog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("Failed to load time zone", applog.FieldError, err)
		os.Exit(1)
	}

	store := ledger.New()
	if cfg.SeedData {
		if err := ledger.Seed(store, time.Now().In(loc)); err != nil {
			logger.Error("Failed to seed ledger", applog.FieldError, err)
			os.Exit(1)
		}
		cats, txs := store.Snapshot()
		logger.Info("Ledger seeded with sample data",
			"categories", len(cats),
			"transactions", len(txs))
	}

	srv := apphttp.NewServer(":"+cfg.Port, store, loc, logger, apphttp.Options{
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		CacheSize:          cfg.CacheSize,
		CacheTTL:           cfg.CacheTTL,
	})

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting walletbuddy server", "port", cfg.Port, "timezone", cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
