package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"customer-insights/internal/config"
	"customer-insights/internal/database"
	"customer-insights/internal/middleware"
	"customer-insights/internal/repositories"
	"customer-insights/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := openDatasetSource(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open dataset source", "source", cfg.Dataset.Source, "error", err)
		os.Exit(1)
	}
	defer closeSource()

	breaker := repositories.NewCircuitBreaker(repositories.CircuitBreakerConfig{
		MaxFailures:  cfg.Dataset.BreakerMaxFailures,
		ResetTimeout: cfg.Dataset.BreakerResetTimeout,
	})
	breaker.OnStateChange(func(from, to repositories.CircuitBreakerState) {
		logger.Warn("Dataset circuit breaker state changed", "from", from.String(), "to", to.String())
	})

	var dataset repositories.DatasetRepositoryInterface = repositories.NewBreakerDatasetRepository(source, breaker)
	if cfg.Dataset.CacheEnabled {
		cached := repositories.NewCachedDatasetRepository(dataset, cfg.Dataset.CacheTTL)
		if err := cached.Warm(ctx); err != nil {
			// requests retry the load and answer SYSTEM_002 until it succeeds
			logger.Warn("Dataset warm-up failed", "error", err)
		}
		dataset = cached
	}

	limiter := middleware.NewIPRateLimiter(float64(cfg.Security.RateLimitPerSecond), cfg.Security.RateLimitBurst)
	go limiter.Cleanup(ctx)

	e := newServer(cfg, serverDeps{
		dataset: dataset,
		pinger:  source,
		limiter: limiter,
		metrics: services.NewPrometheusMetrics(prometheus.DefaultRegisterer),
	})

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting API server",
			"address", server.Addr,
			"base_path", cfg.Server.APIBasePath,
			"dataset_source", cfg.Dataset.Source,
			"cache_enabled", cfg.Dataset.CacheEnabled,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// openDatasetSource returns the configured dataset source and a function releasing it
func openDatasetSource(ctx context.Context, cfg *config.Config) (datasetSource, func(), error) {
	switch cfg.Dataset.Source {
	case config.DatasetSourceDatabase:
		db, err := database.Initialize(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				slog.Error("Failed to close database", "error", err)
			}
		}
		return repositories.NewDBDatasetRepository(db.DB), closeDB, nil
	default:
		return repositories.NewCSVDatasetRepository(cfg.Dataset.TransactionsPath, cfg.Dataset.ProbabilitiesPath), func() {}, nil
	}
}
