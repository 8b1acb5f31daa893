package main

import (
	"context"
	"log/slog"
	"net/http"

	"customer-insights/internal/config"
	"customer-insights/internal/handlers"
	"customer-insights/internal/middleware"
	"customer-insights/internal/repositories"
	"customer-insights/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// datasetSource is a dataset repository whose reachability can be checked
type datasetSource interface {
	repositories.DatasetRepositoryInterface
	Ping(ctx context.Context) error
}

type serverDeps struct {
	dataset repositories.DatasetRepositoryInterface
	pinger  handlers.DatasetPinger
	limiter *middleware.IPRateLimiter
	metrics services.MetricsRecorderInterface
}

// newServer builds the Echo instance with the middleware chain and every route
func newServer(cfg *config.Config, deps serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = handlers.NewJSONSerializer()
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	base := cfg.Server.APIBasePath

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestMetrics())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(base))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-Trace-ID"},
	}))
	if deps.limiter != nil {
		e.Use(deps.limiter.Middleware())
	}

	queryLogger := services.NewQueryLogger(slog.Default())
	transactionService := services.NewTransactionQueryService(deps.dataset, deps.metrics, queryLogger)
	probabilityService := services.NewProbabilityQueryService(deps.dataset, deps.metrics, queryLogger)

	transactionHandler := handlers.NewTransactionHandler(transactionService)
	predictionHandler := handlers.NewPredictionHandler(probabilityService)
	healthHandler := handlers.NewHealthCheckHandler(deps.pinger)

	api := e.Group(base)
	api.GET("/", healthHandler.Root)
	if base != "" {
		api.GET("", healthHandler.Root)
	}
	api.POST("/trx", transactionHandler.QueryTransactions)
	api.POST("/predict_proba", predictionHandler.PredictProba)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if cfg.Server.StaticDir != "" {
		slog.Info("Serving static files", "dir", cfg.Server.StaticDir)
		e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
			Root:  cfg.Server.StaticDir,
			HTML5: false,
		}))
	}

	return e
}
