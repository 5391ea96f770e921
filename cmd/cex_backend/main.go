package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/kioskfx/currency_exchange_app/internal/adapters/ratesource"
	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
	"github.com/kioskfx/currency_exchange_app/internal/core/services"
	"github.com/kioskfx/currency_exchange_app/internal/defaults"
	"github.com/kioskfx/currency_exchange_app/internal/handlers"
	"github.com/kioskfx/currency_exchange_app/internal/middleware"
	"github.com/kioskfx/currency_exchange_app/internal/platform/config"
	"github.com/kioskfx/currency_exchange_app/internal/platform/metrics"
	"github.com/kioskfx/currency_exchange_app/internal/refresher"
	"github.com/kioskfx/currency_exchange_app/internal/repositories/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// In-memory stores seeded with the stock kiosk defaults
	ledgerRepo := memory.NewLedgerRepository(defaults.Currencies())
	settingsRepo := memory.NewSettingsRepository(defaults.Settings())

	rateSource := ratesource.NewExchangeAPI(cfg.RateAPIURL, cfg.RateAPIKey, cfg.RateFetchTimeout, logger)
	container := services.NewServiceContainer(ledgerRepo, settingsRepo, rateSource, domain.NewRateImporter())

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)

	// Background refresh loop; stops with the process
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go refresher.NewRefresher(container.RateRefresh, container.Settings, m, logger).Run(ctx)

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())
	limiterInstance := limiter.New(limitermem.NewStore(), limiter.Rate{
		Period: time.Minute,
		Limit:  cfg.RateLimit,
	})
	r.Use(middleware.RateLimit(limiterInstance))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, m, registry)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
