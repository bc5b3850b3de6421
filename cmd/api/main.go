// Package main is the entrypoint for the Shipgrid API server.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/shipgrid/shipgrid/internal/config"
	"github.com/shipgrid/shipgrid/internal/handler"
	"github.com/shipgrid/shipgrid/internal/metrics"
	"github.com/shipgrid/shipgrid/internal/middleware"
	"github.com/shipgrid/shipgrid/internal/prefs"
	"github.com/shipgrid/shipgrid/internal/report"
	"github.com/shipgrid/shipgrid/internal/reportcache"
	"github.com/shipgrid/shipgrid/internal/server"
	"github.com/shipgrid/shipgrid/internal/source"
	"github.com/shipgrid/shipgrid/internal/suppliers"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)
	ctx := context.Background()

	pingers := make(map[string]handler.Pinger)

	// Event source
	src, sourceShutdown, err := buildSource(ctx, cfg, logger, pingers)
	if err != nil {
		logger.Error("failed to initialize event source", "source", cfg.EventSource, "error", err)
		os.Exit(1)
	}
	logger.Info("event source ready", "source", cfg.EventSource)

	// Persisted filter selection
	var filterStore prefs.Store
	if cfg.RedisURL != "" {
		redisStore, err := prefs.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		pingers["redis"] = redisStore
		filterStore = redisStore
		logger.Info("connected to Redis")
	} else {
		filterStore = prefs.NewMemoryStore()
		logger.Info("filter selection persisted in memory only")
	}

	// Report cache
	recorder := metrics.NewInMemory()
	builder := report.NewBuilder()
	reports := reportcache.New(src, builder, cfg.RevalidateInterval, cfg.FetchTimeout, logger, recorder)
	reports.Start()

	registry := suppliers.NewRegistry()

	// Handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(pingers)
	metricsHandler := handler.NewMetricsHandler(recorder)
	reportHandler := handler.NewReportHandler(reports, recorder, logger)
	filtersHandler := handler.NewFiltersHandler(filterStore, logger)
	supplierHandler := handler.NewSupplierHandler(registry, logger)

	r := setupRouter(h, healthHandler, metricsHandler, reportHandler, filtersHandler, supplierHandler, logger)

	srv := server.New(r, cfg.AppPort, cfg.ReadTimeout, cfg.WriteTimeout, cfg.ShutdownTimeout, logger)
	srv.OnShutdown("report cache", reports.Stop)
	if sourceShutdown != nil {
		srv.OnShutdown("event source", sourceShutdown)
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"revalidate_interval", cfg.RevalidateInterval.String(),
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// buildSource constructs the configured event source. The returned
// shutdown func is nil for sources without resources to release.
func buildSource(ctx context.Context, cfg *config.Config, logger *slog.Logger, pingers map[string]handler.Pinger) (source.EventSource, server.ShutdownFunc, error) {
	switch cfg.EventSource {
	case config.SourceHTTP:
		return source.NewHTTPSource(cfg.EventSourceURL, cfg.FetchTimeout, logger), nil, nil
	case config.SourcePostgres:
		pg, err := source.NewPostgresSource(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		pingers["postgres"] = pg
		shutdown := func(context.Context) error {
			pg.Close()
			return nil
		}
		return pg, shutdown, nil
	default:
		return source.NewSyntheticSource(cfg.SyntheticSeed), nil, nil
	}
}

// initLogger initializes the slog logger based on configuration.
// With LOG_FILE set, logs also go to a size-rotated file.
func initLogger(cfg *config.Config) *slog.Logger {
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    16, // megabytes
			MaxBackups: 8,
			MaxAge:     90, // days
			Compress:   true,
		})
	}

	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	metricsHandler *handler.MetricsHandler,
	reportHandler *handler.ReportHandler,
	filtersHandler *handler.FiltersHandler,
	supplierHandler *handler.SupplierHandler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	// Probes and info
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)
	r.Get("/", h.Hello)

	// Regularity report
	r.Route("/api/relatorio/{year}/{month}", func(r chi.Router) {
		r.Get("/", reportHandler.Get)
		r.Get("/facets", reportHandler.Facets)
		r.Get("/export", reportHandler.Export)
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Persisted filter selection
		r.Get("/filters", filtersHandler.Get)
		r.Put("/filters", filtersHandler.Put)

		// Mock supplier registry
		r.Route("/fornecedores", func(r chi.Router) {
			r.Get("/", supplierHandler.List)
			r.Post("/", supplierHandler.Create)
			r.Get("/{id}", supplierHandler.Get)
			r.Put("/{id}", supplierHandler.Update)
			r.Delete("/{id}", supplierHandler.Delete)
		})
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
