package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klauspost/compress/gzhttp"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"golang.org/x/net/netutil"

	"trafficapi/internal/catalog"
	"trafficapi/internal/config"
	"trafficapi/internal/handler"
	"trafficapi/internal/metrics"
	custommiddleware "trafficapi/internal/middleware"
	"trafficapi/internal/requestid"
	"trafficapi/internal/service"
	"trafficapi/internal/source"
	"trafficapi/internal/timeseries"
	"trafficapi/internal/validation"
)

func newServeCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the metrics API (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), logger)
		},
	}
}

func runServer(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var pool *pgxpool.Pool
	if source.NeedsPostgres(&cfg.Source) || cfg.Metrics.Enabled {
		pool, err = openPool(ctx, &cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	metricCatalog := catalog.New(cfg.Catalog.Names)
	logger.Info("metric catalog loaded", slog.Any("metrics", metricCatalog.IDs()))

	src, closeSource, err := source.Open(ctx, cfg, metricCatalog, pool)
	if err != nil {
		return fmt.Errorf("failed to open %s source: %w", cfg.Source.Driver, err)
	}
	defer closeSource()

	var copier metrics.Copier
	if cfg.Metrics.Enabled {
		if err := metrics.EnsureSchema(ctx, pool); err != nil {
			return err
		}
		copier = pool
	}
	recorder := metrics.NewRecorder(copier, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	if stats, ok := src.(cacheStats); ok {
		go logCacheStats(ctx, logger, stats, time.Minute)
	}

	ids, err := requestid.New()
	if err != nil {
		return fmt.Errorf("failed to create request id generator: %w", err)
	}

	metricsService := service.NewMetricsService(src, timeseries.NewTransformer(metricCatalog), recorder, &cfg.Request)
	validator := validation.NewRequestValidator(&cfg.Request, time.Now)
	h := handler.New(metricsService, validator, metricCatalog, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.RequestID(ids))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(custommiddleware.Metrics(recorder))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger, handler.HealthPath))

	h.Register(e)

	if cfg.Server.StaticDir != "" {
		e.Static("/", cfg.Server.StaticDir)
		logger.Info("serving static files", slog.String("dir", cfg.Server.StaticDir))
	}

	var root http.Handler = e
	if cfg.Server.Gzip {
		root = gzhttp.GzipHandler(e)
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.String("source", cfg.Source.Driver),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	listener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	httpServer := &http.Server{
		Handler:        root,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   cfg.Request.Timeout + 5*time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	return nil
}

func openPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

type cacheStats interface {
	Stats() (hits, misses uint64, ratio float64)
}

func logCacheStats(ctx context.Context, logger *slog.Logger, stats cacheStats, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hits, misses, ratio := stats.Stats()
			logger.Info("source cache stats",
				slog.Uint64("hits", hits),
				slog.Uint64("misses", misses),
				slog.Float64("hit_ratio", ratio),
				slog.Int("goroutines", runtime.NumGoroutine()))
		}
	}
}
