package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"polygonmcp/internal/config"
	"polygonmcp/internal/handlers"
	"polygonmcp/internal/instrumentation"
	"polygonmcp/internal/mcp"
	"polygonmcp/internal/polygon"
	"polygonmcp/internal/tickerindex"
	"polygonmcp/internal/tools"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging. In stdio mode stdout carries the protocol
	// stream, so logs move to stderr.
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logWriter := io.Writer(os.Stdout)
	if !cfg.HTTPTransport {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("polygon_mcp_starting",
		"version", version,
		"http_transport", cfg.HTTPTransport,
		"port", cfg.Port,
		"base_url", cfg.PolygonBaseURL,
	)

	// Upstream client and metrics
	client := polygon.New(cfg.PolygonBaseURL, cfg.PolygonAPIKey, logger)
	metrics := instrumentation.NewMetrics(prometheus.DefaultRegisterer)

	// Ticker catalog: Redis-backed when configured, built-in seed otherwise
	entries := tickerindex.SeedCatalog()
	if cfg.RedisURL != "" {
		store, err := tickerindex.NewStore(cfg.RedisURL, cfg.RedisPassword, logger)
		if err != nil {
			logger.Error("failed to create ticker store", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		entries, err = store.Load(loadCtx, tickerindex.SeedCatalog())
		cancel()
		if err != nil {
			logger.Error("failed to load ticker catalog", "error", err)
			os.Exit(1)
		}
	}

	index, err := tickerindex.NewIndex(entries, logger)
	if err != nil {
		logger.Error("failed to build ticker index", "error", err)
		os.Exit(1)
	}
	logger.Info("ticker_index_ready", "entries", index.Len())

	// Tool registry: full catalog, validated and schema-checked at startup
	registry, err := tools.NewDefaultRegistry(client, metrics)
	if err != nil {
		logger.Error("failed to build tool registry", "error", err)
		os.Exit(1)
	}
	logger.Info("tool_registry_ready", "tools", len(registry.Descriptors()))

	server := mcp.NewServer(registry, index, metrics, version, logger)

	// Optional Prometheus listener on its own port
	if cfg.PrometheusPort > 0 {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			addr := fmt.Sprintf(":%d", cfg.PrometheusPort)
			logger.Info("metrics_server_starting", "port", cfg.PrometheusPort)
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Error("metrics_server_failed", "error", err)
			}
		}()
	}

	if cfg.HTTPTransport {
		runHTTP(cfg, server, logger)
		return
	}
	runStdio(server, logger)
}

// runHTTP serves MCP over SSE until SIGINT/SIGTERM, then drains.
func runHTTP(cfg *config.Config, server *mcp.Server, logger *slog.Logger) {
	mcpHandler := handlers.NewMCPHandler(server, logger)
	catalogHandler := handlers.NewCatalogHandler(server, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(handlers.CorrelationMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.TimeoutMiddleware(cfg.RequestTimeout(), logger))

	// Health check endpoint (for docker healthcheck)
	r.Get("/health", handlers.HealthCheckHandler(logger))

	// MCP endpoints
	r.Post("/mcp", mcpHandler.ServeHTTP)
	r.Get("/mcp/tools", catalogHandler.ServeHTTP)

	// No WriteTimeout: SSE responses may legitimately take the full request
	// timeout while the upstream call runs.
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("mcp_server_listening", "port", cfg.Port, "transport", "http")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server_error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	// Graceful shutdown
	logger.Info("shutdown_signal_received", "signal", sig.String())
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server_shutdown_error", "error", err)
	}

	logger.Info("polygon_mcp_stopped")
}

// runStdio serves MCP over stdin/stdout until EOF or a shutdown signal.
func runStdio(server *mcp.Server, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stdio := handlers.NewStdioServer(server, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("mcp_server_listening", "transport", "stdio")
		errChan <- stdio.Serve(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case sig := <-sigChan:
		logger.Info("shutdown_signal_received", "signal", sig.String())
		cancel()
	case err := <-errChan:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("stdio_server_error", "error", err)
		}
	}

	logger.Info("polygon_mcp_stopped")
}
