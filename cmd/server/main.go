package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tjwelchtj/maurice-burns-estate/internal/catalog"
	"github.com/tjwelchtj/maurice-burns-estate/internal/config"
	"github.com/tjwelchtj/maurice-burns-estate/internal/imageproxy"
	"github.com/tjwelchtj/maurice-burns-estate/internal/logging"
	"github.com/tjwelchtj/maurice-burns-estate/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"site_title", cfg.Catalog.SiteTitle,
		"source_configured", cfg.Catalog.SourceURL != "",
		"drive_api", cfg.Image.CredentialsFile != "",
		"rate_limit_enabled", cfg.Rate.Enabled,
	)
	if cfg.Catalog.SourceURL == "" {
		slog.Warn("CATALOG_CSV_URL is not set; catalog pages will report a configuration error")
	}

	loader := catalog.NewLoader(cfg.Catalog)

	images, err := imageproxy.NewFetcher(context.Background(), cfg.Image)
	if err != nil {
		slog.Error("failed to create image fetcher", "error", err)
		os.Exit(1)
	}

	// Create server with config
	server := web.NewServer(cfg, loader, images)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
