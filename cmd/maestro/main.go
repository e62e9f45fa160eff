// Maestro control plane — serves the HTTP API, runs the task coordinator
// and the archive sweeper, and bridges broker events to WebSocket clients.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ragweave/maestro/pkg/api"
	"github.com/ragweave/maestro/pkg/archive"
	"github.com/ragweave/maestro/pkg/broker"
	"github.com/ragweave/maestro/pkg/config"
	"github.com/ragweave/maestro/pkg/coordinator"
	"github.com/ragweave/maestro/pkg/database"
	"github.com/ragweave/maestro/pkg/events"
	"github.com/ragweave/maestro/pkg/taskstore"
	"github.com/ragweave/maestro/pkg/templates"
	"github.com/ragweave/maestro/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting maestro control plane",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Archive database (migrations run on connect)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL archive")

	// 3. Live task store
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Store.Addr,
		Password: cfg.Store.Password,
		DB:       cfg.Store.DB,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Error closing Redis client", "error", err)
		}
	}()
	store := taskstore.New(rdb, cfg.Coordinator.TaskTTL)
	if err := store.Ping(ctx); err != nil {
		slog.Error("Failed to reach Redis", "addr", cfg.Store.Addr, "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to Redis task store", "addr", cfg.Store.Addr)

	// 4. Broker
	natsBroker, err := broker.ConnectNATS(ctx, broker.NATSOptions{
		URL:     cfg.Broker.URL,
		AckWait: cfg.Broker.AckWait,
		Name:    "maestro-control",
	})
	if err != nil {
		slog.Error("Failed to connect to NATS", "url", cfg.Broker.URL, "error", err)
		os.Exit(1)
	}
	defer natsBroker.Close()
	slog.Info("Connected to NATS broker", "url", cfg.Broker.URL)

	// 5. Template registry: builtins + YAML overrides, hydrated from the
	// archive, persisted back, watched for file changes.
	registry, err := templates.NewRegistry(*configDir, cfg.Coordinator.DefaultTemplate)
	if err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	archiveService := archive.NewService(dbClient.Client)
	if stored, err := archiveService.LoadTemplates(ctx); err != nil {
		slog.Warn("Could not hydrate templates from archive", "error", err)
	} else if len(stored) > 0 {
		registry.Hydrate(stored)
	}
	if err := archiveService.SaveTemplates(ctx, registry.List()); err != nil {
		slog.Warn("Could not persist templates to archive", "error", err)
	}

	watcher, err := templates.NewWatcher(ctx, registry)
	if err != nil {
		slog.Warn("Template hot reload disabled", "error", err)
	} else {
		defer watcher.Stop()
	}
	slog.Info("Template registry ready", "templates", len(registry.List()))

	// 6. Archive background workers
	sweeper := archive.NewSweeper(cfg.Archive, archiveService)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	recorder := archive.NewRecorder(archiveService, natsBroker)
	if err := recorder.Start(ctx); err != nil {
		slog.Error("Failed to start performance recorder", "error", err)
		os.Exit(1)
	}
	defer recorder.Stop()

	// 7. Coordinator
	coord := coordinator.New(*cfg.Coordinator, store, natsBroker, registry, archiveService)
	coord.Start(ctx)
	defer coord.Stop()

	// 8. Streaming infrastructure: one wildcard broker subscription feeds
	// all WebSocket task channels.
	connManager := events.NewConnectionManager(store, 10*time.Second)
	bridge := events.NewBrokerBridge(natsBroker, connManager)
	if err := bridge.Start(ctx); err != nil {
		slog.Error("Failed to start event bridge", "error", err)
		os.Exit(1)
	}
	defer bridge.Stop()
	slog.Info("Streaming infrastructure initialized")

	// 9. HTTP server (non-blocking)
	httpServer := api.NewServer(coord, store, registry, archiveService, dbClient, connManager)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Maestro control plane started",
		"default_template", cfg.Coordinator.DefaultTemplate,
		"stage_timeout", cfg.Coordinator.StageTimeout)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop accepting requests first, then let the
	// deferred stops unwind the coordinator and background workers.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
