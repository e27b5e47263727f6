// reelpipe worker: claims video production tasks from the shared
// queue, drives generation stage by stage, and keeps the external board
// in sync. Horizontally scalable: every replica runs this same binary.
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

	"github.com/reelworks/reelpipe/pkg/api"
	"github.com/reelworks/reelpipe/pkg/board"
	"github.com/reelworks/reelpipe/pkg/config"
	"github.com/reelworks/reelpipe/pkg/database"
	"github.com/reelworks/reelpipe/pkg/driver"
	"github.com/reelworks/reelpipe/pkg/governor"
	"github.com/reelworks/reelpipe/pkg/notify"
	"github.com/reelworks/reelpipe/pkg/pipeline"
	"github.com/reelworks/reelpipe/pkg/queue"
	"github.com/reelworks/reelpipe/pkg/secrets"
	"github.com/reelworks/reelpipe/pkg/services"
	"github.com/reelworks/reelpipe/pkg/version"
	"github.com/reelworks/reelpipe/pkg/workspace"
)

func main() {
	configDir := flag.String("config-dir",
		envOr("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting reelpipe",
		"version", version.Full(),
		"worker_id", cfg.WorkerID,
		"http_port", cfg.HTTPPort,
		"workers", cfg.Queue.WorkerCount)

	ctx := context.Background()

	// Database (runs embedded migrations).
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
	slog.Info("Connected to PostgreSQL database")

	// Claims left behind by a previous run of this worker id.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, cfg.WorkerID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal; the periodic orphan scan will catch them.
	}

	taskService := services.NewTaskService(dbClient.Client)
	channelService := services.NewChannelService(dbClient.Client)

	layout, err := workspace.New(cfg.WorkspaceRoot)
	if err != nil {
		slog.Error("Failed to prepare workspace", "error", err)
		os.Exit(1)
	}

	var decryptor *secrets.Decryptor
	if cfg.FernetKey != "" {
		decryptor, err = secrets.NewDecryptor(cfg.FernetKey)
		if err != nil {
			slog.Error("Failed to initialize credential decryption", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("No encryption key configured; channels with encrypted credentials will fail")
	}

	gov := governor.New(*cfg.Governor)

	// Board sync. Without a token the pusher and poller are both inert.
	var boardAPI board.API
	if cfg.Board.APIToken != "" {
		boardAPI = board.NewClient(cfg.Board.APIToken, cfg.Board.RequestsPerSecond)
		slog.Info("Board sync enabled", "databases", len(cfg.Board.DatabaseIDs))
	} else {
		slog.Info("Board sync disabled, no API token configured")
	}
	pusher := board.NewPusher(boardAPI, cfg.Board)
	pusher.Start(ctx)
	poller := board.NewPoller(boardAPI, taskService, cfg.Board)
	poller.Start(ctx)

	notifier := notify.NewService(notify.ServiceConfig{
		Token:   cfg.SlackBotToken,
		Channel: cfg.SlackChannelID,
	})
	if notifier == nil {
		slog.Info("Slack notifications disabled")
	}

	orchestrator := pipeline.New(
		taskService, channelService,
		driver.NewExecRunner(),
		gov, layout, pusher, decryptor, notifier,
		pipeline.Config{
			Stages:             cfg.Stages,
			Generators:         cfg.Generators,
			DefaultVoiceID:     cfg.DefaultVoiceID,
			PublicAssetBaseURL: cfg.PublicAssetBaseURL,
		},
	)

	scheduler := queue.NewScheduler(dbClient.Client, channelService, gov, cfg.Queue.ClaimBatchSize)
	pool := queue.NewWorkerPool(cfg.WorkerID, dbClient.Client, cfg.Queue, scheduler, taskService, orchestrator)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// Live reload of governor caps and board poll settings, via SIGHUP or
	// a rewritten env file.
	reload := func() {
		fresh, err := config.Load()
		if err != nil {
			slog.Error("Config reload failed, keeping current settings", "error", err)
			return
		}
		gov.SetCaps(*fresh.Governor)
		poller.Reconfigure(fresh.Board)
		slog.Info("Configuration reloaded",
			"asset_cap", fresh.Governor.MaxConcurrentAssetGen,
			"video_cap", fresh.Governor.MaxConcurrentVideoGen,
			"audio_cap", fresh.Governor.MaxConcurrentAudioGen)
	}
	stopWatch, err := config.Watch(envPath, func() {
		if err := godotenv.Overload(envPath); err != nil {
			slog.Warn("Could not reload .env file", "error", err)
		}
		reload()
	})
	if err != nil {
		slog.Warn("Config watcher unavailable", "error", err)
	} else {
		defer stopWatch()
	}
	hupCh := make(chan os.Signal, 1)
	signal.Notify(hupCh, syscall.SIGHUP)
	go func() {
		for range hupCh {
			slog.Info("SIGHUP received")
			reload()
		}
	}()

	// Ops HTTP server.
	httpServer := api.NewServer(dbClient, pool, poller)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("reelpipe started", "worker_id", cfg.WorkerID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: workers finish their in-flight sub-item and
	// release claims; the pusher flushes its last statuses.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker pool shutdown timeout exceeded; claims will be recovered as orphans")
	}

	poller.Stop()
	pusher.Stop()

	httpCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("reelpipe stopped")
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
