package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/amaumene/movienarr/internal/api"
	"github.com/amaumene/movienarr/internal/cache"
	"github.com/amaumene/movienarr/internal/config"
	"github.com/amaumene/movienarr/internal/controllers"
	"github.com/amaumene/movienarr/internal/models"
	"github.com/amaumene/movienarr/internal/scheduler"
	"github.com/amaumene/movienarr/internal/services/simkl"
	"github.com/amaumene/movienarr/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Setup logger
	logger := utils.NewLogger(cfg.LogLevel)
	logger.Info("Starting Movienarr")
	logger.WithField("config_dir", filepath.Dir(cfg.DatabaseFile)).Info("Configuration loaded")

	// 3. Initialize database
	db, err := models.NewDatabase(cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()
	logger.Info("Database initialized")

	// 4. Initialize Simkl client with its search cache
	searchCache := cache.New[[]simkl.Choice](cfg.SearchCacheSize, cfg.SearchCacheTTL)
	simklClient, err := simkl.NewClient(cfg, searchCache, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize Simkl client: %w", err)
	}
	logger.Info("Simkl client initialized")

	// 5. Initialize controller
	watchlistCtrl := controllers.NewWatchlistController(db, simklClient, logger)
	logger.Info("Controllers initialized")

	// 6. Initialize scheduler
	sched := scheduler.NewScheduler(watchlistCtrl, cfg.RefreshCron, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	// 7. Initialize HTTP server
	server := api.NewServer(cfg, db, watchlistCtrl, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErrChan <- err
		}
	}()

	// 8. Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("Movienarr is running")

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.WithField("signal", sig).Info("Received shutdown signal")
		cancel()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Error("Error during server shutdown")
		}
	}

	logger.Info("Movienarr stopped")
	return nil
}
