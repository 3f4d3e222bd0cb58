package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/healthindex/healthindex/internal/app"
	"github.com/healthindex/healthindex/internal/config"
	"github.com/healthindex/healthindex/internal/datausa"
	"github.com/healthindex/healthindex/internal/db"
	"github.com/healthindex/healthindex/internal/db/repos"
	"github.com/healthindex/healthindex/internal/logger"
	"github.com/healthindex/healthindex/internal/services"
)

func main() {
	logger.Initialize()
	cfg := config.Load()

	database, err := db.New(db.Options{URL: cfg.DatabaseURL})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	client, err := datausa.NewClient(&datausa.Options{BaseURL: cfg.DataUSAURL})
	if err != nil {
		logger.Fatalf("Failed to create DataUSA client: %v", err)
	}

	snapshotRepo := repos.NewSnapshotRepository(database)
	measurementRepo := repos.NewMeasurementRepository(database)
	scoreRepo := repos.NewScoreRepository(database)

	refresh := services.NewRefreshService(client, snapshotRepo, measurementRepo, scoreRepo, cfg.DataUSAURL, cfg.DataFilePath)
	query := services.NewQueryService(snapshotRepo, measurementRepo, scoreRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial refresh on boot. A failure is logged and the last good snapshot
	// keeps serving.
	if _, err := refresh.Run(ctx); err != nil {
		logger.Errorf("Initial refresh failed: %v", err)
	}

	scheduler := services.NewScheduler(refresh, cfg.RefreshSchedule)
	if err := scheduler.Start(ctx); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}

	fiberApp := app.New(query, refresh)

	// Shut down cleanly on SIGINT/SIGTERM
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("Shutdown signal received, stopping...")
		cancel()
		if err := fiberApp.Shutdown(); err != nil {
			logger.Errorf("Error shutting down server: %v", err)
		}
	}()

	if err := fiberApp.Listen(":" + cfg.Port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
