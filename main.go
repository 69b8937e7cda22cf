// main.go
package main

import (
	"context"
	"log"

	"seat-booking/cmd"
	"seat-booking/internal/data/repository"
	"seat-booking/internal/wire"
	"seat-booking/pkg/database"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger = logger.With(zap.String("run_id", utils.GenerateRunID()))

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("store", config.Store.Backend),
		zap.Bool("debug", config.App.Debug),
	)

	// Pick the record store backend
	var repo *repository.Repository
	switch config.Store.Backend {
	case utils.StoreBackendMemory:
		repo = repository.NewMemoryRepository(logger)
		logger.Info("Using in-memory booking store; nothing will survive exit")
	default:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		repo = repository.NewRepository(db, logger)
		logger.Info("Database connected successfully")
	}

	// Wire all dependencies
	app := wire.Wiring(repo, config, logger)

	// Rebuild seat state from persisted bookings. An integrity fault
	// here means the store contradicts itself; refuse to run on it.
	count, err := app.Service.Ledger.Load(context.Background())
	if err != nil {
		logger.Fatal("Booking store failed integrity check", zap.Error(err))
	}

	logger.Info("Seat map ready", zap.Int("restored_bookings", count))

	// Run the interactive loop
	cmd.ConsoleApp(app.Console)
}
