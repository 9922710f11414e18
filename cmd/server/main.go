package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/runwayhq/runway/internal/config"
	"github.com/runwayhq/runway/internal/database"
	"github.com/runwayhq/runway/internal/modules/budget"
	"github.com/runwayhq/runway/internal/modules/planned"
	"github.com/runwayhq/runway/internal/modules/transactions"
	"github.com/runwayhq/runway/internal/scheduler"
	"github.com/runwayhq/runway/internal/server"
	"github.com/runwayhq/runway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info"})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting runway service")

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	// Apply module schemas
	if err := db.Migrate(transactions.Schema, planned.Schema, budget.Schema); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize scheduler
	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	// Register background jobs
	if err := registerJobs(sched, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to register jobs")
	}

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:    cfg.Port,
		Log:     log,
		DB:      db,
		Config:  cfg,
		DevMode: cfg.DevMode,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

func registerJobs(sched *scheduler.Scheduler, db *database.DB, cfg *config.Config, log zerolog.Logger) error {
	conn := db.Conn()

	txRepo := transactions.NewRepository(conn, log)
	plannedRepo := planned.NewRepository(conn, log)
	budgetRepo := budget.NewRepository(conn, log)
	projector := budget.NewProjector(log)
	budgetService := budget.NewService(budgetRepo, txRepo, plannedRepo, projector, log)

	refreshJob := scheduler.NewBudgetRefreshJob(budgetRepo, budgetService, log)
	return sched.AddJob(cfg.RefreshSchedule, refreshJob)
}
