package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eys-55/infoman-quizzer/internal/api"
	"github.com/Eys-55/infoman-quizzer/internal/config"
	"github.com/Eys-55/infoman-quizzer/internal/db"
	"github.com/Eys-55/infoman-quizzer/internal/logger"
	"github.com/Eys-55/infoman-quizzer/internal/repository/sqlite"
	"github.com/Eys-55/infoman-quizzer/internal/services"
	"github.com/Eys-55/infoman-quizzer/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("Quizzer server starting")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("history_worker_count=%d", cfg.HistoryWorkerCount)
	log.Debug("history_queue_size=%d", cfg.HistoryQueueSize)
	log.Debug("min_ease_factor=%g", cfg.Tuning.MinEaseFactor)
	log.Debug("max_interval_days=%d", cfg.Tuning.MaxIntervalDays)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories and services
	deckRepo := sqlite.NewDeckRepository(database)
	cardRepo := sqlite.NewCardRepository(database)

	historyPool := worker.NewPool(cfg.HistoryWorkerCount, cfg.HistoryQueueSize)

	srv := &api.Server{
		DeckService:   services.NewDeckService(deckRepo, cardRepo),
		ReviewService: services.NewReviewService(cardRepo, cfg.Tuning, historyPool),
		StaticDir:     cfg.StaticDir,
	}

	ctx, cancel := context.WithCancel(context.Background())
	historyPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Let in-flight history jobs finish before closing the database.
	log.Debug("stopping history pool")
	cancel()
	historyPool.Stop()

	log.Info("Quizzer server stopped")
}
