// Package main is the entry point for the driveledger API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"driveledger/internal/config"
	"driveledger/internal/domain/auth"
	"driveledger/internal/domain/ledger"
	"driveledger/internal/domain/reports"
	"driveledger/internal/infrastructure/events"
	v1 "driveledger/internal/infrastructure/http/v1"
	"driveledger/internal/infrastructure/storage"
	"driveledger/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalw("invalid configuration", "error", err)
	}

	ctx := context.Background()
	log.Info("starting driveledger server")

	// --- Archive ---
	archive, err := storage.NewArchive(ctx, cfg)
	if err != nil {
		log.Fatalw("failed to initialize archive", "error", err)
	}
	defer archive.Close()

	// --- Ledger state ---
	// A failed bulk load is a warning: the ledger starts empty and keeps working.
	var store *ledger.Store
	if data, err := archive.LoadAll(ctx); err != nil {
		log.Warnw("archive load failed, starting with empty ledger", "error", err)
		store = ledger.NewStore()
	} else {
		store = ledger.Rebuild(data.Vehicles, data.Sales, data.Expenses)
		inStock, sold := store.Counts()
		log.Infow("ledger restored from archive",
			"in_stock", inStock,
			"sold", sold,
			"expenses", len(store.Expenses()),
		)
	}

	// --- Event publisher (optional) ---
	var publisher ledger.EventPublisher = ledger.NopPublisher{}
	if cfg.AMQPURL != "" {
		p, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Warnw("event publisher unavailable, continuing without events", "error", err)
		} else {
			defer p.Close()
			publisher = p
		}
	}

	// --- Services ---
	jwtConfig := auth.DefaultJWTConfig(cfg.JWTSecret)
	jwtConfig.AccessTokenTTL = cfg.TokenTTL
	jwtService := auth.NewJWTService(jwtConfig)

	authService, err := auth.NewService(cfg.AuthUsername, cfg.AuthPassword, jwtService)
	if err != nil {
		log.Fatalw("failed to initialize auth service", "error", err)
	}

	ledgerService := ledger.NewService(store, archive, publisher)
	reportsService := reports.NewService(store)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:         log,
		JWTValidator:   jwtService,
		AuthService:    authService,
		Ledger:         ledgerService,
		Reports:        reportsService,
		Archive:        archive,
		ArchiveBackend: cfg.StorageBackend,
		CurrencyCode:   cfg.CurrencyCode,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", cfg.Port, "archive", cfg.StorageBackend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
