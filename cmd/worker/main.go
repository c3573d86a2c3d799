// Package main is the entry point for the driveledger event worker. It binds
// a queue to the ledger event exchange and writes an audit trail of dealership
// activity to the log.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"driveledger/internal/config"
	"driveledger/internal/domain/ledger"
	"driveledger/internal/infrastructure/events"
	"driveledger/pkg/logger"
)

func main() {
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

	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL is required for the event worker")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info("starting driveledger event worker")

	consumer, err := events.NewConsumer(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPExchange+".audit")
	if err != nil {
		log.Fatalw("failed to connect to broker", "error", err)
	}
	defer consumer.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := consumer.Consume(ctx, func(e ledger.Event) error {
			log.Infow("ledger event",
				"event", e.Name,
				"entity_id", e.EntityID,
				"occurred_at", e.OccurredAt,
			)
			return nil
		})
		if err != nil && ctx.Err() == nil {
			log.Errorw("consumer stopped", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	wg.Wait()
	log.Info("worker stopped")
}
