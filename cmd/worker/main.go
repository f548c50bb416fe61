package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/wchklaus97/remind-me/internal/config"
	"github.com/wchklaus97/remind-me/internal/logger"
	"github.com/wchklaus97/remind-me/internal/persistence"
	"github.com/wchklaus97/remind-me/internal/queue"
	"github.com/wchklaus97/remind-me/internal/storage"
	"github.com/wchklaus97/remind-me/internal/workers"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.WorkerDebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	zapLogger.Info("starting_worker",
		zap.Bool("debug_mode", debugMode),
		zap.String("storage_backend", string(cfg.StorageBackend)),
		zap.Duration("scan_interval", cfg.ScanInterval),
		zap.Duration("stale_after", cfg.StaleAfter),
	)

	store, err := newStore(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed_to_initialize_storage", zap.Error(err))
	}
	if closer, ok := store.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				zapLogger.Warn("failed_to_close_storage", zap.Error(err))
			}
		}()
	}

	engine := persistence.NewEngine(store, zapLogger)

	jobQueue, err := queue.NewRabbitMQQueue(cfg.RabbitMQURL)
	if err != nil {
		zapLogger.Fatal("failed_to_connect_to_rabbitmq", zap.Error(err))
	}
	defer func() {
		if err := jobQueue.Close(); err != nil {
			zapLogger.Warn("failed_to_close_rabbitmq_connection", zap.Error(err))
		}
	}()
	zapLogger.Info("connected_to_rabbitmq", zap.Int("prefetch", cfg.Prefetch))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	scanner := workers.NewScanner(engine, jobQueue, zapLogger, cfg.ScanInterval, cfg.StaleAfter)
	go scanner.Run(ctx)

	notifier := workers.NewNotifier(jobQueue, zapLogger, cfg.Prefetch)
	notifierDone := make(chan error, 1)
	go func() {
		notifierDone <- notifier.Run(ctx)
	}()

	zapLogger.Info("worker_started")

	select {
	case sig := <-sigChan:
		zapLogger.Info("received_shutdown_signal", zap.String("signal", sig.String()))
		cancel()

		// Give the in-flight message a moment to be acked before the
		// connection closes.
		select {
		case <-notifierDone:
		case <-time.After(5 * time.Second):
			zapLogger.Warn("notifier_shutdown_timed_out")
		}
	case err := <-notifierDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			zapLogger.Error("notifier_exited_with_error", zap.Error(err))
		}
	}

	zapLogger.Info("worker_exited")
}

// newStore builds the configured storage backend
func newStore(cfg *config.Config, zapLogger *zap.Logger) (storage.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cfg.StorageBackend {
	case config.BackendMemory:
		return storage.NewMemoryStore(), nil
	case config.BackendRedis:
		return storage.NewRedisStore(ctx, cfg.RedisURL, zapLogger)
	case config.BackendPostgres:
		return storage.NewPostgresStore(ctx, cfg.DatabaseURL, zapLogger)
	default:
		return storage.NewFileStore(cfg.DataDir, zapLogger), nil
	}
}
