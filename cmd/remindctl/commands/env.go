package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/wchklaus97/remind-me/internal/config"
	"github.com/wchklaus97/remind-me/internal/persistence"
	"github.com/wchklaus97/remind-me/internal/storage"
)

// openEngine connects to the configured storage backend and returns a
// persistence engine plus a cleanup func. CLI runs are quiet: backend noise
// goes through a no-op logger and real failures surface as errors.
func openEngine(ctx context.Context) (*persistence.Engine, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := zap.NewNop()

	var store storage.Store
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return nil, nil, fmt.Errorf("STORAGE_BACKEND=memory holds no data between runs; use file, redis, or postgres")
	case config.BackendRedis:
		store, err = storage.NewRedisStore(ctx, cfg.RedisURL, logger)
	case config.BackendPostgres:
		store, err = storage.NewPostgresStore(ctx, cfg.DatabaseURL, logger)
	default:
		store = storage.NewFileStore(cfg.DataDir, logger)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s storage: %w", cfg.StorageBackend, err)
	}

	cleanup := func() {
		if closer, ok := store.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close storage: %v\n", err)
			}
		}
	}

	return persistence.NewEngine(store, logger), cleanup, nil
}

// commandContext returns a bounded context for one CLI invocation
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
