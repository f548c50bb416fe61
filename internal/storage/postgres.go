package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // postgres driver
	"go.uber.org/zap"
)

// PostgresStore is a Store backed by a single key-value table. It exists for
// deployments that already run Postgres and want reminder data in the same
// backup domain as everything else.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresStore connects to Postgres and ensures the kv table exists.
func NewPostgresStore(ctx context.Context, databaseURL string, logger *zap.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create kv_store table: %w", err)
	}

	return &PostgresStore{db: db, logger: logger}, nil
}

// Get fetches the value for key. A missing row and a query failure both
// report absence; query failures are additionally logged.
func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("storage_read_failed",
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return "", false
	}
	return value, true
}

// Set upserts value under key.
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%w: postgres set %s: %v", ErrSaveFailed, key, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

var _ Store = (*PostgresStore)(nil)
