package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore is a Store backed by a Redis string per key. Useful when several
// devices share one reminder collection through a central Redis.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore connects to Redis using a redis:// URL and verifies the
// connection with a ping.
func NewRedisStore(ctx context.Context, redisURL string, logger *zap.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client, logger: logger}, nil
}

// Get fetches the value for key. redis.Nil and transport errors both report
// absence; transport errors are additionally logged.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("storage_read_failed",
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return "", false
	}
	return value, true
}

// Set stores value under key with no expiration.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", ErrSaveFailed, key, err)
	}
	return nil
}

// Close closes the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
