package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
)

// Redis stores values as plain redis strings under prefix+key.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

// NewRedis creates a store using a new client built from opts.
func NewRedis(opts *redis.Options, prefix string) *Redis {
	return &Redis{rdb: redis.NewClient(opts), prefix: prefix}
}

// Name implements ports.HealthChecker.
func (r *Redis) Name() string { return "kv-redis" }

// HealthCheck pings the server.
func (r *Redis) HealthCheck(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

// Get returns the value stored under key.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting key %q: %w", key, err)
	}
	return b, nil
}

// Set stores value under key with no expiry.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("setting key %q: %w", key, err)
	}
	return nil
}

// Close closes the client connection pool.
func (r *Redis) Close() error {
	return r.rdb.Close()
}
