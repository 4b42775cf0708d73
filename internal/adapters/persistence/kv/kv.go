// Package kv provides the key-value stores behind the local persistence
// strategy. Each store keeps opaque byte blobs under string keys and reports
// a missing key as domain.ErrNotFound.
package kv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/go-board-service/internal/ports"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Backend string
	// Path is the directory for BackendFile and the database file (or
	// ":memory:") for BackendSQLite.
	Path string
	// RedisAddr is the host:port of the redis server for BackendRedis, or a
	// redis:// or rediss:// URL carrying credentials and a database number.
	RedisAddr string
	// Prefix namespaces redis keys.
	Prefix string
}

var errRedisURL = errors.New("invalid redis url")

// Store is a ports.KeyValueStore that owns resources released by Close.
type Store interface {
	ports.KeyValueStore
	io.Closer
}

// Open creates the store selected by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendMemory, "":
		return NewMemory(), nil
	case BackendFile:
		return NewFile(opts.Path)
	case BackendSQLite:
		return OpenSQLite(ctx, opts.Path)
	case BackendRedis:
		ropts, err := redisOptions(opts.RedisAddr)
		if err != nil {
			return nil, err
		}
		return NewRedis(ropts, opts.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown kv backend %q", opts.Backend)
	}
}

func redisOptions(addr string) (*redis.Options, error) {
	if !strings.Contains(addr, "://") {
		return &redis.Options{Addr: addr}, nil
	}
	opts, err := redis.ParseURL(addr)
	if err != nil {
		// The URL may carry a password; report only the parse failure.
		return nil, fmt.Errorf("parsing redis url: %w", errRedisURL)
	}
	return opts, nil
}
