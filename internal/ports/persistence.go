package ports

import (
	"context"

	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
)

// BoardRepository loads and saves the whole tree of one board instance.
// Implemented by the local and remote persistence adapters; called by the
// board store and its sync worker.
type BoardRepository interface {
	// Load returns the persisted board. Implementations that can fall back
	// to a seed do so and return a nil error; an error means no usable
	// board could be produced.
	Load(ctx context.Context) (board.Board, error)

	// Save persists the given board. Errors wrap domain.ErrPersistence.
	Save(ctx context.Context, b board.Board) error
}

// BoardShaper is implemented by repositories whose Load fills in structure a
// mutated tree can lack. The board store passes every changed tree through
// Shape before storing it, so the live tree matches what a reload returns.
type BoardShaper interface {
	Shape(b board.Board) board.Board
}

// KeyValueStore is the byte-blob collaborator behind the local persistence
// strategy. Implementations: in-memory map, one file per key, sqlite table,
// redis.
type KeyValueStore interface {
	HealthChecker

	// Get returns the value stored under key.
	// Returns domain.ErrNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
