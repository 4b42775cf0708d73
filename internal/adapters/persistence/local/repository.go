package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
	"github.com/jsamuelsen11/go-board-service/internal/ports"
)

// Compile-time check that Repository implements ports.BoardRepository.
var _ ports.BoardRepository = (*Repository)(nil)

// Repository stores one board under key in a key-value store.
type Repository struct {
	store  ports.KeyValueStore
	key    string
	seed   func() board.Board
	logger *slog.Logger
}

// NewRepository creates a Repository. seed is called whenever Load has no
// usable document; it must return a fresh board on every call.
func NewRepository(store ports.KeyValueStore, key string, seed func() board.Board, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{
		store:  store,
		key:    key,
		seed:   seed,
		logger: logger.With(slog.String("key", key)),
	}
}

// Load reads the board document. An absent, malformed or inconsistent
// document is logged and replaced by the seed, so Load only fails when the
// store itself is unreachable.
func (r *Repository) Load(ctx context.Context) (board.Board, error) {
	data, err := r.store.Get(ctx, r.key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		r.logger.InfoContext(ctx, "no stored board, using seed")
		return r.seed(), nil
	case err != nil:
		return board.Board{}, fmt.Errorf("reading board %q: %w: %w", r.key, domain.ErrPersistence, err)
	}

	var dto boardDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		r.logger.WarnContext(ctx, "stored board is malformed, using seed",
			slog.String("operation", "Load"),
			slog.Any("error", err),
		)
		return r.seed(), nil
	}

	b := toDomain(dto)
	if err := b.Validate(); err != nil {
		r.logger.WarnContext(ctx, "stored board failed integrity check, using seed",
			slog.String("operation", "Load"),
			slog.Any("error", err),
		)
		return r.seed(), nil
	}
	return b, nil
}

// Save writes the whole board under the key.
func (r *Repository) Save(ctx context.Context, b board.Board) error {
	data, err := json.Marshal(toDTO(b))
	if err != nil {
		return fmt.Errorf("encoding board %q: %w: %w", r.key, domain.ErrPersistence, err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("writing board %q: %w: %w", r.key, domain.ErrPersistence, err)
	}
	return nil
}
