// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
	"github.com/jsamuelsen11/go-board-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-board-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-board-service/internal/ports"
)

// Compile-time check that BoardStore implements ports.BoardService.
var _ ports.BoardService = (*BoardStore)(nil)

// BoardStore owns the tree of one board instance. Every operation runs the
// matching pure board operation under the store's write lock, swaps in the
// result and hands the new tree to the sync worker. The store never waits
// for persistence and never rolls back a successful mutation.
type BoardStore struct {
	name    string
	seed    board.Board
	repo    ports.BoardRepository
	shaper  ports.BoardShaper
	tree    *SafeRef[board.Board]
	sync    *syncWorker
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewBoardStore creates a BoardStore holding seed until Start loads the
// persisted tree. A nil logger is replaced by a no-op logger; metrics may
// be nil.
func NewBoardStore(
	name string,
	seed board.Board,
	repo ports.BoardRepository,
	opts SyncOptions,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) *BoardStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(slog.String("board", name))
	shaper, _ := repo.(ports.BoardShaper)

	return &BoardStore{
		name:    name,
		seed:    seed,
		repo:    repo,
		shaper:  shaper,
		tree:    NewRef(seed),
		sync:    newSyncWorker(name, repo, opts, logger, metrics),
		logger:  logger,
		metrics: metrics,
	}
}

// Name returns the board's configured name.
func (s *BoardStore) Name() string {
	return s.name
}

// Start loads the persisted tree and starts the sync worker. A load failure
// is logged and the store keeps its seed; Start itself does not fail.
func (s *BoardStore) Start(ctx context.Context) {
	b, err := s.repo.Load(ctx)
	switch {
	case err != nil:
		s.logger.ErrorContext(ctx, "failed to load board, using seed",
			slog.String("operation", "Load"),
			slog.Any("error", err),
		)
	case b.Layout != s.seed.Layout:
		s.logger.WarnContext(ctx, "persisted board has a different layout, using seed",
			slog.String("want", s.seed.Layout.String()),
			slog.String("got", b.Layout.String()),
		)
	default:
		s.tree.Set(b)
		s.logger.InfoContext(ctx, "board loaded", slog.Int("entities", b.Count()))
	}

	s.sync.start(ctx)
}

// Close stops accepting snapshots and waits for queued saves to finish.
func (s *BoardStore) Close(ctx context.Context) error {
	return s.sync.stop(ctx)
}

// Snapshot returns the current tree.
func (s *BoardStore) Snapshot() board.Board {
	return s.tree.Get()
}

// AddStage appends a stage with two default columns.
func (s *BoardStore) AddStage(ctx context.Context, title string) (board.Board, error) {
	return s.mutate(ctx, "add_stage", func(b board.Board) (board.Board, error) {
		return board.AddStage(b, title)
	})
}

// AddColumn appends a column to the root, a stage or a card.
func (s *BoardStore) AddColumn(ctx context.Context, parentID board.ID, title string) (board.Board, error) {
	return s.mutate(ctx, "add_column", func(b board.Board) (board.Board, error) {
		return board.AddColumn(b, parentID, title)
	})
}

// RenameEntity retitles a stage or column, or sets a card's content.
func (s *BoardStore) RenameEntity(ctx context.Context, id board.ID, title string) (board.Board, error) {
	return s.mutate(ctx, "rename", func(b board.Board) (board.Board, error) {
		return board.RenameEntity(b, id, title)
	})
}

// DeleteEntity removes an entity and its subtree.
func (s *BoardStore) DeleteEntity(ctx context.Context, id board.ID) (board.Board, error) {
	return s.mutate(ctx, "delete", func(b board.Board) (board.Board, error) {
		return board.DeleteEntity(b, id)
	})
}

// AddCard appends a card to a column.
func (s *BoardStore) AddCard(ctx context.Context, columnID board.ID, content, description string) (board.Board, error) {
	return s.mutate(ctx, "add_card", func(b board.Board) (board.Board, error) {
		return board.AddCard(b, columnID, content, description)
	})
}

// UpdateCard replaces a card's content and description.
func (s *BoardStore) UpdateCard(ctx context.Context, cardID board.ID, content, description string) (board.Board, error) {
	return s.mutate(ctx, "update_card", func(b board.Board) (board.Board, error) {
		return board.UpdateCard(b, cardID, content, description)
	})
}

// ToggleExpansion flips a card's expanded flag.
func (s *BoardStore) ToggleExpansion(ctx context.Context, cardID board.ID) (board.Board, error) {
	return s.mutate(ctx, "toggle", func(b board.Board) (board.Board, error) {
		return board.ToggleExpansion(b, cardID)
	})
}

// Move runs the reorder engine.
func (s *BoardStore) Move(ctx context.Context, m board.MoveDescriptor) (board.Board, error) {
	return s.mutate(ctx, "move", func(b board.Board) (board.Board, error) {
		return board.Move(b, m)
	})
}

// loggerFor prefers the request logger in ctx, which carries the request and
// correlation IDs.
func (s *BoardStore) loggerFor(ctx context.Context) *slog.Logger {
	if logger, ok := logging.Lookup(ctx); ok {
		return logger.With(slog.String("board", s.name))
	}
	return s.logger
}

// mutate applies op to the current tree. A changed tree is shaped, stored
// and enqueued for sync while the write lock is still held, so snapshots
// reach the worker in mutation order. A result that is Same as the current
// tree is not synced. board.ErrUnchanged is logged and reported to the
// caller as success.
func (s *BoardStore) mutate(ctx context.Context, op string, fn func(board.Board) (board.Board, error)) (board.Board, error) {
	changed := false
	b, err := s.tree.Swap(func(cur board.Board) (board.Board, error) {
		next, err := fn(cur)
		if err != nil {
			return cur, err
		}
		if next.Same(cur) {
			return cur, nil
		}
		if s.shaper != nil {
			next = s.shaper.Shape(next)
		}
		changed = true
		s.sync.enqueue(ctx, next)
		return next, nil
	})

	logger := s.loggerFor(ctx)
	switch {
	case err == nil && !changed:
		logger.DebugContext(ctx, "board unchanged", slog.String("operation", op))
	case errors.Is(err, board.ErrUnchanged):
		logger.WarnContext(ctx, "blank edit ignored", slog.String("operation", op))
		err = nil
	case err != nil:
		logger.InfoContext(ctx, "board operation rejected",
			slog.String("operation", op),
			slog.Any("error", err),
		)
	default:
		logger.DebugContext(ctx, "board updated", slog.String("operation", op))
	}

	s.metrics.RecordMutation(ctx, s.name, op, err)
	return b, err
}
