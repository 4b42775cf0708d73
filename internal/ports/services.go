package ports

import (
	"context"

	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
)

// BoardService defines the service port for one board instance.
// Implemented by the application layer's board store; called by inbound
// adapters (handlers). Every mutation returns the board as it stands after
// the call: the new tree on success, the unchanged tree on error.
type BoardService interface {
	// Snapshot returns the current tree.
	Snapshot() board.Board

	// AddStage appends a stage with two default columns (planner layout).
	// Returns domain.ErrValidation for a blank title or a board layout.
	AddStage(ctx context.Context, title string) (board.Board, error)

	// AddColumn appends a column to the root, a stage or a card.
	// Returns domain.ErrNotFound if parentID does not resolve.
	AddColumn(ctx context.Context, parentID board.ID, title string) (board.Board, error)

	// RenameEntity retitles a stage or column, or sets a card's content.
	// A blank title is ignored without error.
	// Returns domain.ErrNotFound if id does not resolve.
	RenameEntity(ctx context.Context, id board.ID, title string) (board.Board, error)

	// DeleteEntity removes an entity and its subtree. Unknown ids are a no-op.
	DeleteEntity(ctx context.Context, id board.ID) (board.Board, error)

	// AddCard appends a card to a column.
	// Returns domain.ErrValidation for blank content.
	AddCard(ctx context.Context, columnID board.ID, content, description string) (board.Board, error)

	// UpdateCard replaces a card's content and description. Blank content
	// is ignored with a logged warning and no error.
	UpdateCard(ctx context.Context, cardID board.ID, content, description string) (board.Board, error)

	// ToggleExpansion flips a card's expanded flag.
	ToggleExpansion(ctx context.Context, cardID board.ID) (board.Board, error)

	// Move runs the reorder engine.
	// Returns domain.ErrOutOfRange for an invalid source index.
	Move(ctx context.Context, m board.MoveDescriptor) (board.Board, error)
}

// BoardRegistry resolves board instances by name.
type BoardRegistry interface {
	// Board returns the named board.
	// Returns domain.ErrNotFound if no board has that name.
	Board(name string) (BoardService, error)

	// Names returns the configured board names in sorted order.
	Names() []string
}
