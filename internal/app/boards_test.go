package app

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
	"github.com/jsamuelsen11/go-board-service/mocks"
)

func TestBoards(t *testing.T) {
	t.Parallel()

	kanbanRepo := mocks.NewMockBoardRepository(t)
	kanbanRepo.EXPECT().Load(mock.Anything).Return(board.Kanban(), nil)
	plannerRepo := mocks.NewMockBoardRepository(t)
	plannerRepo.EXPECT().Load(mock.Anything).Return(board.Board{}, errors.New("unavailable"))

	r := NewBoards(
		NewBoardStore("planner", board.Planner(), plannerRepo, SyncOptions{}, discardLogger(), nil),
		NewBoardStore("kanban", board.New(board.LayoutBoard), kanbanRepo, SyncOptions{}, discardLogger(), nil),
	)
	ctx := context.Background()
	r.Start(ctx)
	t.Cleanup(func() {
		if err := r.Close(ctx); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	if got := r.Names(); !slices.Equal(got, []string{"kanban", "planner"}) {
		t.Errorf("Names() = %v, want [kanban planner]", got)
	}

	svc, err := r.Board("kanban")
	if err != nil {
		t.Fatalf("Board(kanban) error = %v", err)
	}
	if svc.Snapshot().Count() != 10 {
		t.Errorf("kanban Count() = %d, want 10", svc.Snapshot().Count())
	}

	svc, err = r.Board("planner")
	if err != nil {
		t.Fatalf("Board(planner) error = %v", err)
	}
	if svc.Snapshot().Layout != board.LayoutPlanner {
		t.Errorf("planner Layout = %q", svc.Snapshot().Layout)
	}

	if _, err := r.Board("missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Board(missing) error = %v, want ErrNotFound", err)
	}
}
