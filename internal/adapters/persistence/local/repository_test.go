package local

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-board-service/internal/adapters/persistence/kv"
	"github.com/jsamuelsen11/go-board-service/internal/domain"
	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
	"github.com/jsamuelsen11/go-board-service/mocks"
)

const testKey = "kanban-board-data"

func TestRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	nested, err := board.AddColumn(board.TaskBoard(), "task-card-1", "Subtasks")
	if err != nil {
		t.Fatalf("AddColumn() error = %v", err)
	}
	nested, err = board.ToggleExpansion(nested, "task-card-2")
	if err != nil {
		t.Fatalf("ToggleExpansion() error = %v", err)
	}

	tests := []struct {
		name  string
		board board.Board
	}{
		{name: "kanban", board: board.Kanban()},
		{name: "planner", board: board.Planner()},
		{name: "nested task columns", board: nested},
		{name: "empty", board: board.New(board.LayoutBoard)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			repo := NewRepository(kv.NewMemory(), testKey, board.Kanban, nil)

			if err := repo.Save(ctx, tt.board); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.board) {
				t.Errorf("Load() = %+v, want %+v", got, tt.board)
			}
		})
	}
}

func TestRepository_LoadFallsBackToSeed(t *testing.T) {
	t.Parallel()

	dup, _ := json.Marshal(boardDTO{
		Layout: "board",
		Columns: []columnDTO{
			{ID: "a", Title: "A", Cards: []cardDTO{{ID: "a", Content: "dup"}}},
		},
	})

	tests := []struct {
		name string
		data []byte
	}{
		{name: "malformed json", data: []byte(`{"columns": [`)},
		{name: "wrong shape", data: []byte(`["not", "a", "board"]`)},
		{name: "duplicate ids", data: dup},
		{name: "unknown layout", data: []byte(`{"layout":"grid","stages":[],"columns":[]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			store := kv.NewMemory()
			if err := store.Set(ctx, testKey, tt.data); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			got, err := NewRepository(store, testKey, board.Planner, nil).Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v, want nil", err)
			}
			if !reflect.DeepEqual(got, board.Planner()) {
				t.Errorf("Load() = %+v, want planner seed", got)
			}
		})
	}
}

func TestRepository_LoadMissingKey(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockKeyValueStore(t)
	store.EXPECT().Get(mock.Anything, testKey).Return(nil, domain.ErrNotFound)

	got, err := NewRepository(store, testKey, board.Kanban, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Count() != 10 {
		t.Errorf("Load().Count() = %d, want seed count 10", got.Count())
	}
}

func TestRepository_LoadStoreFailure(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockKeyValueStore(t)
	store.EXPECT().Get(mock.Anything, testKey).Return(nil, errors.New("connection refused"))

	_, err := NewRepository(store, testKey, board.Kanban, nil).Load(context.Background())
	if !errors.Is(err, domain.ErrPersistence) {
		t.Errorf("Load() error = %v, want ErrPersistence", err)
	}
}

func TestRepository_LoadMissingLayout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory()
	data := []byte(`{"columns":[{"id":"c1","title":"Todo","cards":[{"id":"k1","content":"Task"}]}]}`)
	if err := store.Set(ctx, testKey, data); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := NewRepository(store, testKey, board.Planner, nil).Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Layout != board.LayoutBoard {
		t.Errorf("Layout = %q, want board", got.Layout)
	}
	if got.Count() != 2 {
		t.Errorf("Count() = %d, want 2", got.Count())
	}
}

func TestRepository_SaveWritesDocument(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockKeyValueStore(t)
	var written []byte
	store.EXPECT().Set(mock.Anything, testKey, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, value []byte) error {
			written = value
			return nil
		})

	if err := NewRepository(store, testKey, board.Kanban, nil).Save(context.Background(), board.Planner()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(written, &doc); err != nil {
		t.Fatalf("written document is not JSON: %v", err)
	}
	if doc["layout"] != "planner" {
		t.Errorf("layout = %v, want planner", doc["layout"])
	}
	if cols, ok := doc["columns"].([]any); !ok || len(cols) != 0 {
		t.Errorf("columns = %v, want empty array", doc["columns"])
	}
	if stages, ok := doc["stages"].([]any); !ok || len(stages) != 2 {
		t.Errorf("stages = %v, want 2 entries", doc["stages"])
	}
}

func TestRepository_SaveFailure(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockKeyValueStore(t)
	store.EXPECT().Set(mock.Anything, testKey, mock.Anything).Return(errors.New("disk full"))

	err := NewRepository(store, testKey, board.Kanban, nil).Save(context.Background(), board.Kanban())
	if !errors.Is(err, domain.ErrPersistence) {
		t.Errorf("Save() error = %v, want ErrPersistence", err)
	}
}
