package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
)

// projectBoard returns a board whose single project card owns two nested
// columns holding three tasks in total.
func projectBoard() Board {
	return Board{
		Layout: LayoutBoard,
		Columns: []Column{
			{ID: "projects", Title: "Projects", Cards: []Card{
				{ID: "p1", Content: "Launch", Columns: []Column{
					{ID: "p1~todo", Title: "To Do", Cards: []Card{
						{ID: "t1", Content: "Write copy"},
						{ID: "t2", Content: "Pick date"},
					}},
					{ID: "p1~done", Title: "Done", Cards: []Card{
						{ID: "t3", Content: "Kickoff"},
					}},
				}},
				{ID: "p2", Content: "Refactor"},
			}},
		},
	}
}

func ids(b Board) []ID {
	var out []ID
	b.Walk(func(e Entity) bool {
		out = append(out, e.ID)
		return true
	})
	return out
}

func TestNewID(t *testing.T) {
	t.Parallel()

	seen := make(map[ID]struct{})
	for range 1000 {
		id := NewID(PrefixCard)
		if !strings.HasPrefix(string(id), PrefixCard) {
			t.Fatalf("NewID(%q) = %q, want prefix", PrefixCard, id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("NewID() returned duplicate %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestLayout_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		layout Layout
		want   bool
	}{
		{LayoutBoard, true},
		{LayoutPlanner, true},
		{"", false},
		{"Planner", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.layout), func(t *testing.T) {
			t.Parallel()
			if got := tt.layout.IsValid(); got != tt.want {
				t.Errorf("Layout(%q).IsValid() = %v, want %v", tt.layout, got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"stage", "column", "card"} {
		if k, err := ParseKind(s); err != nil || string(k) != s {
			t.Errorf("ParseKind(%q) = %q, %v", s, k, err)
		}
	}
	if _, err := ParseKind("task"); err == nil {
		t.Error("ParseKind(task) error = nil, want error")
	}
}

func TestBoard_Count(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		board Board
		want  int
	}{
		{name: "empty", board: New(LayoutBoard), want: 0},
		{name: "kanban seed", board: Kanban(), want: 10},
		{name: "planner seed", board: Planner(), want: 8},
		{name: "task board seed", board: TaskBoard(), want: 6},
		{name: "nested project", board: projectBoard(), want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.board.Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCard_TaskCount(t *testing.T) {
	t.Parallel()

	b := projectBoard()
	if got := b.Columns[0].Cards[0].TaskCount(); got != 3 {
		t.Errorf("TaskCount() = %d, want 3", got)
	}
	if got := b.Columns[0].Cards[1].TaskCount(); got != 0 {
		t.Errorf("TaskCount() on card without columns = %d, want 0", got)
	}
}

func TestBoard_Walk(t *testing.T) {
	t.Parallel()

	t.Run("visits in display order", func(t *testing.T) {
		t.Parallel()
		got := ids(projectBoard())
		want := []ID{"projects", "p1", "p1~todo", "t1", "t2", "p1~done", "t3", "p2"}
		if len(got) != len(want) {
			t.Fatalf("Walk() visited %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Walk() visited %v, want %v", got, want)
			}
		}
	})

	t.Run("reports parents and depth", func(t *testing.T) {
		t.Parallel()
		var found Entity
		projectBoard().Walk(func(e Entity) bool {
			if e.ID == "t3" {
				found = e
				return false
			}
			return true
		})
		if found.Parent != "p1~done" || found.Kind != KindCard || found.Depth != 3 {
			t.Errorf("Walk() entity = %+v, want parent p1~done, card, depth 3", found)
		}
	})

	t.Run("stops early", func(t *testing.T) {
		t.Parallel()
		n := 0
		Planner().Walk(func(Entity) bool {
			n++
			return n < 2
		})
		if n != 2 {
			t.Errorf("Walk() visited %d entities after stop, want 2", n)
		}
	})
}

func TestBoard_Find(t *testing.T) {
	t.Parallel()

	b := Planner()
	if k, ok := b.Find("stage-production"); !ok || k != KindStage {
		t.Errorf("Find(stage) = %q, %v", k, ok)
	}
	if k, ok := b.Find("col-review"); !ok || k != KindColumn {
		t.Errorf("Find(column) = %q, %v", k, ok)
	}
	if _, ok := b.Find("missing"); ok {
		t.Error("Find(missing) ok = true, want false")
	}
}

func TestBoard_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		board     Board
		wantField string
	}{
		{name: "seed is valid", board: Kanban()},
		{name: "planner seed is valid", board: Planner()},
		{name: "empty board is valid", board: New(LayoutBoard)},
		{
			name:      "unknown layout",
			board:     Board{Layout: "grid"},
			wantField: "layout",
		},
		{
			name: "duplicate ids",
			board: Board{Layout: LayoutBoard, Columns: []Column{
				{ID: "a", Cards: []Card{{ID: "x"}}},
				{ID: "b", Cards: []Card{{ID: "x"}}},
			}},
			wantField: "id",
		},
		{
			name:      "empty id",
			board:     Board{Layout: LayoutBoard, Columns: []Column{{Title: "no id"}}},
			wantField: "id",
		},
		{
			name:      "stages on board layout",
			board:     Board{Layout: LayoutBoard, Stages: []Stage{{ID: "s"}}},
			wantField: "stages",
		},
		{
			name:      "columns on planner root",
			board:     Board{Layout: LayoutPlanner, Columns: []Column{{ID: "c"}}},
			wantField: "columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.board.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Validate() fields = %v, want key %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestSeedByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{SeedKanban, SeedPlanner, SeedTaskBoard, SeedEmpty, ""} {
		b, err := SeedByName(name)
		if err != nil {
			t.Fatalf("SeedByName(%q) error = %v", name, err)
		}
		if err := b.Validate(); err != nil {
			t.Errorf("SeedByName(%q).Validate() = %v", name, err)
		}
	}

	if _, err := SeedByName("nope"); err == nil {
		t.Error("SeedByName(nope) error = nil, want error")
	}
}

func TestSeed_FreshCopies(t *testing.T) {
	t.Parallel()

	a := Kanban()
	a.Columns[0].Title = "changed"
	if Kanban().Columns[0].Title != "To Do" {
		t.Error("Kanban() returned shared storage")
	}
}

func TestBoard_Same(t *testing.T) {
	t.Parallel()

	b := projectBoard()
	moved := MoveDescriptor{Kind: KindCard, Source: Scope{"projects"}, Dest: Scope{"projects"}, SourceIndex: 1, DestIndex: 0}

	tests := []struct {
		name string
		op   func(Board) (Board, error)
		want bool
	}{
		{name: "delete of an unknown id", op: func(b Board) (Board, error) { return DeleteEntity(b, "ghost") }, want: true},
		{name: "move onto itself", op: func(b Board) (Board, error) {
			return Move(b, MoveDescriptor{Kind: KindCard, Source: Scope{"projects"}, Dest: Scope{"projects"}})
		}, want: true},
		{name: "reorder", op: func(b Board) (Board, error) { return Move(b, moved) }},
		{name: "nested rename", op: func(b Board) (Board, error) { return RenameEntity(b, "t2", "Set date") }},
		{name: "nested delete", op: func(b Board) (Board, error) { return DeleteEntity(b, "t3") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next, err := tt.op(b)
			if err != nil {
				t.Fatalf("op error = %v", err)
			}
			if got := next.Same(b); got != tt.want {
				t.Errorf("Same() = %v, want %v", got, tt.want)
			}
		})
	}

	if (Board{Layout: LayoutBoard}).Same(Board{Layout: LayoutPlanner}) {
		t.Error("Same() = true across layouts")
	}
}
