package remote

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
	"github.com/jsamuelsen11/go-board-service/internal/domain/project"
	"github.com/jsamuelsen11/go-board-service/mocks"
)

// seededStore holds two projects: p1 with explicit, unordered columns and
// p2 with none, so it gets the default columns.
func seededStore(t *testing.T) *fakeStore {
	t.Helper()
	s := newFakeStore(t)
	s.addProject(doc{"_id": "p1", "title": "Launch", "description": "Q3", "columns": []any{
		doc{"id": "done", "title": "Done", "order": 2},
		doc{"id": "todo", "title": "To Do", "order": 0},
	}})
	s.addProject(doc{"_id": "p2", "title": "Docs"})
	s.addTask(doc{"_id": "t1", "projectId": "p1", "content": "Draft", "columnId": "todo"})
	s.addTask(doc{"_id": "t2", "projectId": "p1", "content": "Lost", "columnId": "review"})
	s.addTask(doc{"_id": "t3", "projectId": "p2", "content": "Publish", "description": "blog", "columnId": "done"})
	return s
}

func loaded(t *testing.T, s *fakeStore) (*Repository, board.Board) {
	t.Helper()
	repo := NewRepository(s.client(), 2, nil)
	b, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	s.takeRequests()
	return repo, b
}

func cardIDs(cards []board.Card) []board.ID {
	ids := make([]board.ID, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func TestRepository_Load(t *testing.T) {
	t.Parallel()

	_, b := loaded(t, seededStore(t))

	if b.Layout != board.LayoutBoard || len(b.Columns) != 1 || b.Columns[0].ID != ProjectsColumnID {
		t.Fatalf("root = %+v, want single projects column", b.Columns)
	}
	projects := b.Columns[0].Cards
	if got := cardIDs(projects); !slices.Equal(got, []board.ID{"p1", "p2"}) {
		t.Fatalf("project cards = %v, want [p1 p2]", got)
	}

	p1 := projects[0]
	if p1.Content != "Launch" || p1.Description != "Q3" {
		t.Errorf("p1 = %q / %q", p1.Content, p1.Description)
	}
	if len(p1.Columns) != 2 || p1.Columns[0].ID != "p1~todo" || p1.Columns[1].ID != "p1~done" {
		t.Fatalf("p1 columns = %+v, want p1~todo then p1~done", p1.Columns)
	}
	if got := cardIDs(p1.Columns[0].Cards); !slices.Equal(got, []board.ID{"t1", "t2"}) {
		t.Errorf("p1~todo cards = %v, want [t1 t2] (t2 has an unknown column)", got)
	}

	p2 := projects[1]
	wantCols := []board.ID{"p2~todo", "p2~in-progress", "p2~done"}
	gotCols := make([]board.ID, len(p2.Columns))
	for i, c := range p2.Columns {
		gotCols[i] = c.ID
	}
	if !slices.Equal(gotCols, wantCols) {
		t.Errorf("p2 columns = %v, want defaults %v", gotCols, wantCols)
	}
	if cards := p2.Columns[2].Cards; len(cards) != 1 || cards[0].Description != "blog" {
		t.Errorf("p2~done cards = %+v, want t3", cards)
	}
	if p1.TaskCount() != 2 || p2.TaskCount() != 1 {
		t.Errorf("TaskCount() = %d, %d, want 2, 1", p1.TaskCount(), p2.TaskCount())
	}
}

func TestRepository_Load_EmptyStore(t *testing.T) {
	t.Parallel()

	_, b := loaded(t, newFakeStore(t))
	col, ok := projectsColumn(b)
	if !ok || len(col.Cards) != 0 {
		t.Errorf("Load() = %+v, want empty projects column", b)
	}
}

func TestRepository_SaveUnchanged(t *testing.T) {
	t.Parallel()

	s := seededStore(t)
	repo, b := loaded(t, s)

	if err := repo.Save(context.Background(), b); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if reqs := s.takeRequests(); len(reqs) != 0 {
		t.Errorf("Save(unchanged) sent %v, want nothing", reqs)
	}
}

func TestRepository_SaveDiff(t *testing.T) {
	t.Parallel()

	s := seededStore(t)
	repo, b := loaded(t, s)
	ctx := context.Background()

	must := func(b board.Board, err error) board.Board {
		t.Helper()
		if err != nil {
			t.Fatalf("board op error = %v", err)
		}
		return b
	}

	// New project with one column and one task.
	b = must(board.AddCard(b, ProjectsColumnID, "Podcast", "weekly"))
	newProject := b.Columns[0].Cards[2].ID
	b = must(board.AddColumn(b, newProject, "Backlog"))
	newColumn := b.Columns[0].Cards[2].Columns[0].ID
	b = must(board.AddCard(b, newColumn, "Book guest", ""))
	// Rename p2, move t1 to done, delete t3.
	b = must(board.RenameEntity(b, "p2", "Documentation"))
	b = must(board.Move(b, board.MoveDescriptor{
		Kind: board.KindCard, Source: board.Scope{"p1~todo"}, Dest: board.Scope{"p1~done"},
	}))
	b = must(board.DeleteEntity(b, "t3"))

	if err := repo.Save(ctx, b); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	want := []string{
		"POST /project",
		"PATCH /project/p2",
		"POST /task",
		"PATCH /task/t1",
		"DELETE /task/t3",
	}
	if got := s.takeRequests(); !slices.Equal(got, want) {
		t.Fatalf("requests = %v, want %v", got, want)
	}

	if got := s.task("t1")["columnId"]; got != "done" {
		t.Errorf("t1 columnId = %v, want done", got)
	}
	if got := s.project("p2")["title"]; got != "Documentation" {
		t.Errorf("p2 title = %v, want Documentation", got)
	}
	if s.task("t3") != nil {
		t.Error("t3 still stored")
	}

	created := s.project("p101")
	if created == nil || created["title"] != "Podcast" {
		t.Fatalf("created project = %v", created)
	}
	cols, _ := created["columns"].([]any)
	if len(cols) != 1 {
		t.Fatalf("created columns = %v, want 1", created["columns"])
	}
	task := s.task("t102")
	if task == nil || task["projectId"] != "p101" || task["columnId"] != string(newColumn) {
		t.Errorf("created task = %v, want projectId p101 columnId %s", task, newColumn)
	}

	// A second save with the same tree is a no-op.
	if err := repo.Save(ctx, b); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	if reqs := s.takeRequests(); len(reqs) != 0 {
		t.Errorf("second Save() sent %v, want nothing", reqs)
	}

	// Editing the created task addresses it by its server id.
	taskID := b.Columns[0].Cards[2].Columns[0].Cards[0].ID
	b = must(board.UpdateCard(b, taskID, "Book two guests", ""))
	if err := repo.Save(ctx, b); err != nil {
		t.Fatalf("third Save() error = %v", err)
	}
	if got := s.takeRequests(); !slices.Equal(got, []string{"PATCH /task/t102"}) {
		t.Errorf("requests = %v, want [PATCH /task/t102]", got)
	}
}

func TestRepository_NewProjectSurvivesReload(t *testing.T) {
	t.Parallel()

	s := newFakeStore(t)
	repo, b := loaded(t, s)
	ctx := context.Background()

	b, err := board.AddCard(b, ProjectsColumnID, "Podcast", "weekly")
	if err != nil {
		t.Fatalf("AddCard() error = %v", err)
	}
	b = repo.Shape(b)
	card := b.Columns[0].Cards[0]
	if len(card.Columns) != len(project.DefaultColumns) {
		t.Fatalf("shaped columns = %+v, want the defaults", card.Columns)
	}
	b, err = board.AddCard(b, card.Columns[1].ID, "Book guest", "")
	if err != nil {
		t.Fatalf("AddCard(task) error = %v", err)
	}
	if err := repo.Save(ctx, b); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	_, reloaded := loaded(t, s)
	got := reloaded.Columns[0].Cards[0]
	if got.Content != "Podcast" || len(got.Columns) != len(card.Columns) {
		t.Fatalf("reloaded project = %+v, want Podcast with %d columns", got, len(card.Columns))
	}
	for i, c := range got.Columns {
		live := b.Columns[0].Cards[0].Columns[i]
		if c.Title != live.Title || remoteColumnID(got.ID, c.ID) != remoteColumnID(card.ID, live.ID) {
			t.Errorf("column %d = {%s %q}, want {%s %q}", i, c.ID, c.Title, live.ID, live.Title)
		}
		if len(c.Cards) != len(live.Cards) {
			t.Errorf("column %s holds %d tasks, want %d", c.ID, len(c.Cards), len(live.Cards))
		}
	}
}

func TestRepository_ShapeLeavesProjectsWithColumns(t *testing.T) {
	t.Parallel()

	repo, b := loaded(t, seededStore(t))

	if got := repo.Shape(b); !got.Same(b) {
		t.Error("Shape() rebuilt a tree whose projects all have columns")
	}
	kanban := board.Kanban()
	if got := repo.Shape(kanban); !got.Same(kanban) {
		t.Error("Shape() rebuilt a tree without the projects column")
	}
}

func TestRepository_SaveDeleteProject(t *testing.T) {
	t.Parallel()

	s := seededStore(t)
	repo, b := loaded(t, s)

	b, err := board.DeleteEntity(b, "p1")
	if err != nil {
		t.Fatalf("DeleteEntity() error = %v", err)
	}
	if err := repo.Save(context.Background(), b); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	want := []string{"DELETE /task/t1", "DELETE /task/t2", "DELETE /project/p1"}
	if got := s.takeRequests(); !slices.Equal(got, want) {
		t.Errorf("requests = %v, want %v", got, want)
	}
}

func TestRepository_SaveReorderColumns(t *testing.T) {
	t.Parallel()

	s := seededStore(t)
	repo, b := loaded(t, s)

	b, err := board.Move(b, board.MoveDescriptor{
		Kind: board.KindColumn, Source: board.Scope{"p1"}, Dest: board.Scope{"p1"}, SourceIndex: 1, DestIndex: 0,
	})
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if err := repo.Save(context.Background(), b); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if got := s.takeRequests(); !slices.Equal(got, []string{"PATCH /project/p1"}) {
		t.Fatalf("requests = %v, want [PATCH /project/p1]", got)
	}
	cols, _ := s.project("p1")["columns"].([]any)
	if len(cols) != 2 {
		t.Fatalf("columns = %v", cols)
	}
	first, _ := cols[0].(map[string]any)
	if first["id"] != "done" || first["order"] != float64(0) {
		t.Errorf("first column = %v, want done at order 0", first)
	}
}

func TestRepository_SaveWithoutProjectsColumn(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockProjectClient(t)
	repo := NewRepository(client, 0, nil)

	if err := repo.Save(context.Background(), board.Kanban()); err != nil {
		t.Errorf("Save() error = %v, want nil", err)
	}
}

func TestRepository_FailedCreateIsResent(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockProjectClient(t)
	repo := NewRepository(client, 0, nil)
	ctx := context.Background()

	b, err := board.AddCard(Empty(), ProjectsColumnID, "Launch", "")
	if err != nil {
		t.Fatalf("AddCard() error = %v", err)
	}
	b, err = board.AddColumn(b, b.Columns[0].Cards[0].ID, "Todo")
	if err != nil {
		t.Fatalf("AddColumn() error = %v", err)
	}
	b, err = board.AddCard(b, b.Columns[0].Cards[0].Columns[0].ID, "Task", "")
	if err != nil {
		t.Fatalf("AddCard() error = %v", err)
	}

	client.EXPECT().CreateProject(mock.Anything, mock.Anything).
		Return(nil, domain.ErrUnavailable).Once()

	err = repo.Save(ctx, b)
	if !errors.Is(err, domain.ErrPersistence) || !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("Save() error = %v, want ErrPersistence wrapping ErrUnavailable", err)
	}

	client.EXPECT().CreateProject(mock.Anything, mock.MatchedBy(func(p *project.Project) bool {
		return p.Title == "Launch" && len(p.Columns) == 1
	})).Return(&project.Project{ID: "srv-1"}, nil).Once()
	client.EXPECT().CreateTask(mock.Anything, mock.MatchedBy(func(tk *project.Task) bool {
		return tk.ProjectID == "srv-1" && tk.Content == "Task"
	})).Return(&project.Task{ID: "srv-2"}, nil).Once()

	if err := repo.Save(ctx, b); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
}

func TestRepository_DeleteNotFoundIsSynced(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockProjectClient(t)
	client.EXPECT().ListProjects(mock.Anything).Return([]project.Project{{ID: "p1", Title: "Launch"}}, nil)
	client.EXPECT().ListTasks(mock.Anything, "p1").Return(nil, nil)
	client.EXPECT().DeleteProject(mock.Anything, "p1").Return(domain.ErrNotFound).Once()

	repo := NewRepository(client, 0, nil)
	ctx := context.Background()
	if _, err := repo.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := repo.Save(ctx, Empty()); err != nil {
		t.Fatalf("Save() error = %v, want nil for already deleted project", err)
	}
	// The project is gone from the baseline, so nothing is sent again.
	if err := repo.Save(ctx, Empty()); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
}

func TestRepository_LoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(c *mocks.MockProjectClient)
	}{
		{
			name: "list projects fails",
			setup: func(c *mocks.MockProjectClient) {
				c.EXPECT().ListProjects(mock.Anything).Return(nil, domain.ErrUnavailable)
			},
		},
		{
			name: "list tasks fails",
			setup: func(c *mocks.MockProjectClient) {
				c.EXPECT().ListProjects(mock.Anything).Return([]project.Project{{ID: "p1"}, {ID: "p2"}}, nil)
				c.EXPECT().ListTasks(mock.Anything, "p1").Return(nil, nil)
				c.EXPECT().ListTasks(mock.Anything, "p2").Return(nil, domain.ErrUnavailable)
			},
		},
		{
			name: "duplicate ids",
			setup: func(c *mocks.MockProjectClient) {
				c.EXPECT().ListProjects(mock.Anything).Return([]project.Project{{ID: "p1"}}, nil)
				c.EXPECT().ListTasks(mock.Anything, "p1").Return([]project.Task{
					{ID: "p1", ProjectID: "p1", ColumnID: "todo"},
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := mocks.NewMockProjectClient(t)
			tt.setup(client)

			_, err := NewRepository(client, 0, nil).Load(context.Background())
			if !errors.Is(err, domain.ErrPersistence) {
				t.Errorf("Load() error = %v, want ErrPersistence", err)
			}
		})
	}
}

func TestColumnIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card board.ID
		col  board.ID
		want string
	}{
		{card: "p1", col: "p1~todo", want: "todo"},
		{card: "card-1", col: "col-9", want: "col-9"},
		{card: "p2", col: "p1~todo", want: "p1~todo"},
	}
	for _, tt := range tests {
		if got := remoteColumnID(tt.card, tt.col); got != tt.want {
			t.Errorf("remoteColumnID(%q, %q) = %q, want %q", tt.card, tt.col, got, tt.want)
		}
	}
	if got := columnID("p1", "todo"); got != "p1~todo" {
		t.Errorf("columnID() = %q, want p1~todo", got)
	}
}
