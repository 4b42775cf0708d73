// Package remote implements the remote persistence strategy: a board whose
// projects and tasks live as separate documents in the project store.
//
// The tree holds a single root column, "projects", with one card per
// project. Each project card carries the project's columns and its tasks as
// nested cards. Save diffs the tree against the last synced snapshot and
// issues one request per changed document.
package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
	"github.com/jsamuelsen11/go-board-service/internal/domain/project"
	"github.com/jsamuelsen11/go-board-service/internal/platform/fanout"
	"github.com/jsamuelsen11/go-board-service/internal/ports"
)

// Compile-time checks that Repository implements the persistence ports.
var (
	_ ports.BoardRepository = (*Repository)(nil)
	_ ports.BoardShaper     = (*Repository)(nil)
)

const (
	// ProjectsColumnID is the id of the root column holding project cards.
	ProjectsColumnID board.ID = "projects"

	// ProjectsColumnTitle is its title.
	ProjectsColumnTitle = "Projects"

	// ColumnSeparator joins a project id and a column id. It must be legal in
	// a URL path segment and differ from board.ScopeSeparator.
	ColumnSeparator = "~"

	// DefaultMaxWorkers bounds the concurrent task listings on Load.
	DefaultMaxWorkers = 4
)

// Repository persists a board through a ports.ProjectClient.
type Repository struct {
	client     ports.ProjectClient
	maxWorkers int
	logger     *slog.Logger

	mu sync.Mutex
	// ids maps card ids to document ids. Loaded cards map to themselves;
	// cards created locally map to the _id the store assigned.
	ids    map[board.ID]string
	synced snapshot
}

// NewRepository creates a Repository. A maxWorkers below 1 uses
// DefaultMaxWorkers.
func NewRepository(client ports.ProjectClient, maxWorkers int, logger *slog.Logger) *Repository {
	if maxWorkers < 1 {
		maxWorkers = DefaultMaxWorkers
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{
		client:     client,
		maxWorkers: maxWorkers,
		logger:     logger,
		ids:        make(map[board.ID]string),
		synced:     newSnapshot(),
	}
}

// Empty returns the board a remote store starts from: the projects column
// with no projects.
func Empty() board.Board {
	return board.Board{
		Layout:  board.LayoutBoard,
		Columns: []board.Column{{ID: ProjectsColumnID, Title: ProjectsColumnTitle}},
	}
}

// Load lists every project, then the tasks of each project concurrently, and
// reassembles the tree. The result becomes the baseline for the next Save.
func (r *Repository) Load(ctx context.Context) (board.Board, error) {
	projects, err := r.client.ListProjects(ctx)
	if err != nil {
		return board.Board{}, fmt.Errorf("listing projects: %w: %w", domain.ErrPersistence, err)
	}

	results := fanout.Run(ctx, r.maxWorkers, projects, func(ctx context.Context, p project.Project) ([]project.Task, error) {
		tasks, err := r.client.ListTasks(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("listing tasks of project %s: %w", p.ID, err)
		}
		return tasks, nil
	})
	tasks, err := fanout.Collect(results)
	if err != nil {
		return board.Board{}, fmt.Errorf("loading tasks: %w: %w", domain.ErrPersistence, err)
	}

	b, orphans := assemble(projects, tasks)
	if len(orphans) > 0 {
		r.logger.WarnContext(ctx, "tasks reference unknown columns, placed in first column",
			slog.Any("task_ids", orphans),
		)
	}
	if err := b.Validate(); err != nil {
		return board.Board{}, fmt.Errorf("assembling board: %w: %w", domain.ErrPersistence, err)
	}

	col, _ := projectsColumn(b)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.synced = snapshotOf(col)
	r.ids = make(map[board.ID]string, len(r.synced.projects)+len(r.synced.tasks))
	for id := range r.synced.projects {
		r.ids[id] = string(id)
	}
	for id := range r.synced.tasks {
		r.ids[id] = string(id)
	}

	r.logger.InfoContext(ctx, "remote board loaded",
		slog.Int("projects", len(r.synced.projects)),
		slog.Int("tasks", len(r.synced.tasks)),
	)
	return b, nil
}

// Shape gives every project card without columns the default project
// columns, which is what Load assembles for such a project. Trees that need
// no change are returned as they are.
func (r *Repository) Shape(b board.Board) board.Board {
	i := slices.IndexFunc(b.Columns, func(c board.Column) bool { return c.ID == ProjectsColumnID })
	if i < 0 {
		return b
	}

	var cards []board.Card
	for j, card := range b.Columns[i].Cards {
		if len(card.Columns) > 0 {
			continue
		}
		if cards == nil {
			cards = slices.Clone(b.Columns[i].Cards)
		}
		cards[j].Columns = defaultColumns(card.ID)
	}
	if cards == nil {
		return b
	}

	b.Columns = slices.Clone(b.Columns)
	b.Columns[i].Cards = cards
	return b
}

// Save sends the documents that changed since the last successful sync in
// this order: project creates, project updates, task creates, task updates,
// task deletes, project deletes. Each request is sent immediately. A request
// that fails leaves its document out of the synced baseline, so the next
// Save sends it again. A tree without the projects column is not synced.
func (r *Repository) Save(ctx context.Context, b board.Board) error {
	col, ok := projectsColumn(b)
	if !ok {
		r.logger.WarnContext(ctx, "board has no projects column, skipping sync")
		return nil
	}
	next := snapshotOf(col)

	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	errs = append(errs, r.createProjects(ctx, next)...)
	errs = append(errs, r.updateProjects(ctx, next)...)
	errs = append(errs, r.createTasks(ctx, next)...)
	errs = append(errs, r.updateTasks(ctx, next)...)
	errs = append(errs, r.deleteTasks(ctx, next)...)
	errs = append(errs, r.deleteProjects(ctx, next)...)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("syncing board: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (r *Repository) createProjects(ctx context.Context, next snapshot) []error {
	var errs []error
	for _, id := range next.projectOrder {
		if _, ok := r.synced.projects[id]; ok {
			continue
		}
		p := next.projects[id]
		created, err := r.client.CreateProject(ctx, &p)
		if err != nil {
			errs = append(errs, r.failed(ctx, "CreateProject", id, err))
			continue
		}
		r.ids[id] = created.ID
		r.synced.projects[id] = p
		r.logger.DebugContext(ctx, "project created",
			slog.String("card_id", string(id)),
			slog.String("project_id", created.ID),
		)
	}
	return errs
}

func (r *Repository) updateProjects(ctx context.Context, next snapshot) []error {
	var errs []error
	for _, id := range next.projectOrder {
		prev, ok := r.synced.projects[id]
		p := next.projects[id]
		if !ok || sameProject(prev, p) {
			continue
		}
		p.ID = r.ids[id]
		if _, err := r.client.UpdateProject(ctx, &p); err != nil {
			errs = append(errs, r.failed(ctx, "UpdateProject", id, err))
			continue
		}
		p.ID = ""
		r.synced.projects[id] = p
	}
	return errs
}

func (r *Repository) createTasks(ctx context.Context, next snapshot) []error {
	var errs []error
	for _, id := range next.taskOrder {
		if _, ok := r.synced.tasks[id]; ok {
			continue
		}
		t := next.tasks[id]
		req, ok := r.remoteTask(t)
		if !ok {
			errs = append(errs, r.failed(ctx, "CreateTask", id,
				fmt.Errorf("project %s is not synced", t.ProjectID)))
			continue
		}
		created, err := r.client.CreateTask(ctx, &req)
		if err != nil {
			errs = append(errs, r.failed(ctx, "CreateTask", id, err))
			continue
		}
		r.ids[id] = created.ID
		r.synced.tasks[id] = t
	}
	return errs
}

func (r *Repository) updateTasks(ctx context.Context, next snapshot) []error {
	var errs []error
	for _, id := range next.taskOrder {
		prev, ok := r.synced.tasks[id]
		t := next.tasks[id]
		if !ok || prev == t {
			continue
		}
		req, ok := r.remoteTask(t)
		if !ok {
			errs = append(errs, r.failed(ctx, "UpdateTask", id,
				fmt.Errorf("project %s is not synced", t.ProjectID)))
			continue
		}
		req.ID = r.ids[id]
		if _, err := r.client.UpdateTask(ctx, &req); err != nil {
			errs = append(errs, r.failed(ctx, "UpdateTask", id, err))
			continue
		}
		r.synced.tasks[id] = t
	}
	return errs
}

func (r *Repository) deleteTasks(ctx context.Context, next snapshot) []error {
	var errs []error
	for _, id := range slices.Sorted(maps.Keys(r.synced.tasks)) {
		if _, ok := next.tasks[id]; ok {
			continue
		}
		if err := r.client.DeleteTask(ctx, r.ids[id]); err != nil && !errors.Is(err, domain.ErrNotFound) {
			errs = append(errs, r.failed(ctx, "DeleteTask", id, err))
			continue
		}
		delete(r.synced.tasks, id)
		delete(r.ids, id)
	}
	return errs
}

func (r *Repository) deleteProjects(ctx context.Context, next snapshot) []error {
	var errs []error
	for _, id := range slices.Sorted(maps.Keys(r.synced.projects)) {
		if _, ok := next.projects[id]; ok {
			continue
		}
		if err := r.client.DeleteProject(ctx, r.ids[id]); err != nil && !errors.Is(err, domain.ErrNotFound) {
			errs = append(errs, r.failed(ctx, "DeleteProject", id, err))
			continue
		}
		delete(r.synced.projects, id)
		delete(r.ids, id)
	}
	return errs
}

// remoteTask resolves the owning card id of t to its project document id.
func (r *Repository) remoteTask(t project.Task) (project.Task, bool) {
	pid, ok := r.ids[board.ID(t.ProjectID)]
	if !ok {
		return project.Task{}, false
	}
	t.ProjectID = pid
	return t, true
}

func (r *Repository) failed(ctx context.Context, op string, id board.ID, err error) error {
	r.logger.ErrorContext(ctx, "remote sync request failed",
		slog.String("operation", op),
		slog.String("card_id", string(id)),
		slog.Any("error", err),
	)
	return fmt.Errorf("%s %s: %w", op, id, err)
}
