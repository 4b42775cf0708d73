package ports

import (
	"context"

	"github.com/jsamuelsen11/go-board-service/internal/domain/project"
)

// ProjectClient defines the client port for the remote document store that
// keeps projects and tasks. Implemented by the ACL adapter; called by the
// remote board repository. Every write is issued immediately, one document
// per call.
type ProjectClient interface {
	// ListProjects returns every project document.
	ListProjects(ctx context.Context) ([]project.Project, error)

	// CreateProject creates a project and returns it with its server id.
	CreateProject(ctx context.Context, p *project.Project) (*project.Project, error)

	// UpdateProject replaces the title, description and columns of the
	// project identified by p.ID.
	// Returns domain.ErrNotFound if the project does not exist.
	UpdateProject(ctx context.Context, p *project.Project) (*project.Project, error)

	// DeleteProject deletes a project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	DeleteProject(ctx context.Context, id string) error

	// ListTasks returns the tasks belonging to one project.
	ListTasks(ctx context.Context, projectID string) ([]project.Task, error)

	// CreateTask creates a task and returns it with its server id.
	CreateTask(ctx context.Context, t *project.Task) (*project.Task, error)

	// UpdateTask replaces the content, description and column of the task
	// identified by t.ID.
	// Returns domain.ErrNotFound if the task does not exist.
	UpdateTask(ctx context.Context, t *project.Task) (*project.Task, error)

	// DeleteTask deletes a task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id string) error
}
