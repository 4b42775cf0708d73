package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/go-board-service/internal/adapters/clients/acl/project"
	"github.com/jsamuelsen11/go-board-service/internal/adapters/clients/acl/task"
	"github.com/jsamuelsen11/go-board-service/internal/domain"
	domainproject "github.com/jsamuelsen11/go-board-service/internal/domain/project"
	"github.com/jsamuelsen11/go-board-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-board-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ProjectClient = (*ProjectClient)(nil)

// ServiceName identifies the document store in traces, metrics and the
// health registry.
const ServiceName = "project-api"

// ProjectClient is the outbound adapter for the remote document store that
// keeps projects and tasks. It implements [ports.ProjectClient].
//
// Documents are translated by the ACL translators in sub-packages [project]
// and [task]. HTTP errors are mapped to domain errors by
// [TranslateHTTPError]. The store answers 200 with a null body when a PATCH
// or DELETE targets a missing document; that is reported as
// [domain.ErrNotFound].
type ProjectClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewProjectClient creates a ProjectClient that sends requests through the
// given [httpclient.Client], whose BaseURL points at the store's API root
// (e.g. "http://localhost:3000/api").
func NewProjectClient(client *httpclient.Client, logger *slog.Logger) *ProjectClient {
	return &ProjectClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *ProjectClient) Name() string {
	return ServiceName
}

// HealthCheck reports the store's availability from the circuit breaker
// state; no network call is made.
func (c *ProjectClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}

// --- Project operations ---

// ListProjects fetches every project from GET /project.
func (c *ProjectClient) ListProjects(ctx context.Context) ([]domainproject.Project, error) {
	ctx = httpclient.WithOperation(ctx, "ListProjects")
	var dtos []*project.ProjectDTO
	if err := c.req.Do(ctx, http.MethodGet, "/project", nil, &dtos); err != nil {
		return nil, err
	}
	return project.ToDomainProjectList(dtos), nil
}

// CreateProject sends POST /project and returns the stored document.
func (c *ProjectClient) CreateProject(ctx context.Context, p *domainproject.Project) (*domainproject.Project, error) {
	ctx = httpclient.WithOperation(ctx, "CreateProject")
	var dto *project.ProjectDTO
	if err := c.req.Do(ctx, http.MethodPost, "/project", project.ToCreateProjectRequest(p), &dto); err != nil {
		return nil, err
	}
	if dto == nil || dto.ID == "" {
		return nil, fmt.Errorf("creating project %q: empty response: %w", p.Title, domain.ErrUnavailable)
	}
	result := project.ToDomainProject(dto)
	return &result, nil
}

// UpdateProject sends PATCH /project/{id} with every field of p.
func (c *ProjectClient) UpdateProject(ctx context.Context, p *domainproject.Project) (*domainproject.Project, error) {
	ctx = httpclient.WithOperation(ctx, "UpdateProject")
	var dto *project.ProjectDTO
	if err := c.req.Do(ctx, http.MethodPatch, projectPath(p.ID), project.ToUpdateProjectRequest(p), &dto); err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, fmt.Errorf("project %s: %w", p.ID, domain.ErrNotFound)
	}
	result := project.ToDomainProject(dto)
	return &result, nil
}

// DeleteProject sends DELETE /project/{id}.
func (c *ProjectClient) DeleteProject(ctx context.Context, id string) error {
	ctx = httpclient.WithOperation(ctx, "DeleteProject")
	var dto *project.ProjectDTO
	if err := c.req.Do(ctx, http.MethodDelete, projectPath(id), nil, &dto); err != nil {
		return err
	}
	if dto == nil {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// --- Task operations ---

// ListTasks fetches the tasks of one project from GET /task?projectId=.
func (c *ProjectClient) ListTasks(ctx context.Context, projectID string) ([]domainproject.Task, error) {
	ctx = httpclient.WithOperation(ctx, "ListTasks")
	path := "/task?" + url.Values{"projectId": {projectID}}.Encode()

	var dtos []*task.TaskDTO
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	return task.ToDomainTaskList(dtos, projectID), nil
}

// CreateTask sends POST /task and returns the stored document.
func (c *ProjectClient) CreateTask(ctx context.Context, t *domainproject.Task) (*domainproject.Task, error) {
	ctx = httpclient.WithOperation(ctx, "CreateTask")
	var dto *task.TaskDTO
	if err := c.req.Do(ctx, http.MethodPost, "/task", task.ToCreateTaskRequest(t), &dto); err != nil {
		return nil, err
	}
	if dto == nil || dto.ID == "" {
		return nil, fmt.Errorf("creating task %q: empty response: %w", t.Content, domain.ErrUnavailable)
	}
	result := task.ToDomainTask(dto)
	return &result, nil
}

// UpdateTask sends PATCH /task/{id} with every field of t.
func (c *ProjectClient) UpdateTask(ctx context.Context, t *domainproject.Task) (*domainproject.Task, error) {
	ctx = httpclient.WithOperation(ctx, "UpdateTask")
	var dto *task.TaskDTO
	if err := c.req.Do(ctx, http.MethodPatch, taskPath(t.ID), task.ToUpdateTaskRequest(t), &dto); err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, fmt.Errorf("task %s: %w", t.ID, domain.ErrNotFound)
	}
	result := task.ToDomainTask(dto)
	return &result, nil
}

// DeleteTask sends DELETE /task/{id}.
func (c *ProjectClient) DeleteTask(ctx context.Context, id string) error {
	ctx = httpclient.WithOperation(ctx, "DeleteTask")
	var dto *task.TaskDTO
	if err := c.req.Do(ctx, http.MethodDelete, taskPath(id), nil, &dto); err != nil {
		return err
	}
	if dto == nil {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func projectPath(id string) string {
	return "/project/" + url.PathEscape(id)
}

func taskPath(id string) string {
	return "/task/" + url.PathEscape(id)
}
