package task

import "github.com/jsamuelsen11/go-board-service/internal/domain/project"

// ToDomainTask converts a stored task document to a domain Task.
func ToDomainTask(dto *TaskDTO) project.Task {
	return project.Task{
		ID:          dto.ID,
		ProjectID:   dto.ProjectID,
		Content:     dto.Content,
		Description: dto.Description,
		ColumnID:    dto.ColumnID,
	}
}

// ToDomainTaskList converts a GET /task response, keeping only the tasks of
// projectID. The store may ignore the projectId query, so the filter is
// applied here as well. Null entries are skipped.
func ToDomainTaskList(dtos []*TaskDTO, projectID string) []project.Task {
	tasks := make([]project.Task, 0, len(dtos))
	for _, dto := range dtos {
		if dto == nil || dto.ProjectID != projectID {
			continue
		}
		tasks = append(tasks, ToDomainTask(dto))
	}
	return tasks
}

// ToCreateTaskRequest converts a domain Task to a POST body.
func ToCreateTaskRequest(t *project.Task) CreateTaskRequestDTO {
	return CreateTaskRequestDTO{
		ProjectID:   t.ProjectID,
		Content:     t.Content,
		Description: t.Description,
		ColumnID:    t.ColumnID,
	}
}

// ToUpdateTaskRequest converts a domain Task to a PATCH body.
func ToUpdateTaskRequest(t *project.Task) UpdateTaskRequestDTO {
	return UpdateTaskRequestDTO{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Content:     t.Content,
		Description: t.Description,
		ColumnID:    t.ColumnID,
	}
}
