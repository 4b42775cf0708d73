// Package task implements the Anti-Corruption Layer translators for the
// document store's task resources.
package task

// TaskDTO matches the stored Task document. ProjectID references the
// owning project's _id.
type TaskDTO struct {
	ID          string `json:"_id"`
	ProjectID   string `json:"projectId"`
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
	ColumnID    string `json:"columnId"`
}

// CreateTaskRequestDTO is the body of POST /task.
type CreateTaskRequestDTO struct {
	ProjectID   string `json:"projectId"`
	Content     string `json:"content"`
	Description string `json:"description"`
	ColumnID    string `json:"columnId"`
}

// UpdateTaskRequestDTO is the body of PATCH /task/{id}.
type UpdateTaskRequestDTO struct {
	ID          string `json:"_id"`
	ProjectID   string `json:"projectId"`
	Content     string `json:"content"`
	Description string `json:"description"`
	ColumnID    string `json:"columnId"`
}
