// Package project implements the Anti-Corruption Layer translators for the
// document store's project resources.
package project

// ProjectDTO matches the stored Project document. Columns is absent on
// documents created without a board layout.
type ProjectDTO struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Columns     []ColumnDTO `json:"columns,omitempty"`
}

// ColumnDTO is one entry of a project's columns array.
type ColumnDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

// CreateProjectRequestDTO is the body of POST /project.
type CreateProjectRequestDTO struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Columns     []ColumnDTO `json:"columns"`
}

// UpdateProjectRequestDTO is the body of PATCH /project/{id}. The store
// replaces every field present in the body.
type UpdateProjectRequestDTO struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Columns     []ColumnDTO `json:"columns"`
}
