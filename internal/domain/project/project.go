// Package project models the documents kept by the remote document store:
// projects with their task column definitions, and the tasks that belong to
// them. The remote persistence strategy reassembles these documents into a
// board tree and diffs board trees back into document writes.
package project

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
)

// Default task columns given to a project that has none.
var DefaultColumns = []Column{
	{ID: "todo", Title: "To Do", Order: 0},
	{ID: "in-progress", Title: "In Progress", Order: 1},
	{ID: "done", Title: "Done", Order: 2},
}

// Project is a remote project document.
type Project struct {
	ID          string
	Title       string
	Description string
	Columns     []Column
}

// Column is a task column definition embedded in a project. Order is the
// explicit position; the board tree uses sequence position instead.
type Column struct {
	ID    string
	Title string
	Order int
}

// Task is a remote task document placed in one of its project's columns.
type Task struct {
	ID          string
	ProjectID   string
	Content     string
	Description string
	ColumnID    string
}

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	for _, c := range p.Columns {
		if c.ID == "" {
			fields["columns"] = "column id " + domain.MsgRequired
			break
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SortedColumns returns the project's columns ordered by Order, falling back
// to DefaultColumns when the project has none.
func (p *Project) SortedColumns() []Column {
	if len(p.Columns) == 0 {
		return slices.Clone(DefaultColumns)
	}
	cols := slices.Clone(p.Columns)
	slices.SortStableFunc(cols, func(a, b Column) int { return cmp.Compare(a.Order, b.Order) })
	return cols
}

// Validate checks business rules for the Task entity.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Content) == "" {
		fields["content"] = domain.MsgRequired
	}
	if t.ProjectID == "" {
		fields["projectId"] = domain.MsgRequired
	}
	if t.ColumnID == "" {
		fields["columnId"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
