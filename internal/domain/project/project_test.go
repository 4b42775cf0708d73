package project

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
)

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestProject_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		project   Project
		wantField string
	}{
		{name: "valid", project: Project{Title: "Launch"}},
		{name: "blank title", project: Project{Title: "  "}, wantField: "title"},
		{
			name:      "column without id",
			project:   Project{Title: "Launch", Columns: []Column{{Title: "Todo"}}},
			wantField: "columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.project.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestProject_SortedColumns(t *testing.T) {
	t.Parallel()

	t.Run("sorts by order", func(t *testing.T) {
		t.Parallel()
		p := Project{Columns: []Column{
			{ID: "c", Order: 2},
			{ID: "a", Order: 0},
			{ID: "b", Order: 1},
		}}
		got := p.SortedColumns()
		if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
			t.Errorf("SortedColumns() = %v", got)
		}
		if p.Columns[0].ID != "c" {
			t.Error("SortedColumns() reordered the project in place")
		}
	})

	t.Run("defaults when empty", func(t *testing.T) {
		t.Parallel()
		p := Project{}
		got := p.SortedColumns()
		if len(got) != 3 || got[0].ID != "todo" || got[2].ID != "done" {
			t.Errorf("SortedColumns() = %v, want defaults", got)
		}
		got[0].Title = "changed"
		if DefaultColumns[0].Title != "To Do" {
			t.Error("SortedColumns() exposed DefaultColumns storage")
		}
	})
}

func TestTask_Validate(t *testing.T) {
	t.Parallel()

	valid := Task{ProjectID: "p1", Content: "Write", ColumnID: "todo"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name  string
		task  Task
		field string
	}{
		{name: "blank content", task: Task{ProjectID: "p1", ColumnID: "todo"}, field: "content"},
		{name: "missing project", task: Task{Content: "x", ColumnID: "todo"}, field: "projectId"},
		{name: "missing column", task: Task{Content: "x", ProjectID: "p1"}, field: "columnId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requireValidationField(t, tt.task.Validate(), tt.field)
		})
	}
}
