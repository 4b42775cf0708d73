package board

import "fmt"

// Seed names accepted by SeedByName.
const (
	SeedEmpty     = "empty"
	SeedKanban    = "kanban"
	SeedPlanner   = "planner"
	SeedTaskBoard = "tasks"
)

// SeedByName returns a fresh copy of the named built-in board.
func SeedByName(name string) (Board, error) {
	switch name {
	case SeedKanban:
		return Kanban(), nil
	case SeedPlanner:
		return Planner(), nil
	case SeedTaskBoard:
		return TaskBoard(), nil
	case SeedEmpty, "":
		return New(LayoutBoard), nil
	default:
		return Board{}, fmt.Errorf("unknown seed %q", name)
	}
}

// Kanban is the starter board shown on first use.
func Kanban() Board {
	return Board{
		Layout: LayoutBoard,
		Columns: []Column{
			{ID: "column-1", Title: "To Do", Cards: []Card{
				{ID: "card-1", Content: "Create project plan", Description: "Define project scope, timeline, and deliverables"},
				{ID: "card-2", Content: "Design wireframes", Description: "Create initial wireframes for the main pages"},
				{ID: "card-3", Content: "Research competitors", Description: "Analyze similar products in the market"},
			}},
			{ID: "column-2", Title: "In Progress", Cards: []Card{
				{ID: "card-4", Content: "Implement authentication", Description: "Set up user login and registration"},
				{ID: "card-5", Content: "Create database schema", Description: "Design the database structure"},
			}},
			{ID: "column-3", Title: "Done", Cards: []Card{
				{ID: "card-6", Content: "Project setup", Description: "Initialize repository and project structure"},
				{ID: "card-7", Content: "Requirements gathering", Description: "Collect and document requirements"},
			}},
		},
	}
}

// Planner is the content pipeline: production and post production stages.
func Planner() Board {
	return Board{
		Layout: LayoutPlanner,
		Stages: []Stage{
			{ID: "stage-production", Title: "Production", Columns: []Column{
				{ID: "col-idea", Title: "Idea"},
				{ID: "col-writing", Title: "Writing"},
				{ID: "col-editing", Title: "Editing"},
			}},
			{ID: "stage-postproduction", Title: "Post Production", Columns: []Column{
				{ID: "col-review", Title: "Review"},
				{ID: "col-schedule", Title: "Schedule"},
				{ID: "col-publish", Title: "Publish"},
			}},
		},
	}
}

// TaskBoard is the small three-column task board.
func TaskBoard() Board {
	return Board{
		Layout: LayoutBoard,
		Columns: []Column{
			{ID: "task-column-1", Title: "To Do", Cards: []Card{
				{ID: "task-card-1", Content: "Define task requirements", Description: "Outline requirements and acceptance criteria"},
			}},
			{ID: "task-column-2", Title: "In Progress", Cards: []Card{
				{ID: "task-card-2", Content: "Develop feature X", Description: "Implement drag & drop and editing"},
			}},
			{ID: "task-column-3", Title: "Done", Cards: []Card{
				{ID: "task-card-3", Content: "Code review", Description: "Review code for consistency and bugs"},
			}},
		},
	}
}
