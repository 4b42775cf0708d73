package remote

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
	"github.com/jsamuelsen11/go-board-service/internal/domain/project"
)

// snapshot is the set of documents a board tree maps to. Projects are keyed
// by the id of their card and tasks by the id of theirs. Task.ProjectID
// holds the owning card's id until the request is built.
type snapshot struct {
	projects     map[board.ID]project.Project
	projectOrder []board.ID
	tasks        map[board.ID]project.Task
	taskOrder    []board.ID
}

func newSnapshot() snapshot {
	return snapshot{
		projects: make(map[board.ID]project.Project),
		tasks:    make(map[board.ID]project.Task),
	}
}

// columnID namespaces a project column id with the id of its project so
// column ids stay unique across the tree.
func columnID(projectID, col string) board.ID {
	return board.ID(projectID + ColumnSeparator + col)
}

// remoteColumnID strips the project namespace added by columnID. Columns
// created locally carry no namespace and are used as they are.
func remoteColumnID(card board.ID, col board.ID) string {
	return strings.TrimPrefix(string(col), string(card)+ColumnSeparator)
}

// defaultColumns returns project.DefaultColumns namespaced for a card.
func defaultColumns(card board.ID) []board.Column {
	cols := make([]board.Column, len(project.DefaultColumns))
	for i, c := range project.DefaultColumns {
		cols[i] = board.Column{ID: columnID(string(card), c.ID), Title: c.Title}
	}
	return cols
}

// projectsColumn returns the root column holding the project cards.
func projectsColumn(b board.Board) (board.Column, bool) {
	i := slices.IndexFunc(b.Columns, func(c board.Column) bool { return c.ID == ProjectsColumnID })
	if i < 0 {
		return board.Column{}, false
	}
	return b.Columns[i], true
}

// snapshotOf maps the projects column of b to documents. Cards nested below
// task depth have no document form and are not part of the snapshot.
func snapshotOf(col board.Column) snapshot {
	s := newSnapshot()
	for _, card := range col.Cards {
		p := project.Project{
			Title:       card.Content,
			Description: card.Description,
			Columns:     make([]project.Column, len(card.Columns)),
		}
		for i, c := range card.Columns {
			remoteCol := remoteColumnID(card.ID, c.ID)
			p.Columns[i] = project.Column{ID: remoteCol, Title: c.Title, Order: i}
			for _, t := range c.Cards {
				s.tasks[t.ID] = project.Task{
					ProjectID:   string(card.ID),
					Content:     t.Content,
					Description: t.Description,
					ColumnID:    remoteCol,
				}
				s.taskOrder = append(s.taskOrder, t.ID)
			}
		}
		s.projects[card.ID] = p
		s.projectOrder = append(s.projectOrder, card.ID)
	}
	return s
}

func sameProject(a, b project.Project) bool {
	return a.Title == b.Title && a.Description == b.Description && slices.Equal(a.Columns, b.Columns)
}

// assemble builds the board for a set of projects and the tasks of each.
// tasks[i] belongs to projects[i]. A task whose column is unknown is placed
// in the project's first column; the returned orphans lists those task ids.
func assemble(projects []project.Project, tasks [][]project.Task) (board.Board, []string) {
	var orphans []string
	col := board.Column{ID: ProjectsColumnID, Title: ProjectsColumnTitle}

	for i, p := range projects {
		card := board.Card{ID: board.ID(p.ID), Content: p.Title, Description: p.Description}
		cols := p.SortedColumns()
		card.Columns = make([]board.Column, len(cols))
		for j, c := range cols {
			card.Columns[j] = board.Column{ID: columnID(p.ID, c.ID), Title: c.Title}
		}

		for _, t := range tasks[i] {
			j := slices.IndexFunc(cols, func(c project.Column) bool { return c.ID == t.ColumnID })
			if j < 0 {
				orphans = append(orphans, t.ID)
				j = 0
			}
			card.Columns[j].Cards = append(card.Columns[j].Cards, board.Card{
				ID:          board.ID(t.ID),
				Content:     t.Content,
				Description: t.Description,
			})
		}
		col.Cards = append(col.Cards, card)
	}

	return board.Board{Layout: board.LayoutBoard, Columns: []board.Column{col}}, orphans
}
