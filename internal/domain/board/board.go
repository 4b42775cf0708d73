// Package board implements the hierarchical board tree (stages, columns,
// cards and nested task columns) together with its pure mutation operations
// and the reorder engine.
//
// Every operation takes a Board by value and returns a new Board. Only the
// slices on the path from the root to the edited sequences are copied; all
// other nodes keep their original backing storage, so a caller can compare
// slice identity to detect which parts of the tree changed.
package board

import (
	"fmt"

	"github.com/google/uuid"
)

// ID is an opaque, globally unique entity identifier.
type ID string

// Id prefixes used when minting new entities.
const (
	PrefixStage  = "stage-"
	PrefixColumn = "col-"
	PrefixCard   = "card-"
)

// NewID returns a fresh identifier tagged with the given prefix. Identifiers
// are random UUIDv4 values and are never reissued within a process.
func NewID(prefix string) ID {
	return ID(prefix + uuid.NewString())
}

// Layout selects the shape of the board root.
type Layout string

const (
	// LayoutBoard boards hold a sequence of columns at the root.
	LayoutBoard Layout = "board"
	// LayoutPlanner boards hold a sequence of stages at the root, each of
	// which groups columns.
	LayoutPlanner Layout = "planner"
)

// IsValid returns true if the layout is one of the defined constants.
func (l Layout) IsValid() bool {
	switch l {
	case LayoutBoard, LayoutPlanner:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	return string(l)
}

// Kind names a layer of the tree.
type Kind string

const (
	KindStage  Kind = "stage"
	KindColumn Kind = "column"
	KindCard   Kind = "card"
)

// ParseKind converts a wire value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindStage, KindColumn, KindCard:
		return k, nil
	default:
		return "", fmt.Errorf("unknown entity kind %q", s)
	}
}

// Board is the root of one board instance.
type Board struct {
	Layout  Layout
	Stages  []Stage
	Columns []Column
}

// Stage groups columns in the planner layout.
type Stage struct {
	ID      ID
	Title   string
	Columns []Column
}

// Column is an ordered container of cards.
type Column struct {
	ID    ID
	Title string
	Cards []Card
}

// Card is a work item. A card may own its own nested columns, which turns
// it into a project card with a task board of its own.
type Card struct {
	ID          ID
	Content     string
	Description string
	IsExpanded  bool
	Columns     []Column
}

// New returns an empty board with the given layout.
func New(layout Layout) Board {
	return Board{Layout: layout}
}

// EmptyStage returns a new stage with a fresh id and no columns.
func EmptyStage(title string) Stage {
	return Stage{ID: NewID(PrefixStage), Title: title}
}

// EmptyColumn returns a new column with a fresh id and no cards.
func EmptyColumn(title string) Column {
	return Column{ID: NewID(PrefixColumn), Title: title}
}

// EmptyCard returns a new card with a fresh id and no nested columns.
func EmptyCard(content, description string) Card {
	return Card{ID: NewID(PrefixCard), Content: content, Description: description}
}

// Count returns the total number of entities (stages, columns and cards at
// every depth) in the board.
func (b Board) Count() int {
	n := 0
	for i := range b.Stages {
		n += 1 + countColumns(b.Stages[i].Columns)
	}
	return n + countColumns(b.Columns)
}

// TaskCount returns the number of cards nested under the card's columns,
// at any depth.
func (c Card) TaskCount() int {
	n := 0
	for i := range c.Columns {
		for j := range c.Columns[i].Cards {
			n += 1 + c.Columns[i].Cards[j].TaskCount()
		}
	}
	return n
}

func countColumns(cols []Column) int {
	n := 0
	for i := range cols {
		n++
		for j := range cols[i].Cards {
			n += 1 + countColumns(cols[i].Cards[j].Columns)
		}
	}
	return n
}

// Same reports whether b and o share their root sequences. Operations never
// edit a tree in place, so an operation that changed nothing returns a
// board that is Same as its input.
func (b Board) Same(o Board) bool {
	return b.Layout == o.Layout && sameSlice(b.Stages, o.Stages) && sameSlice(b.Columns, o.Columns)
}

func sameSlice[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
