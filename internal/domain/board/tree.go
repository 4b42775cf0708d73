package board

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
)

// Entity describes one node visited by Walk.
type Entity struct {
	Kind   Kind
	ID     ID
	Parent ID // empty for nodes held directly by the board root
	Depth  int
}

// location addresses one node of the tree. path holds the sibling index at
// every level from the root down to the node; ancestors holds the ids of the
// enclosing nodes, outermost first.
type location struct {
	id        ID
	kind      Kind
	path      []int
	ancestors []ID
}

// root is the location of the board root, which owns either the stage
// sequence or the column sequence depending on the layout.
var root = location{}

type visitFunc func(loc location) bool

func (b Board) planner() bool {
	return b.Layout == LayoutPlanner
}

// childKind returns the kind held by the container at loc.
func (b Board) childKind(loc location) Kind {
	switch loc.kind {
	case "":
		if b.planner() {
			return KindStage
		}
		return KindColumn
	case KindColumn:
		return KindCard
	default:
		return KindColumn
	}
}

// Walk visits every entity depth-first in display order until fn returns false.
func (b Board) Walk(fn func(Entity) bool) {
	b.walk(func(loc location) bool {
		var parent ID
		if len(loc.ancestors) > 0 {
			parent = loc.ancestors[len(loc.ancestors)-1]
		}
		return fn(Entity{Kind: loc.kind, ID: loc.id, Parent: parent, Depth: len(loc.path) - 1})
	})
}

// Find reports the kind of the entity with the given id.
func (b Board) Find(id ID) (Kind, bool) {
	loc, ok := b.find(id)
	return loc.kind, ok
}

// Validate checks the structural rules a board must satisfy: a known layout,
// a root that matches it, and non-empty ids that are unique across the tree.
func (b Board) Validate() error {
	fields := make(map[string]string)

	if b.Layout != "" && !b.Layout.IsValid() {
		fields["layout"] = fmt.Sprintf("invalid: %q", b.Layout)
	}
	if b.planner() && len(b.Columns) > 0 {
		fields["columns"] = "planner boards hold stages at the root"
	}
	if !b.planner() && len(b.Stages) > 0 {
		fields["stages"] = "board layout has no stages"
	}

	seen := make(map[ID]struct{})
	b.Walk(func(e Entity) bool {
		if e.ID == "" {
			fields["id"] = fmt.Sprintf("empty %s id", e.Kind)
			return true
		}
		if _, dup := seen[e.ID]; dup {
			fields["id"] = fmt.Sprintf("duplicate id %q", e.ID)
		}
		seen[e.ID] = struct{}{}
		return true
	})

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (b Board) find(id ID) (location, bool) {
	var found location
	ok := false
	b.walk(func(loc location) bool {
		if loc.id == id {
			found, ok = loc, true
			return false
		}
		return true
	})
	return found, ok
}

func (b Board) walk(fn visitFunc) {
	if !b.planner() {
		walkColumns(b.Columns, nil, nil, fn)
		return
	}
	for i := range b.Stages {
		s := &b.Stages[i]
		path := []int{i}
		if !fn(location{id: s.ID, kind: KindStage, path: path}) {
			return
		}
		if !walkColumns(s.Columns, path, []ID{s.ID}, fn) {
			return
		}
	}
}

func walkColumns(cols []Column, path []int, ancestors []ID, fn visitFunc) bool {
	for i := range cols {
		col := &cols[i]
		colPath := appendCopy(path, i)
		if !fn(location{id: col.ID, kind: KindColumn, path: colPath, ancestors: ancestors}) {
			return false
		}
		cardAncestors := appendCopy(ancestors, col.ID)
		for j := range col.Cards {
			card := &col.Cards[j]
			cardPath := appendCopy(colPath, j)
			if !fn(location{id: card.ID, kind: KindCard, path: cardPath, ancestors: cardAncestors}) {
				return false
			}
			if !walkColumns(card.Columns, cardPath, appendCopy(cardAncestors, card.ID), fn) {
				return false
			}
		}
	}
	return true
}

func appendCopy[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

// columnsAt returns the column sequence owned by the container at path: the
// root of a board layout, a stage, or a card.
func (b Board) columnsAt(path []int) []Column {
	cols := b.Columns
	if b.planner() {
		if len(path) == 0 {
			return nil
		}
		cols = b.Stages[path[0]].Columns
		path = path[1:]
	}
	for len(path) >= 2 {
		cols = cols[path[0]].Cards[path[1]].Columns
		path = path[2:]
	}
	return cols
}

// cardsAt returns the card sequence of the column at path.
func (b Board) cardsAt(path []int) []Card {
	n := len(path)
	return b.columnsAt(path[:n-1])[path[n-1]].Cards
}

// childCount returns the length of the sequence owned by the container at loc.
func (b Board) childCount(loc location) int {
	switch b.childKind(loc) {
	case KindStage:
		return len(b.Stages)
	case KindCard:
		return len(b.cardsAt(loc.path))
	default:
		return len(b.columnsAt(loc.path))
	}
}

// seqEdit rewrites the child sequence of one container. Only the function
// matching the container's child kind is called; the others may be nil.
type seqEdit struct {
	stages  func([]Stage) []Stage
	columns func([]Column) []Column
	cards   func([]Card) []Card
}

// apply returns a copy of b in which the child sequence of the container at
// path has been replaced by the edit. Slices along the path are cloned;
// every other node keeps its backing storage.
func (b Board) apply(path []int, e seqEdit) Board {
	if b.planner() {
		b.Stages = e.onStages(b.Stages, path)
	} else {
		b.Columns = e.onColumns(b.Columns, path)
	}
	return b
}

func (e seqEdit) onStages(stages []Stage, path []int) []Stage {
	if len(path) == 0 {
		if e.stages == nil {
			return stages
		}
		return e.stages(stages)
	}
	out := slices.Clone(stages)
	out[path[0]].Columns = e.onColumns(stages[path[0]].Columns, path[1:])
	return out
}

func (e seqEdit) onColumns(cols []Column, path []int) []Column {
	if len(path) == 0 {
		if e.columns == nil {
			return cols
		}
		return e.columns(cols)
	}
	out := slices.Clone(cols)
	out[path[0]].Cards = e.onCards(cols[path[0]].Cards, path[1:])
	return out
}

func (e seqEdit) onCards(cards []Card, path []int) []Card {
	if len(path) == 0 {
		if e.cards == nil {
			return cards
		}
		return e.cards(cards)
	}
	out := slices.Clone(cards)
	out[path[0]].Columns = e.onColumns(cards[path[0]].Columns, path[1:])
	return out
}

// editEntity rewrites the entity at loc in place within a cloned sibling
// sequence. Only the callback matching loc.kind is used.
func (b Board) editEntity(loc location, stage func(*Stage), column func(*Column), card func(*Card)) Board {
	n := len(loc.path)
	parent, idx := loc.path[:n-1], loc.path[n-1]

	var e seqEdit
	switch loc.kind {
	case KindStage:
		e.stages = func(s []Stage) []Stage {
			out := slices.Clone(s)
			stage(&out[idx])
			return out
		}
	case KindColumn:
		e.columns = func(c []Column) []Column {
			out := slices.Clone(c)
			column(&out[idx])
			return out
		}
	case KindCard:
		e.cards = func(c []Card) []Card {
			out := slices.Clone(c)
			card(&out[idx])
			return out
		}
	}
	return b.apply(parent, e)
}

// removeEntity drops the entity at loc together with everything it owns.
func (b Board) removeEntity(loc location) Board {
	n := len(loc.path)
	parent, idx := loc.path[:n-1], loc.path[n-1]

	var e seqEdit
	switch loc.kind {
	case KindStage:
		e.stages = func(s []Stage) []Stage { out, _ := removeAt(s, idx); return out }
	case KindColumn:
		e.columns = func(c []Column) []Column { out, _ := removeAt(c, idx); return out }
	case KindCard:
		e.cards = func(c []Card) []Card { out, _ := removeAt(c, idx); return out }
	}
	return b.apply(parent, e)
}

// removeAt returns a new slice without element i, and the removed element.
func removeAt[T any](s []T, i int) ([]T, T) {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out, s[i]
}

// insertAt returns a new slice with v inserted before position i.
func insertAt[T any](s []T, i int, v T) []T {
	out := make([]T, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, v)
	return append(out, s[i:]...)
}

// appendNew returns a new slice with v appended, never sharing s's spare capacity.
func appendNew[T any](s []T, v T) []T {
	return insertAt(s, len(s), v)
}
