package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
)

// ScopeSeparator joins the ids of a scope path in its wire form.
const ScopeSeparator = ":"

// Scope addresses one sibling sequence: the path of ids from the outermost
// ancestor down to the container. The empty scope is the board root.
type Scope []ID

// ParseScope splits the wire form "a:b:c". The empty string is the root.
func ParseScope(s string) Scope {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ScopeSeparator)
	scope := make(Scope, len(parts))
	for i, p := range parts {
		scope[i] = ID(p)
	}
	return scope
}

// String returns the wire form of the scope.
func (s Scope) String() string {
	parts := make([]string, len(s))
	for i, id := range s {
		parts[i] = string(id)
	}
	return strings.Join(parts, ScopeSeparator)
}

// Container returns the id of the addressed container, or "" for the root.
func (s Scope) Container() ID {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

// MoveDescriptor describes a drag: take the entity at SourceIndex of the
// source sequence and place it at DestIndex of the destination sequence.
type MoveDescriptor struct {
	Kind        Kind
	Source      Scope
	Dest        Scope
	SourceIndex int
	DestIndex   int
}

// Move repositions one entity within or across sibling sequences. The
// destination index is clamped into range; the source index must address an
// existing element. When source and destination are the same sequence and
// the indices are equal, b is returned as is.
func Move(b Board, m MoveDescriptor) (Board, error) {
	src, err := b.resolve(m.Source)
	if err != nil {
		return b, err
	}
	dst, err := b.resolve(m.Dest)
	if err != nil {
		return b, err
	}

	if got := b.childKind(src); got != m.Kind {
		return b, domain.NewValidationError("sourceScope", fmt.Sprintf("holds %ss, not %ss", got, m.Kind))
	}
	if got := b.childKind(dst); got != m.Kind {
		return b, domain.NewValidationError("destScope", fmt.Sprintf("holds %ss, not %ss", got, m.Kind))
	}

	n := b.childCount(src)
	if m.SourceIndex < 0 || m.SourceIndex >= n {
		return b, fmt.Errorf("source index %d of %d in scope %q: %w", m.SourceIndex, n, m.Source, domain.ErrOutOfRange)
	}

	if src.id == dst.id {
		if m.SourceIndex == m.DestIndex {
			return b, nil
		}
		return b.reorderWithin(src, m), nil
	}
	return b.transfer(src, dst, m)
}

// resolve maps a scope to the location of its container. Leading ids must be
// the direct ancestors of the container, outermost first.
func (b Board) resolve(s Scope) (location, error) {
	if len(s) == 0 {
		return root, nil
	}
	loc, ok := b.find(s.Container())
	if !ok {
		return location{}, fmt.Errorf("scope %q: %w", s, domain.ErrNotFound)
	}
	parents := s[:len(s)-1]
	if len(parents) > len(loc.ancestors) ||
		!slices.Equal(parents, Scope(loc.ancestors[len(loc.ancestors)-len(parents):])) {
		return location{}, fmt.Errorf("scope %q does not match the tree: %w", s, domain.ErrNotFound)
	}
	return loc, nil
}

func (b Board) reorderWithin(loc location, m MoveDescriptor) Board {
	from, to := m.SourceIndex, m.DestIndex
	var e seqEdit
	switch m.Kind {
	case KindStage:
		e.stages = func(s []Stage) []Stage { return moveWithin(s, from, to) }
	case KindColumn:
		e.columns = func(c []Column) []Column { return moveWithin(c, from, to) }
	case KindCard:
		e.cards = func(c []Card) []Card { return moveWithin(c, from, to) }
	}
	return b.apply(loc.path, e)
}

// transfer moves an element between two different sequences. The element is
// removed first and the destination is located again by id, since removing
// from a preceding sibling shifts the destination's index path.
func (b Board) transfer(src, dst location, m MoveDescriptor) (Board, error) {
	moved := b.childID(src, m.SourceIndex)
	if dst.id == moved || slices.Contains(dst.ancestors, moved) {
		return b, domain.NewValidationError("destScope", "cannot move an entity into its own subtree")
	}

	var (
		column Column
		card   Card
		e      seqEdit
	)
	switch m.Kind {
	case KindColumn:
		e.columns = func(c []Column) []Column {
			var out []Column
			out, column = removeAt(c, m.SourceIndex)
			return out
		}
	case KindCard:
		e.cards = func(c []Card) []Card {
			var out []Card
			out, card = removeAt(c, m.SourceIndex)
			return out
		}
	default:
		return b, domain.NewValidationError("kind", fmt.Sprintf("%s moves stay within the root", m.Kind))
	}
	next := b.apply(src.path, e)

	target := root
	if dst.id != "" {
		var ok bool
		if target, ok = next.find(dst.id); !ok {
			return b, notFound("destination", dst.id)
		}
	}

	e = seqEdit{}
	switch m.Kind {
	case KindColumn:
		e.columns = func(c []Column) []Column { return insertAt(c, clamp(m.DestIndex, len(c)), column) }
	case KindCard:
		e.cards = func(c []Card) []Card { return insertAt(c, clamp(m.DestIndex, len(c)), card) }
	}
	return next.apply(target.path, e), nil
}

// childID returns the id of the i-th child of the container at loc.
func (b Board) childID(loc location, i int) ID {
	switch b.childKind(loc) {
	case KindStage:
		return b.Stages[i].ID
	case KindCard:
		return b.cardsAt(loc.path)[i].ID
	default:
		return b.columnsAt(loc.path)[i].ID
	}
}

func moveWithin[T any](s []T, from, to int) []T {
	out, v := removeAt(s, from)
	return insertAt(out, clamp(to, len(out)), v)
}

func clamp(i, hi int) int {
	return max(0, min(i, hi))
}
