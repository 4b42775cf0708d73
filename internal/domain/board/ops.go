package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
)

// ErrUnchanged is returned together with the input board when an edit is
// ignored because the new text is blank. It does not wrap domain.ErrValidation;
// the store treats it as a silent revert.
var ErrUnchanged = errors.New("blank edit ignored")

// Titles given to the columns created with every new stage.
const (
	DefaultStageColumn1 = "New Column 1"
	DefaultStageColumn2 = "New Column 2"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func notFound(kind string, id ID) error {
	return fmt.Errorf("%s %q: %w", kind, id, domain.ErrNotFound)
}

// AddStage appends a stage with two default columns to a planner board.
func AddStage(b Board, title string) (Board, error) {
	if !b.planner() {
		return b, domain.NewValidationError("layout", "board layout has no stages")
	}
	if blank(title) {
		return b, domain.NewValidationError("title", domain.MsgRequired)
	}

	stage := EmptyStage(title)
	stage.Columns = []Column{EmptyColumn(DefaultStageColumn1), EmptyColumn(DefaultStageColumn2)}
	b.Stages = appendNew(b.Stages, stage)
	return b, nil
}

// AddColumn appends an empty column to the container identified by parent.
// An empty parent addresses the root of a board layout; otherwise parent
// must be a stage or a card.
func AddColumn(b Board, parent ID, title string) (Board, error) {
	if blank(title) {
		return b, domain.NewValidationError("title", domain.MsgRequired)
	}

	loc := root
	if parent == "" {
		if b.planner() {
			return b, domain.NewValidationError("parentId", "planner root holds stages")
		}
	} else {
		var ok bool
		if loc, ok = b.find(parent); !ok {
			return b, notFound("parent", parent)
		}
		if loc.kind == KindColumn {
			return b, domain.NewValidationError("parentId", "must reference a stage or card")
		}
	}

	col := EmptyColumn(title)
	return b.apply(loc.path, seqEdit{
		columns: func(cols []Column) []Column { return appendNew(cols, col) },
	}), nil
}

// RenameEntity sets the title of a stage or column, or the content of a card.
// A blank title leaves the board unchanged and returns ErrUnchanged.
func RenameEntity(b Board, id ID, title string) (Board, error) {
	if blank(title) {
		return b, ErrUnchanged
	}
	loc, ok := b.find(id)
	if !ok {
		return b, notFound("entity", id)
	}
	return b.editEntity(loc,
		func(s *Stage) { s.Title = title },
		func(c *Column) { c.Title = title },
		func(c *Card) { c.Content = title },
	), nil
}

// DeleteEntity removes the entity and everything it owns. Deleting an
// unknown id is a no-op.
func DeleteEntity(b Board, id ID) (Board, error) {
	loc, ok := b.find(id)
	if !ok {
		return b, nil
	}
	return b.removeEntity(loc), nil
}

// AddCard appends a card to the end of the column.
func AddCard(b Board, column ID, content, description string) (Board, error) {
	if blank(content) {
		return b, domain.NewValidationError("content", domain.MsgRequired)
	}
	loc, ok := b.find(column)
	if !ok {
		return b, notFound("column", column)
	}
	if loc.kind != KindColumn {
		return b, domain.NewValidationError("columnId", "must reference a column")
	}

	card := EmptyCard(content, description)
	return b.apply(loc.path, seqEdit{
		cards: func(cards []Card) []Card { return appendNew(cards, card) },
	}), nil
}

// UpdateCard replaces the content and description of a card. Blank content
// leaves the board unchanged and returns ErrUnchanged.
func UpdateCard(b Board, id ID, content, description string) (Board, error) {
	if blank(content) {
		return b, ErrUnchanged
	}
	loc, err := b.findCard(id)
	if err != nil {
		return b, err
	}
	return b.editEntity(loc, nil, nil, func(c *Card) {
		c.Content = content
		c.Description = description
	}), nil
}

// ToggleExpansion flips the expanded flag of one card.
func ToggleExpansion(b Board, id ID) (Board, error) {
	loc, err := b.findCard(id)
	if err != nil {
		return b, err
	}
	return b.editEntity(loc, nil, nil, func(c *Card) { c.IsExpanded = !c.IsExpanded }), nil
}

func (b Board) findCard(id ID) (location, error) {
	loc, ok := b.find(id)
	if !ok || loc.kind != KindCard {
		return location{}, notFound("card", id)
	}
	return loc, nil
}
