package dto

import (
	"strings"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
)

// CreateStageRequest represents the JSON body for appending a stage.
type CreateStageRequest struct {
	Title string `json:"title"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateStageRequest) Validate() error {
	return requireNonBlank(map[string]string{"title": r.Title})
}

// CreateColumnRequest represents the JSON body for appending a column. An
// empty ParentID addresses the board root.
type CreateColumnRequest struct {
	ParentID string `json:"parentId,omitempty"`
	Title    string `json:"title"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateColumnRequest) Validate() error {
	return requireNonBlank(map[string]string{"title": r.Title})
}

// CreateCardRequest represents the JSON body for appending a card.
type CreateCardRequest struct {
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateCardRequest) Validate() error {
	return requireNonBlank(map[string]string{"content": r.Content})
}

// UpdateCardRequest represents the JSON body for editing a card. Blank
// content is accepted and ignored by the board.
type UpdateCardRequest struct {
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
}

// Validate accepts every body; blank edits are the board's concern.
func (r *UpdateCardRequest) Validate() error {
	return nil
}

// RenameRequest represents the JSON body for retitling an entity. A blank
// title is accepted and ignored by the board.
type RenameRequest struct {
	Title string `json:"title"`
}

// Validate accepts every body; blank edits are the board's concern.
func (r *RenameRequest) Validate() error {
	return nil
}

// MoveRequest represents a drag: the entity at sourceIndex of sourceScope is
// placed at destIndex of destScope. Scopes use the "a:b:c" wire form; the
// empty scope is the board root.
type MoveRequest struct {
	Kind        string `json:"kind"`
	SourceScope string `json:"sourceScope"`
	DestScope   string `json:"destScope"`
	SourceIndex *int   `json:"sourceIndex"`
	DestIndex   *int   `json:"destIndex"`
}

// Validate checks the kind and that both indices are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *MoveRequest) Validate() error {
	fields := make(map[string]string)

	if _, err := board.ParseKind(r.Kind); err != nil {
		fields["kind"] = "must be one of: stage, column, card"
	}
	if r.SourceIndex == nil {
		fields["sourceIndex"] = domain.MsgRequired
	}
	if r.DestIndex == nil {
		fields["destIndex"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDescriptor converts a validated request to a board move descriptor.
func (r *MoveRequest) ToDescriptor() board.MoveDescriptor {
	kind, _ := board.ParseKind(r.Kind)
	return board.MoveDescriptor{
		Kind:        kind,
		Source:      board.ParseScope(r.SourceScope),
		Dest:        board.ParseScope(r.DestScope),
		SourceIndex: *r.SourceIndex,
		DestIndex:   *r.DestIndex,
	}
}

func requireNonBlank(values map[string]string) error {
	fields := make(map[string]string)
	for field, v := range values {
		if strings.TrimSpace(v) == "" {
			fields[field] = domain.MsgRequired
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
