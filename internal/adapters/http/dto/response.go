// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/go-board-service/internal/domain/board"

// BoardResponse represents a whole board tree in HTTP responses.
type BoardResponse struct {
	Name    string           `json:"name"`
	Layout  string           `json:"layout"`
	Stages  []StageResponse  `json:"stages"`
	Columns []ColumnResponse `json:"columns"`
	Count   int              `json:"count"`
}

// StageResponse represents a stage and its columns.
type StageResponse struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Columns []ColumnResponse `json:"columns"`
}

// ColumnResponse represents a column and its cards.
type ColumnResponse struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Cards []CardResponse `json:"cards"`
}

// CardResponse represents a card. Columns and TaskCount are present only
// for cards that own a task board.
type CardResponse struct {
	ID          string           `json:"id"`
	Content     string           `json:"content"`
	Description string           `json:"description,omitempty"`
	IsExpanded  bool             `json:"isExpanded"`
	Columns     []ColumnResponse `json:"columns,omitempty"`
	TaskCount   int              `json:"taskCount,omitempty"`
}

// BoardSummary describes one hosted board in the board list.
type BoardSummary struct {
	Name   string `json:"name"`
	Layout string `json:"layout"`
	Count  int    `json:"count"`
}

// BoardListResponse represents the list of hosted boards.
type BoardListResponse struct {
	Boards []BoardSummary `json:"boards"`
	Count  int            `json:"count"`
}

// ToBoardResponse converts a board tree to an HTTP response DTO.
func ToBoardResponse(name string, b board.Board) BoardResponse {
	stages := make([]StageResponse, len(b.Stages))
	for i, s := range b.Stages {
		stages[i] = StageResponse{ID: string(s.ID), Title: s.Title, Columns: toColumnResponses(s.Columns)}
	}
	return BoardResponse{
		Name:    name,
		Layout:  b.Layout.String(),
		Stages:  stages,
		Columns: toColumnResponses(b.Columns),
		Count:   b.Count(),
	}
}

// ToBoardSummary converts a board tree to its list entry.
func ToBoardSummary(name string, b board.Board) BoardSummary {
	return BoardSummary{Name: name, Layout: b.Layout.String(), Count: b.Count()}
}

func toColumnResponses(cols []board.Column) []ColumnResponse {
	out := make([]ColumnResponse, len(cols))
	for i, c := range cols {
		cards := make([]CardResponse, len(c.Cards))
		for j, card := range c.Cards {
			cards[j] = CardResponse{
				ID:          string(card.ID),
				Content:     card.Content,
				Description: card.Description,
				IsExpanded:  card.IsExpanded,
				TaskCount:   card.TaskCount(),
			}
			if len(card.Columns) > 0 {
				cards[j].Columns = toColumnResponses(card.Columns)
			}
		}
		out[i] = ColumnResponse{ID: string(c.ID), Title: c.Title, Cards: cards}
	}
	return out
}
