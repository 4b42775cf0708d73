package local

import "github.com/jsamuelsen11/go-board-service/internal/domain/board"

// toDTO converts a domain board to its persisted form.
func toDTO(b board.Board) boardDTO {
	stages := make([]stageDTO, len(b.Stages))
	for i, s := range b.Stages {
		stages[i] = stageDTO{ID: string(s.ID), Title: s.Title, Columns: toColumnDTOs(s.Columns)}
	}
	return boardDTO{
		Layout:  b.Layout.String(),
		Stages:  stages,
		Columns: toColumnDTOs(b.Columns),
	}
}

func toColumnDTOs(cols []board.Column) []columnDTO {
	out := make([]columnDTO, len(cols))
	for i, c := range cols {
		cards := make([]cardDTO, len(c.Cards))
		for j, card := range c.Cards {
			cards[j] = cardDTO{
				ID:          string(card.ID),
				Content:     card.Content,
				Description: card.Description,
				IsExpanded:  card.IsExpanded,
			}
			if len(card.Columns) > 0 {
				cards[j].TaskColumns = toColumnDTOs(card.Columns)
			}
		}
		out[i] = columnDTO{ID: string(c.ID), Title: c.Title, Cards: cards}
	}
	return out
}

// toDomain converts a persisted document to a domain board. Documents
// without a layout are boards. Empty sequences become nil so a round trip
// compares equal to a freshly built board.
func toDomain(dto boardDTO) board.Board {
	layout := board.Layout(dto.Layout)
	if layout == "" {
		layout = board.LayoutBoard
	}
	b := board.New(layout)
	if len(dto.Stages) > 0 {
		b.Stages = make([]board.Stage, len(dto.Stages))
		for i, s := range dto.Stages {
			b.Stages[i] = board.Stage{ID: board.ID(s.ID), Title: s.Title, Columns: toDomainColumns(s.Columns)}
		}
	}
	b.Columns = toDomainColumns(dto.Columns)
	return b
}

func toDomainColumns(dtos []columnDTO) []board.Column {
	if len(dtos) == 0 {
		return nil
	}
	cols := make([]board.Column, len(dtos))
	for i, c := range dtos {
		var cards []board.Card
		if len(c.Cards) > 0 {
			cards = make([]board.Card, len(c.Cards))
			for j, card := range c.Cards {
				cards[j] = board.Card{
					ID:          board.ID(card.ID),
					Content:     card.Content,
					Description: card.Description,
					IsExpanded:  card.IsExpanded,
					Columns:     toDomainColumns(card.TaskColumns),
				}
			}
		}
		cols[i] = board.Column{ID: board.ID(c.ID), Title: c.Title, Cards: cards}
	}
	return cols
}
