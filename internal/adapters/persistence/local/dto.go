// Package local implements the local persistence strategy: the whole board
// tree is stored as one JSON document under a single key of a key-value
// store.
package local

// boardDTO is the persisted document. A nil stages or columns sequence is
// written as an empty array so older readers never see null.
type boardDTO struct {
	Layout  string      `json:"layout"`
	Stages  []stageDTO  `json:"stages"`
	Columns []columnDTO `json:"columns"`
}

type stageDTO struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Columns []columnDTO `json:"columns"`
}

type columnDTO struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Cards []cardDTO `json:"cards"`
}

// cardDTO stores nested task columns under taskColumns.
type cardDTO struct {
	ID          string      `json:"id"`
	Content     string      `json:"content"`
	Description string      `json:"description,omitempty"`
	IsExpanded  bool        `json:"isExpanded,omitempty"`
	TaskColumns []columnDTO `json:"taskColumns,omitempty"`
}
