package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-board-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
	"github.com/jsamuelsen11/go-board-service/internal/ports"
)

// BoardParam is the chi URL parameter naming the board instance.
const BoardParam = "board"

// BoardHandler handles HTTP requests for the hosted boards. Every mutation
// responds with the whole tree as it stands after the call.
type BoardHandler struct {
	boards ports.BoardRegistry
}

// NewBoardHandler creates a new BoardHandler with the given registry.
func NewBoardHandler(boards ports.BoardRegistry) *BoardHandler {
	return &BoardHandler{boards: boards}
}

// ListBoards handles GET /api/v1/boards.
func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	names := h.boards.Names()
	resp := dto.BoardListResponse{Boards: make([]dto.BoardSummary, 0, len(names))}
	for _, name := range names {
		svc, err := h.boards.Board(name)
		if err != nil {
			continue
		}
		resp.Boards = append(resp.Boards, dto.ToBoardSummary(name, svc.Snapshot()))
	}
	resp.Count = len(resp.Boards)

	writeJSON(w, r, http.StatusOK, resp)
}

// GetBoard handles GET /api/v1/boards/{board}.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	name, svc, ok := h.board(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(name, svc.Snapshot()))
}

// AddStage handles POST /api/v1/boards/{board}/stages.
func (h *BoardHandler) AddStage(w http.ResponseWriter, r *http.Request) {
	name, svc, ok := h.board(w, r)
	if !ok {
		return
	}
	var req dto.CreateStageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := svc.AddStage(r.Context(), req.Title)
	respond(w, r, name, http.StatusCreated, b, err)
}

// AddColumn handles POST /api/v1/boards/{board}/columns.
func (h *BoardHandler) AddColumn(w http.ResponseWriter, r *http.Request) {
	name, svc, ok := h.board(w, r)
	if !ok {
		return
	}
	var req dto.CreateColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := svc.AddColumn(r.Context(), board.ID(req.ParentID), req.Title)
	respond(w, r, name, http.StatusCreated, b, err)
}

// AddCard handles POST /api/v1/boards/{board}/columns/{columnId}/cards.
func (h *BoardHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	name, svc, ok := h.board(w, r)
	if !ok {
		return
	}
	columnID, err := pathID(r, "columnId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.CreateCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := svc.AddCard(r.Context(), columnID, req.Content, req.Description)
	respond(w, r, name, http.StatusCreated, b, err)
}

// UpdateCard handles PATCH /api/v1/boards/{board}/cards/{cardId}.
func (h *BoardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	name, svc, ok := h.board(w, r)
	if !ok {
		return
	}
	cardID, err := pathID(r, "cardId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.UpdateCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := svc.UpdateCard(r.Context(), cardID, req.Content, req.Description)
	respond(w, r, name, http.StatusOK, b, err)
}

// ToggleCard handles POST /api/v1/boards/{board}/cards/{cardId}/toggle.
func (h *BoardHandler) ToggleCard(w http.ResponseWriter, r *http.Request) {
	name, svc, ok := h.board(w, r)
	if !ok {
		return
	}
	cardID, err := pathID(r, "cardId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, err := svc.ToggleExpansion(r.Context(), cardID)
	respond(w, r, name, http.StatusOK, b, err)
}

// RenameEntity handles PATCH /api/v1/boards/{board}/entities/{id}.
func (h *BoardHandler) RenameEntity(w http.ResponseWriter, r *http.Request) {
	name, svc, ok := h.board(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.RenameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := svc.RenameEntity(r.Context(), id, req.Title)
	respond(w, r, name, http.StatusOK, b, err)
}

// DeleteEntity handles DELETE /api/v1/boards/{board}/entities/{id}.
func (h *BoardHandler) DeleteEntity(w http.ResponseWriter, r *http.Request) {
	name, svc, ok := h.board(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, err := svc.DeleteEntity(r.Context(), id)
	respond(w, r, name, http.StatusOK, b, err)
}

// Move handles POST /api/v1/boards/{board}/moves.
func (h *BoardHandler) Move(w http.ResponseWriter, r *http.Request) {
	name, svc, ok := h.board(w, r)
	if !ok {
		return
	}
	var req dto.MoveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := svc.Move(r.Context(), req.ToDescriptor())
	respond(w, r, name, http.StatusOK, b, err)
}

// board resolves the board named in the path. On failure it writes the
// error response and returns false.
func (h *BoardHandler) board(w http.ResponseWriter, r *http.Request) (string, ports.BoardService, bool) {
	name := chi.URLParam(r, BoardParam)
	svc, err := h.boards.Board(name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return "", nil, false
	}
	return name, svc, true
}

func respond(w http.ResponseWriter, r *http.Request, name string, status int, b board.Board, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, status, dto.ToBoardResponse(name, b))
}
