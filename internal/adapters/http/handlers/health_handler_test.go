package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-board-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-board-service/internal/ports"
	"github.com/jsamuelsen11/go-board-service/mocks"
)

type readinessBody struct {
	Status string `json:"status"`
	Checks map[string]struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	} `json:"checks"`
}

// --- Liveness ---

func TestLiveness_ListsBoards(t *testing.T) {
	t.Parallel()

	boards := mocks.NewMockBoardRegistry(t)
	boards.EXPECT().Names().Return([]string{"content", "kanban"})
	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t), boards)

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[struct {
		Status string   `json:"status"`
		Boards []string `json:"boards"`
	}](t, rec)
	if resp.Status != "ok" {
		t.Errorf("status = %q, want %q", resp.Status, "ok")
	}
	if !slices.Equal(resp.Boards, []string{"content", "kanban"}) {
		t.Errorf("boards = %v, want [content kanban]", resp.Boards)
	}
}

func TestLiveness_WithoutBoards(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t), nil)

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]any](t, rec)
	if _, ok := resp["boards"]; ok {
		t.Errorf("boards present without a registry: %v", resp)
	}
}

// --- Readiness ---

func TestReadiness(t *testing.T) {
	t.Parallel()

	degraded := fmt.Errorf("project-api: %w (circuit breaker half-open)", ports.ErrDegraded)

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "all healthy",
			results:    map[string]error{"project-api": nil, "board-kanban": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]string{"project-api": "ok", "board-kanban": "ok"},
		},
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]string{},
		},
		{
			name:       "degraded dependency stays ready",
			results:    map[string]error{"project-api": degraded, "board-kanban": nil},
			wantCode:   http.StatusOK,
			wantStatus: "degraded",
			wantChecks: map[string]string{"project-api": "degraded", "board-kanban": "ok"},
		},
		{
			name:       "failed store",
			results:    map[string]error{"board-kanban": errors.New("connection refused"), "project-api": degraded},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]string{"board-kanban": "failing", "project-api": "degraded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry, nil)

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)

			resp := decodeJSON[readinessBody](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if len(resp.Checks) != len(tt.wantChecks) {
				t.Fatalf("checks = %v, want %d entries", resp.Checks, len(tt.wantChecks))
			}
			for name, want := range tt.wantChecks {
				got := resp.Checks[name]
				if got.Status != want {
					t.Errorf("checks[%q].status = %q, want %q", name, got.Status, want)
				}
				if (want == "ok") != (got.Error == "") {
					t.Errorf("checks[%q].error = %q, inconsistent with status %q", name, got.Error, want)
				}
			}
		})
	}
}
