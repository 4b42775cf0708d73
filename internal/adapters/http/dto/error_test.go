package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/jsamuelsen11/go-board-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-board-service/internal/domain"
)

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	const path = "/api/v1/boards/kanban/cards/card-42"

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
		wantTitle  string
		wantDetail string // empty means err.Error()
	}{
		{
			name:       "missing card",
			err:        fmt.Errorf("card card-42: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantType:   "/problems/not-found",
			wantTitle:  "Not Found",
		},
		{
			name:       "blank content",
			err:        &domain.ValidationError{Fields: map[string]string{"content": "is required"}},
			wantStatus: http.StatusBadRequest,
			wantType:   "/problems/validation",
			wantTitle:  "Bad Request",
		},
		{
			name:       "index past the end",
			err:        fmt.Errorf("source index 9: %w", domain.ErrOutOfRange),
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   "/problems/out-of-range",
			wantTitle:  "Unprocessable Entity",
		},
		{
			name:       "forbidden",
			err:        domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantType:   "/problems/forbidden",
			wantTitle:  "Forbidden",
		},
		{
			name:       "conflict",
			err:        domain.ErrConflict,
			wantStatus: http.StatusConflict,
			wantType:   "/problems/conflict",
			wantTitle:  "Conflict",
		},
		{
			name:       "store unavailable",
			err:        fmt.Errorf("listing projects: %w", domain.ErrUnavailable),
			wantStatus: http.StatusBadGateway,
			wantType:   "/problems/store-unavailable",
			wantTitle:  "Bad Gateway",
		},
		{
			name:       "persistence failure",
			err:        domain.ErrPersistence,
			wantStatus: http.StatusBadGateway,
			wantType:   "/problems/store-unavailable",
			wantTitle:  "Bad Gateway",
		},
		{
			name:       "deadline",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantType:   "/problems/timeout",
			wantTitle:  "Gateway Timeout",
		},
		{
			name:       "unclassified error hides its detail",
			err:        errors.New("nil pointer in reorder"),
			wantStatus: http.StatusInternalServerError,
			wantType:   "about:blank",
			wantTitle:  "Internal Server Error",
			wantDetail: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			dto.WriteErrorResponse(w, httptest.NewRequest(http.MethodPatch, path, nil), tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status code = %d, want %d", w.Code, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}

			var got dto.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
				t.Fatalf("decoding problem: %v", err)
			}

			wantDetail := tt.wantDetail
			if wantDetail == "" {
				wantDetail = tt.err.Error()
			}
			if got.Status != tt.wantStatus || got.Type != tt.wantType || got.Title != tt.wantTitle {
				t.Errorf("problem = {%d %q %q}, want {%d %q %q}",
					got.Status, got.Type, got.Title, tt.wantStatus, tt.wantType, tt.wantTitle)
			}
			if got.Detail != wantDetail {
				t.Errorf("Detail = %q, want %q", got.Detail, wantDetail)
			}
			if got.Instance != path {
				t.Errorf("Instance = %q, want %q", got.Instance, path)
			}
		})
	}
}

func TestNewErrorResponse_FieldErrors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/boards/kanban/moves", nil)

	t.Run("sorted body locations", func(t *testing.T) {
		t.Parallel()

		got := dto.NewErrorResponse(r, &domain.ValidationError{Fields: map[string]string{
			"kind":      "must be stage, column or card",
			"destScope": "holds stages, not cards",
			"content":   "is required",
		}})

		locations := make([]string, len(got.Errors))
		for i, e := range got.Errors {
			locations[i] = e.Location
		}
		want := []string{"body.content", "body.destScope", "body.kind"}
		if !slices.Equal(locations, want) {
			t.Errorf("locations = %v, want %v", locations, want)
		}
		if got.Errors[0].Message != "is required" {
			t.Errorf("Errors[0].Message = %q, want %q", got.Errors[0].Message, "is required")
		}
	})

	t.Run("wrapped validation error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("add card: %w", &domain.ValidationError{Fields: map[string]string{"content": "is required"}})
		got := dto.NewErrorResponse(r, err)
		if len(got.Errors) != 1 || got.Errors[0].Location != "body.content" {
			t.Errorf("Errors = %v, want one body.content entry", got.Errors)
		}
	})

	t.Run("no field errors for other problems", func(t *testing.T) {
		t.Parallel()

		if got := dto.NewErrorResponse(r, domain.ErrNotFound); got.Errors != nil {
			t.Errorf("Errors = %v, want nil", got.Errors)
		}
	})
}
