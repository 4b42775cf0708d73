package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     *domain.ValidationError
		wantMsg string
	}{
		{
			name:    "single field",
			err:     domain.NewValidationError("title", domain.MsgRequired),
			wantMsg: "validation error: title: is required",
		},
		{
			name: "fields are sorted",
			err: &domain.ValidationError{Fields: map[string]string{
				"sourceIndex": domain.MsgRequired,
				"kind":        "must be one of: stage, column, card",
			}},
			wantMsg: "validation error: kind: must be one of: stage, column, card; sourceIndex: is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}

			wrapped := fmt.Errorf("adding card: %w", tt.err)
			if !errors.Is(wrapped, domain.ErrValidation) {
				t.Error("errors.Is(wrapped, ErrValidation) = false")
			}
			var verr *domain.ValidationError
			if !errors.As(wrapped, &verr) || len(verr.Fields) != len(tt.err.Fields) {
				t.Errorf("errors.As(wrapped) = %v, want the original fields", verr)
			}
		})
	}
}
