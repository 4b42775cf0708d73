package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-board-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-board-service/internal/domain"
	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
	"github.com/jsamuelsen11/go-board-service/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies. Board requests carry a title or a
// move descriptor, never a whole tree.
const maxJSONBodyBytes = 1 << 20

// pathID reads an entity id from the chi URL params. chi matches on the raw
// path, so a percent-encoded id arrives still encoded and is decoded here.
func pathID(r *http.Request, param string) (board.ID, error) {
	raw, err := url.PathUnescape(chi.URLParam(r, param))
	if err != nil {
		return "", &domain.ValidationError{
			Fields: map[string]string{param: "is not a valid path segment"},
		}
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", &domain.ValidationError{
			Fields: map[string]string{param: domain.MsgRequired},
		}
	}
	return board.ID(raw), nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// decodeJSONBody decodes exactly one JSON value into dst. Unknown fields,
// trailing data and bodies over maxJSONBodyBytes are rejected with a 400.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errors.New("trailing data after JSON value")
	}
	if err == nil {
		return true
	}

	msg := "invalid JSON"
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		msg = fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)
	case errors.Is(err, io.EOF):
		msg = "must not be empty"
	case strings.HasPrefix(err.Error(), "json: unknown field"):
		msg = strings.TrimPrefix(err.Error(), "json: ")
	}
	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": msg}})
	return false
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the body into dst and runs its Validate method,
// writing the error response itself when either step fails.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
