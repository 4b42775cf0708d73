package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
	"github.com/jsamuelsen11/go-board-service/internal/platform/logging"
)

// internalDetail replaces the detail of 500 responses so unexpected errors
// are logged but not returned to clients.
const internalDetail = "internal error"

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected field of a validation problem.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// problem pairs a domain error with its status and problem type.
type problem struct {
	target error
	status int
	slug   string
}

// problems is checked in order; the first match wins.
var problems = []problem{
	{domain.ErrValidation, http.StatusBadRequest, "validation"},
	{domain.ErrNotFound, http.StatusNotFound, "not-found"},
	{domain.ErrOutOfRange, http.StatusUnprocessableEntity, "out-of-range"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrUnavailable, http.StatusBadGateway, "store-unavailable"},
	{domain.ErrPersistence, http.StatusBadGateway, "store-unavailable"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout"},
}

func classify(err error) (status int, typ string) {
	for _, p := range problems {
		if errors.Is(err, p.target) {
			return p.status, "/problems/" + p.slug
		}
	}
	return http.StatusInternalServerError, "about:blank"
}

// NewErrorResponse builds the problem document for err. The instance is the
// request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, typ := classify(err)

	resp := ErrorResponse{
		Type:     typ,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if status == http.StatusInternalServerError {
		resp.Detail = internalDetail
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes err as application/problem+json. Errors without
// a domain mapping are logged at ERROR with the request's logger.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	logger := logging.FromContext(r.Context())
	if resp.Status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "unhandled error", slog.Any("error", err))
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logger.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", encErr))
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
