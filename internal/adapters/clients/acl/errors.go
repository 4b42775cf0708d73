// Package acl is the anti-corruption layer between the board service and the
// remote project document store. Document shapes and their translation to
// domain types live in the project and task subpackages; this package holds
// the client and the mapping of store errors onto domain errors.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
)

const maxErrorBodySize = 1 << 20

// storeError is the error body of the document store. Problem documents
// carry detail and errors; older endpoints send only message.
type storeError struct {
	Detail  string       `json:"detail"`
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors"`
}

type fieldError struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// statusErrors maps store status codes onto domain sentinels. 5xx codes not
// listed here also map to domain.ErrUnavailable.
var statusErrors = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusGone:                domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusRequestTimeout:      domain.ErrUnavailable,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// TranslateHTTPError turns a non-2xx store response into a domain error.
// Validation responses that list field errors become a
// *domain.ValidationError keyed by field name.
func TranslateHTTPError(resp *http.Response) error {
	body := readStoreError(resp)

	detail := body.Detail
	if detail == "" {
		detail = body.Message
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	sentinel, ok := statusErrors[resp.StatusCode]
	if !ok && resp.StatusCode >= http.StatusInternalServerError {
		sentinel, ok = domain.ErrUnavailable, true
	}
	if !ok {
		return fmt.Errorf("document store: unexpected status %d: %s", resp.StatusCode, detail)
	}

	if sentinel == domain.ErrValidation && len(body.Errors) > 0 {
		return toValidationError(body.Errors)
	}
	return fmt.Errorf("document store %d: %s: %w", resp.StatusCode, detail, sentinel)
}

// readStoreError decodes a JSON error body. Anything else, including a body
// that fails to decode, yields the zero value.
func readStoreError(resp *http.Response) storeError {
	if resp.Body == nil {
		return storeError{}
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mediaType != "application/json" && mediaType != "application/problem+json") {
		return storeError{}
	}

	var body storeError
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&body); err != nil {
		return storeError{}
	}
	return body
}

// toValidationError keys field errors by field name. Locations arrive either
// as "body.title" or as a JSON pointer such as "/title".
func toValidationError(errs []fieldError) *domain.ValidationError {
	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		field := strings.TrimPrefix(e.Location, "body.")
		field = strings.TrimPrefix(field, "/")
		fields[field] = e.Message
	}
	return &domain.ValidationError{Fields: fields}
}
