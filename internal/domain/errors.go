package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Board and store failures. Callers match them with errors.Is; the HTTP
// adapter turns each into a problem type.
var (
	// ErrNotFound: no stage, column, card or board with the given id or name.
	ErrNotFound = errors.New("not found")
	// ErrValidation: malformed input such as blank content or a bad move kind.
	ErrValidation = errors.New("validation error")
	// ErrOutOfRange: a move index outside its scope.
	ErrOutOfRange = errors.New("out of range")
	// ErrPersistence: the board changed in memory but could not be stored.
	ErrPersistence = errors.New("persistence failure")
	// ErrConflict: the remote store rejected a write against stale state.
	ErrConflict = errors.New("conflict")
	// ErrForbidden: the remote store refused the credentials.
	ErrForbidden = errors.New("forbidden")
	// ErrUnavailable: the store or project API could not be reached.
	ErrUnavailable = errors.New("unavailable")
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// ValidationError maps field names to what is wrong with them. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Error lists the fields in name order, e.g.
// "validation error: content: is required; kind: unknown".
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
