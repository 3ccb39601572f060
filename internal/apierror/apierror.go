// Package apierror provides the error taxonomy and the canonical error
// envelope for the API. All errors returned to clients go through this
// package to ensure consistency and to prevent leaking internal details
// (stack traces, raw DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// Envelope is the uniform JSON shape of every 4xx/5xx response.
type Envelope struct {
	Error string `json:"error"`
}

func New(msg string) *Envelope {
	return &Envelope{Error: msg}
}

// ── Taxonomy ─────────────────────────────────────────────────────────────────

// ValidationError: malformed or out-of-range input → 400.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func NewValidation(msg string) *ValidationError { return &ValidationError{Msg: msg} }

// NotFoundError: missing entity → 404.
type NotFoundError struct{ Msg string }

func (e *NotFoundError) Error() string { return e.Msg }

func NewNotFound(msg string) *NotFoundError { return &NotFoundError{Msg: msg} }

// DuplicateError: unique-constraint violation → 400.
type DuplicateError struct{ Msg string }

func (e *DuplicateError) Error() string { return e.Msg }

func NewDuplicate(msg string) *DuplicateError { return &DuplicateError{Msg: msg} }

// ConflictError: business-rule violation (e.g. deleting an ordered product) → 400.
type ConflictError struct{ Msg string }

func (e *ConflictError) Error() string { return e.Msg }

func NewConflict(msg string) *ConflictError { return &ConflictError{Msg: msg} }

// InsufficientStockError: requested quantity exceeds available stock → 400.
type InsufficientStockError struct{ Msg string }

func (e *InsufficientStockError) Error() string { return e.Msg }

func NewInsufficientStock(msg string) *InsufficientStockError {
	return &InsufficientStockError{Msg: msg}
}

// Status maps a classified error to its HTTP status code. Anything outside
// the taxonomy is an internal failure.
func Status(err error) int {
	var (
		ve *ValidationError
		nf *NotFoundError
		de *DuplicateError
		ce *ConflictError
		se *InsufficientStockError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &de), errors.As(err, &ce), errors.As(err, &se):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsClient reports whether err belongs to the taxonomy (safe to echo to the
// client). Internal errors must be replaced with a generic message.
func IsClient(err error) bool {
	return Status(err) != http.StatusInternalServerError
}
