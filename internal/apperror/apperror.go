// Package apperror defines the error taxonomy shared by every service.
// Callers classify failures with errors.Is against the sentinels below;
// the repository layer is responsible for translating driver errors.
package apperror

import "errors"

var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput means validation failed before any mutation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConstraintViolation means a uniqueness or foreign-key rule was
	// broken, e.g. an email already in use or a row that vanished
	// mid-transaction.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrContention means a transactional lock could not be acquired in
	// time. The caller may retry the whole operation.
	ErrContention = errors.New("contention")
	// ErrAuthFailure means the supplied credentials did not verify.
	ErrAuthFailure = errors.New("authentication failure")
)

const (
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeConstraintViolation = "CONSTRAINT_VIOLATION"
	CodeContention          = "CONTENTION"
	CodeAuthFailure         = "AUTH_FAILURE"
	CodeInternal            = "INTERNAL_ERROR"
)

// Code maps an error chain to its wire code for the presentation layer.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrContention):
		return CodeContention
	case errors.Is(err, ErrAuthFailure):
		return CodeAuthFailure
	default:
		return CodeInternal
	}
}
