// Package errors defines the client-facing error taxonomy of the task API.
package errors

import (
	"fmt"
	"net/http"
)

// Kind classifies an APIError.
type Kind int

const (
	// KindValidation marks a missing or malformed header, field or body.
	KindValidation Kind = iota + 1
	// KindNotFound marks an unknown user or a task that is missing or not owned.
	KindNotFound
	// KindConflict marks a hard uniqueness conflict.
	KindConflict
)

// APIError is an error that is safe to show to the caller verbatim.
type APIError struct {
	Kind     Kind
	HTTPCode int
	Message  string
}

func (e *APIError) Error() string {
	return e.Message
}

func newError(kind Kind, code int, format string, args ...any) *APIError {
	return &APIError{Kind: kind, HTTPCode: code, Message: fmt.Sprintf(format, args...)}
}

func NewErrUserEmailRequired() *APIError {
	return newError(KindValidation, http.StatusBadRequest, "User email is required")
}

func NewErrEmailRequired() *APIError {
	return newError(KindValidation, http.StatusBadRequest, "Email is required")
}

func NewErrTitleRequired() *APIError {
	return newError(KindValidation, http.StatusBadRequest, "Task title is required")
}

func NewErrInvalidBody(reason string) *APIError {
	return newError(KindValidation, http.StatusBadRequest, "Invalid request body: %s", reason)
}

func NewErrUserNotFound() *APIError {
	return newError(KindNotFound, http.StatusNotFound, "User not found")
}

func NewErrTaskNotFound(id int64) *APIError {
	return newError(KindNotFound, http.StatusNotFound, "Task %d not found", id)
}

func NewErrInvalidTaskID(raw string) *APIError {
	return newError(KindNotFound, http.StatusNotFound, "Task %q not found", raw)
}

func NewErrEmailIsTaken(email string) *APIError {
	return newError(KindConflict, http.StatusConflict, "User with email %s already exists", email)
}
