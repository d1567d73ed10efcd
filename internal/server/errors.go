// Package server provides the HTTP REST API for the resume tailoring agent.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// apiError is an error that maps to a specific HTTP status code.
type apiError interface {
	error
	httpStatus() int
}

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

func (e *ErrEmailAlreadyExists) httpStatus() int { return http.StatusConflict }

// ErrInvalidCredentials indicates a failed login. It deliberately carries no
// detail about which part of the credentials was wrong.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string { return "invalid email or password" }

func (e *ErrInvalidCredentials) httpStatus() int { return http.StatusUnauthorized }

// ErrUserNotFound indicates the referenced account does not exist.
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

func (e *ErrUserNotFound) httpStatus() int { return http.StatusNotFound }

// ErrValidation indicates a request failed field validation.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func (e *ErrValidation) httpStatus() int { return http.StatusBadRequest }

// HTTPStatus maps an error to its HTTP status code; unrecognized errors are
// treated as internal.
func HTTPStatus(err error) int {
	var apiErr apiError
	if errors.As(err, &apiErr) {
		return apiErr.httpStatus()
	}
	return http.StatusInternalServerError
}
