// Package errx carries an HTTP status and a user-safe message alongside an error.
package errx

import (
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// StorageErrorMessage describes persisted storage failures.
	StorageErrorMessage = "storage operation failed"
)

// Error wraps an underlying error with an HTTP status and safe message.
type Error struct {
	Err     error
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the provided information.
func New(err error, status int, message string) *Error {
	return &Error{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

func BadRequest(err error, message string) *Error {
	return New(err, http.StatusBadRequest, message)
}

func NotFound(err error, message string) *Error {
	return New(err, http.StatusNotFound, message)
}

func Conflict(err error, message string) *Error {
	return New(err, http.StatusConflict, message)
}

func Unauthorized(err error, message string) *Error {
	return New(err, http.StatusUnauthorized, message)
}

// WrapStorage maps a storage failure to a 502 with a generic message.
func WrapStorage(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, StorageErrorMessage)
}
