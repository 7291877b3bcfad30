// Package errx carries an HTTP status and a client-safe message alongside an
// internal error.
package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is the user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RenderErrorMessage describes a page that failed to render.
	RenderErrorMessage = "page could not be rendered"
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(err error, status int, message string) *AppError {
	return &AppError{Err: err, Status: status, Message: message}
}

// WrapRender marks err as a rendering failure.
func WrapRender(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusInternalServerError, RenderErrorMessage)
}

// Resolve returns the status and message to send to the client for err.
// Errors that are not AppErrors map to 500 with SystemErrorMessage.
func Resolve(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}
	return http.StatusInternalServerError, SystemErrorMessage
}

// Write sends the client-safe form of err.
func Write(w http.ResponseWriter, err error) {
	status, msg := Resolve(err)
	http.Error(w, msg, status)
}
