package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// NotFoundMessage is returned for unknown pages and products.
	NotFoundMessage = "not found"
)

// AppError wraps an underlying error with an HTTP status and a message safe to
// show to a shopper.
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
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// BadRequest reports invalid user input; the message is shown as is.
func BadRequest(err error) *AppError {
	return New(err, http.StatusBadRequest, err.Error())
}

func NotFound() *AppError {
	return New(nil, http.StatusNotFound, NotFoundMessage)
}

// Is reports whether the target matches the underlying error.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// StatusOf maps any error to the status and message a handler should write.
// Errors that are not an AppError become a 500 with a generic message.
func StatusOf(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}
	return http.StatusInternalServerError, SystemErrorMessage
}
