// Package apperrors defines the coded errors returned by the service layer.
// Handlers translate them to an HTTP status and a {"code","message"} body;
// the wrapped internal error is logged and never sent to the client.
package apperrors

import (
	"errors"
	"net/http"
)

// AppError is an application error with a stable code, a client-safe
// message, the HTTP status to answer with and an optional internal cause.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Internal }

// Is matches any AppError carrying the same code, so wrapped copies of a
// sentinel satisfy errors.Is.
func (e *AppError) Is(target error) bool {
	var other *AppError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// Wrap copies the sentinel and attaches an internal cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage copies the sentinel with a custom client message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// From returns err as an *AppError, wrapping anything else as an internal
// server error.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(ErrInternalServer, err)
}

var (
	ErrInvalidInput      = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrUnsupportedRegime = &AppError{Code: "UNSUPPORTED_REGIME", Message: "Unsupported tax regime", StatusCode: http.StatusBadRequest}
	ErrInternalServer    = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrChartUnavailable  = &AppError{Code: "CHART_UNAVAILABLE", Message: "Chart could not be rendered", StatusCode: http.StatusInternalServerError}
	ErrTooManyRequests   = &AppError{Code: "RATE_LIMITED", Message: "Too many requests", StatusCode: http.StatusTooManyRequests}
)
