// Package errors provides structured error types for the rpgcard service.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the HTTP handlers and the upstream client
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages suitable for the rendered error card
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every failure the upstream client can produce maps to exactly one code, and
// every code maps to exactly one HTTP status. Call sites switch on GetCode
// rather than inspecting error strings, so no upstream failure can reach the
// renderer untyped.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidUsername, "invalid username: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidUsername) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeUpstream, origErr, "failed to fetch %s", url)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the upstream-fetch failure taxonomy plus internal faults.
const (
	// ErrCodeInvalidUsername is a client input error caught by local
	// validation, before any network call is made.
	ErrCodeInvalidUsername Code = "INVALID_USERNAME"

	// ErrCodeNotFound means the upstream confirmed no such account exists.
	ErrCodeNotFound Code = "NOT_FOUND"

	// ErrCodeRateLimited means the upstream is throttling us.
	ErrCodeRateLimited Code = "RATE_LIMITED"

	// ErrCodeUpstream covers every other upstream or transport failure.
	ErrCodeUpstream Code = "UPSTREAM_ERROR"

	// ErrCodeInternal is an unexpected fault inside this service.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns ErrCodeInternal if the error is not an *Error, so that unclassified
// failures still land on a well-defined card and status.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error code to the HTTP status the handler responds with.
// The response body is still a valid SVG card for every status here.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidUsername:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
