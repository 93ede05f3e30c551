// Package errors provides structured error types for hnotes.
//
// Every failure the program can report falls into one of a handful of
// categories. Each category has a machine-readable [Code] so callers (and
// tests) can branch on the kind of failure without string matching:
//
//   - INPUT_*: the outline could not be obtained
//   - OUTPUT_*: the rendered document could not be written
//   - INVALID_*: flags or configuration were rejected
//   - CONVERSION_FAILED: an external converter (rsvg-convert) failed
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInputTooLarge, "input exceeds %d bytes", limit)
//	if errors.Is(err, errors.ErrCodeInputTooLarge) {
//	    // Handle oversized input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeOutputWrite, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInputNotFound   Code = "INPUT_NOT_FOUND"
	ErrCodeInputUnreadable Code = "INPUT_UNREADABLE"
	ErrCodeInputTooLarge   Code = "INPUT_TOO_LARGE"

	// Output errors
	ErrCodeOutputWrite Code = "OUTPUT_WRITE_FAILED"
	ErrCodeInvalidPath Code = "INVALID_PATH"

	// Option errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Format conversion errors
	ErrCodeConversion Code = "CONVERSION_FAILED"
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
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
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
