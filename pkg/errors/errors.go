// Package errors provides structured error types for qrgen.
//
// Every failure a caller may want to react to carries a machine-readable
// [Code]. The rendering engine itself only ever fails with
// [ErrCodeInvalidParams]; everything else comes from the glue around it
// (output files, format dispatch, configuration, the QR encoder).
//
// # Error Codes
//
//   - INVALID_*: Input validation failures (render parameters, text, config)
//   - UNSUPPORTED_FORMAT: Output file extension not recognised
//   - SINK_*: Output destination could not be acquired or written
//   - ENCODE_FAILED: The QR encoder rejected the input
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidParams, "border must be non-negative, got %d", border)
//	if errors.Is(err, errors.ErrCodeInvalidParams) {
//	    // Handle domain error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeSinkAcquisition, origErr, "create %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidParams Code = "INVALID_PARAMS"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidLevel  Code = "INVALID_LEVEL"

	// Output errors
	ErrCodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	ErrCodeSinkAcquisition   Code = "SINK_ACQUISITION"
	ErrCodeSinkWrite         Code = "SINK_WRITE"

	// Encoder errors
	ErrCodeEncode Code = "ENCODE_FAILED"

	// Internal errors
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
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed by
// the cause when there is one.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// IsClientError reports whether err was caused by the caller's input rather
// than by the environment. Client errors are never worth retrying.
func IsClientError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidParams, ErrCodeInvalidConfig,
		ErrCodeInvalidLevel, ErrCodeUnsupportedFormat, ErrCodeEncode:
		return true
	}
	return false
}
