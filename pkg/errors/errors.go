// Package errors provides structured error types for dotwalk.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library, CLI and HTTP server
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes group into the failure kinds a caller has to tell apart:
//   - INVALID_*: Input, grammar and format validation failures
//   - UNKNOWN_ATTRIBUTE, TYPE_MISMATCH: Attribute validation during serialization
//   - PROTOCOL, NO_IDENTITY, DUPLICATE_ID: Misbehaving discovery clients
//   - RENDERER_NOT_FOUND, UNSUPPORTED_PLATFORM, RENDER_FAILED: External rendering
//
// Errors returned by client protocol implementations are never wrapped in
// an *Error; they reach the caller exactly as the client produced them.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownAttribute, "unknown node attribute %q", key)
//	if errors.Is(err, errors.ErrCodeUnknownAttribute) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderFailed, origErr, "run %s", path)
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
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidGrammar Code = "INVALID_GRAMMAR"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"

	// Attribute validation errors
	ErrCodeUnknownAttribute Code = "UNKNOWN_ATTRIBUTE"
	ErrCodeTypeMismatch     Code = "TYPE_MISMATCH"

	// Discovery errors
	ErrCodeProtocol    Code = "PROTOCOL"
	ErrCodeNoIdentity  Code = "NO_IDENTITY"
	ErrCodeDuplicateID Code = "DUPLICATE_ID"

	// External rendering errors
	ErrCodeRendererNotFound    Code = "RENDERER_NOT_FOUND"
	ErrCodeUnsupportedPlatform Code = "UNSUPPORTED_PLATFORM"
	ErrCodeRenderFailed        Code = "RENDER_FAILED"

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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether err is an attribute validation failure
// raised by the serializer.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeUnknownAttribute, ErrCodeTypeMismatch:
		return true
	}
	return false
}

// IsRendering reports whether err came from the external rendering step.
func IsRendering(err error) bool {
	switch GetCode(err) {
	case ErrCodeRendererNotFound, ErrCodeUnsupportedPlatform, ErrCodeRenderFailed:
		return true
	}
	return false
}
