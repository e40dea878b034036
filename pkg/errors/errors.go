// Package errors provides structured error types for the schematic toolkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the library
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - LAYOUT_* / INCONSISTENT_*: Placement failures
//   - NOT_FOUND_*: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// # Layout Taxonomy
//
// The placement engine reports four typed conditions, each carrying a code:
//   - [MalformedElementError]: an element line cannot be parsed (fatal to that element)
//   - [ConflictError]: orthogonal constraints merge two collective nodes (fatal to the pass)
//   - [InconsistentLayoutError]: direction constraints form a cycle (fatal to the pass)
//   - [DuplicateNameWarning]: an element name is reused (non-fatal unless rejected)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid scale: %v", scale)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	var conflict *errors.ConflictError
//	if stderrors.As(err, &conflict) {
//	    fmt.Println("conflicting element:", conflict.Element)
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeMalformed       Code = "MALFORMED_ELEMENT"
	ErrCodeDuplicateName   Code = "DUPLICATE_NAME"
	ErrCodeUnknownTerminal Code = "UNKNOWN_TERMINAL"

	// Placement errors
	ErrCodeConflict     Code = "LAYOUT_CONFLICT"
	ErrCodeInconsistent Code = "INCONSISTENT_LAYOUT"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// coder is implemented by the typed errors of this package.
type coder interface {
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a typed error with a
// matching code. The outermost coded error wins.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
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

// MalformedElementError reports an element specification that cannot be
// turned into a name, kind and two terminals.
type MalformedElementError struct {
	Line   string // Offending input, trimmed
	Reason string
}

func (e *MalformedElementError) Error() string {
	return fmt.Sprintf("malformed element %q: %s", e.Line, e.Reason)
}

// Code returns the error code for this error type.
func (e *MalformedElementError) Code() Code { return ErrCodeMalformed }

// ConflictError reports that an orthogonal element joins two terminals that
// already belong to different collective nodes.
type ConflictError struct {
	Axis    string // "x" or "y"
	Element string // Name of the element that triggered the conflict
	Nodes   [2]string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s axis: conflict for element %s joining %s and %s",
		e.Axis, e.Element, e.Nodes[0], e.Nodes[1])
}

// Code returns the error code for this error type.
func (e *ConflictError) Code() Code { return ErrCodeConflict }

// InconsistentLayoutError reports direction constraints that form a cycle
// along one axis.
type InconsistentLayoutError struct {
	Axis  string
	Nodes []string // Terminals left on or behind the cycle
}

func (e *InconsistentLayoutError) Error() string {
	return fmt.Sprintf("%s axis: inconsistent direction constraints involving %s",
		e.Axis, strings.Join(e.Nodes, ", "))
}

// Code returns the error code for this error type.
func (e *InconsistentLayoutError) Code() Code { return ErrCodeInconsistent }

// DuplicateNameWarning reports an element name that was already in use.
// It is returned as an error only when duplicates are rejected.
type DuplicateNameWarning struct {
	Name string
}

func (e *DuplicateNameWarning) Error() string {
	return fmt.Sprintf("duplicate element name %s", e.Name)
}

// Code returns the error code for this error type.
func (e *DuplicateNameWarning) Code() Code { return ErrCodeDuplicateName }
