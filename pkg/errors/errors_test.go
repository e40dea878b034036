package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, cause, "failed to solve")

	if err.Code != ErrCodeInternal {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInternal)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeConflict,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeConflict, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeConflict,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeMalformed, "test"),
			expected: ErrCodeMalformed,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTypedErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		msg  string
	}{
		{
			name: "malformed",
			err:  &MalformedElementError{Line: "R1 1", Reason: "expected two terminals"},
			code: ErrCodeMalformed,
			msg:  `malformed element "R1 1": expected two terminals`,
		},
		{
			name: "conflict",
			err:  &ConflictError{Axis: "x", Element: "C1", Nodes: [2]string{"1", "2"}},
			code: ErrCodeConflict,
			msg:  "x axis: conflict for element C1 joining 1 and 2",
		},
		{
			name: "inconsistent",
			err:  &InconsistentLayoutError{Axis: "y", Nodes: []string{"a", "b"}},
			code: ErrCodeInconsistent,
			msg:  "y axis: inconsistent direction constraints involving a, b",
		},
		{
			name: "duplicate",
			err:  &DuplicateNameWarning{Name: "R1"},
			code: ErrCodeDuplicateName,
			msg:  "duplicate element name R1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.msg {
				t.Errorf("Error() = %q, want %q", got, tt.msg)
			}
			if !Is(tt.err, tt.code) {
				t.Errorf("Is(%v) = false, want true", tt.code)
			}
			wrapped := fmt.Errorf("layout: %w", tt.err)
			if got := GetCode(wrapped); got != tt.code {
				t.Errorf("GetCode(wrapped) = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestTypedErrorAs(t *testing.T) {
	err := Wrap(ErrCodeInternal, &ConflictError{Axis: "x", Element: "W1"}, "solve")

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatal("errors.As(*ConflictError) = false, want true")
	}
	if conflict.Element != "W1" {
		t.Errorf("Element = %q, want %q", conflict.Element, "W1")
	}
	if got := GetCode(err); got != ErrCodeInternal {
		t.Errorf("GetCode() = %v, want outermost %v", got, ErrCodeInternal)
	}
}
