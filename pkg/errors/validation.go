package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// maxIdentifierLength bounds element names and terminal identifiers.
const maxIdentifierLength = 128

// ValidateIdentifier checks a raw element name or terminal identifier.
//
// The rules are deliberately small:
//   - No empty identifiers
//   - No control characters or whitespace
//   - No netlist delimiters (';' and ',')
//   - Maximum length of 128 characters
func ValidateIdentifier(what, id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "%s cannot be empty", what)
	}
	if len(id) > maxIdentifierLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters)", what, maxIdentifierLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "%s %q contains whitespace or control characters", what, id)
		}
	}
	if strings.ContainsAny(id, ";,") {
		return New(ErrCodeInvalidInput, "%s %q contains a netlist delimiter", what, id)
	}
	return nil
}

// terminalRegex matches terminal identifiers after '.' has been folded to '_'.
var terminalRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_+\-]*$`)

// ValidateTerminal validates a normalized terminal identifier.
// Terminals start with a letter or digit and may carry '_' alias suffixes.
func ValidateTerminal(id string) error {
	if err := ValidateIdentifier("terminal", id); err != nil {
		return err
	}
	if !terminalRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid terminal identifier: %q", id)
	}
	return nil
}

// ValidateScale checks a coordinate scale factor.
func ValidateScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return New(ErrCodeInvalidInput, "scale must be a positive finite number, got %v", scale)
	}
	return nil
}

// ValidatePath validates a netlist or output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
