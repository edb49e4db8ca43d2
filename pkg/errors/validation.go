package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateSceneName validates a scene name for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateSceneName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidScene, "scene name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidScene, "scene name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "scene name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidScene, "scene name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidatePath validates an output file path given on the command line.
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

// ValidateDimension checks that a length is finite and not negative.
// Zero is allowed: a zero-size target is a point.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidScene, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidScene, "%s cannot be negative, got %g", name, v)
	}
	return nil
}

// ValidateFinite checks that a coordinate is finite. Negative values are fine.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidScene, "%s must be a finite number", name)
	}
	return nil
}
