package errors

import (
	"strings"
	"unicode"
)

// ValidateHomeName validates a home name for safety and correctness. Home
// names become store keys (file names, redis keys, document ids), so the
// rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 64 characters
func ValidateHomeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidHome, "home name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidHome, "home name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidHome, "home name contains control characters")
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
			return New(ErrCodeInvalidHome, "home name contains invalid characters: %q", pattern)
		}
	}

	return nil
}
