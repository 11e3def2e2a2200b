package pkg

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var uniqueCodePattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

// NewUniqueCode generates a fresh 128-bit random code serialized as a 32-character
// lowercase hexadecimal string.
func NewUniqueCode() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// IsUniqueCode reports whether s has the canonical unique-code form.
func IsUniqueCode(s string) bool {
	return uniqueCodePattern.MatchString(s)
}

// Contains checks if an item is in a slice. This function uses type parameters to work with any slice type.
func Contains[T comparable](slice []T, item T) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}

	return false
}

// IsNilOrEmpty returns a boolean indicating if a *string is nil or empty.
// It's use TrimSpace so, a string "  " and "" will be considered empty.
func IsNilOrEmpty(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
