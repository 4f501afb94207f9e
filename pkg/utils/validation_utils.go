package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Shared validation helpers. Services apply these before any write is
// attempted, so a failed check never reaches the database.

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ExceedsLength reports whether the trimmed string is longer than max.
// Length is counted in characters, not bytes, so multi-byte names are
// measured the same way users see them.
func ExceedsLength(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) > max
}

// NormalizeName canonicalizes a name for uniqueness comparison:
// surrounding whitespace is ignored and the comparison is case-insensitive.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsPositive reports whether an amount is strictly greater than zero.
func IsPositive(v float64) bool {
	return v > 0
}

// InRange reports whether v lies in the closed interval [min, max].
func InRange(v, min, max int) bool {
	return v >= min && v <= max
}

// IsValidPagination reports whether page and pageSize are both usable.
// Page numbering starts at 1.
func IsValidPagination(page, pageSize int) bool {
	return page >= 1 && pageSize >= 1
}

// IsValidEmail checks if a string is a valid email format.
var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.ToLower(email))
}

// IsValidPasswordLength checks if password meets minimum length requirement.
func IsValidPasswordLength(password string, minLength int) bool {
	return len(password) >= minLength
}
