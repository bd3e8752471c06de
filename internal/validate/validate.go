// Package validate provides input validation helpers for murmur.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/murmur/internal/errors"
)

const (
	// MaxConfessionLength is the advisory confession length, in runes.
	MaxConfessionLength = 200
)

// Normalize trims surrounding whitespace. It is the only change the store
// makes to submitted text.
func Normalize(text string) string {
	return strings.TrimSpace(text)
}

// IsBlank reports whether text is empty once trimmed.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Length returns the rune count used for the N/200 counter.
func Length(text string) int {
	return utf8.RuneCountInString(text)
}

// Confession validates text for surfaces that enforce the length limit.
// It returns the sanitized text on success.
func Confession(text string) (string, error) {
	normalized := SanitizeConfession(text)
	if normalized == "" {
		return "", errors.NewUserError(
			"Confession is empty",
			"Type something before submitting.").WithCause(errors.ErrEmptyConfession)
	}
	if Length(normalized) > MaxConfessionLength {
		return "", errors.NewUserError(
			"Confession too long",
			"Confessions must be 200 characters or fewer.").WithCause(errors.ErrConfessionTooLong)
	}
	return normalized, nil
}
