package validate

import (
	"strings"
	"unicode"
)

// SanitizeConfession cleans confession text for storage: trims whitespace,
// drops NUL and other control characters except newlines and tabs, and
// normalizes line endings.
func SanitizeConfession(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sb.WriteRune(r)
	}

	return strings.TrimSpace(sb.String())
}
