package logging

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaskChar is the character used for masking.
	MaskChar = "*"
	// VisiblePrefix is how many runes of a confession stay readable in logs.
	VisiblePrefix = 3
	// DefaultMaskLength is how many mask characters to show.
	DefaultMaskLength = 3
)

// MaskText hides confession text before it reaches a log line, keeping a
// short prefix and the rune count.
func MaskText(text string) string {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return ""
	}
	if n <= VisiblePrefix {
		return strings.Repeat(MaskChar, DefaultMaskLength)
	}
	runes := []rune(text)
	return string(runes[:VisiblePrefix]) + strings.Repeat(MaskChar, DefaultMaskLength)
}
