package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrEmptyConfession:   "Type something before submitting.",
	ErrConfessionTooLong: "Confessions must be 200 characters or fewer.",
	ErrInvalidTimestamp:  "Try formats like '2 hours ago', 'yesterday', 'this week' or '2024-03-01'.",
	ErrNotConfirmed:      "Pass --yes to erase without a prompt.",
	ErrNotATerminal:      "Run murmur from an interactive terminal, or use 'murmur add' and 'murmur list'.",

	// System errors
	ErrStoreCorrupted:    "Run 'murmur erase' to reset the store.",
	ErrSpeechUnavailable: "Install espeak-ng or set MURMUR_SPEECH_ENGINE.",
	ErrDatabaseLocked:    "Another murmur instance is running. Close it and try again.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}
