package model

import (
	"time"
	"unicode/utf8"
)

// TimestampLayout is the ISO-8601 layout used for Entry.CreatedAt.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Ellipsis marks truncated preview text.
const Ellipsis = "..."

// Entry is a single recorded confession.
type Entry struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

// NewEntry creates an entry stamped with the given creation time.
// The ID is the creation time in Unix milliseconds; collisions are not resolved.
func NewEntry(text string, now time.Time) Entry {
	return Entry{
		ID:        now.UnixMilli(),
		Text:      text,
		CreatedAt: now.UTC().Format(TimestampLayout),
	}
}

// Time parses CreatedAt. Entries written by older builds may lack the
// millisecond part, which RFC 3339 parsing accepts as well.
func (e Entry) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, e.CreatedAt)
}

// Preview returns the text cut to width runes, with an ellipsis when cut.
func (e Entry) Preview(width int) string {
	if width <= 0 || utf8.RuneCountInString(e.Text) <= width {
		return e.Text
	}
	runes := []rune(e.Text)
	return string(runes[:width]) + Ellipsis
}
