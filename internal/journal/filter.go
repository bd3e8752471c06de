package journal

import (
	"time"

	"github.com/manav03panchal/murmur/internal/logging"
	"github.com/manav03panchal/murmur/internal/model"
)

// Since returns the entries created at or after t, keeping their order.
// Entries with an unreadable timestamp are skipped.
func Since(entries []model.Entry, t time.Time) []model.Entry {
	var out []model.Entry
	for _, e := range entries {
		created, err := e.Time()
		if err != nil {
			logging.DebugLog("skipping entry with bad timestamp", logging.KeyEntryID, e.ID, logging.KeyError, err)
			continue
		}
		if !created.Before(t) {
			out = append(out, e)
		}
	}
	return out
}

// Last returns at most n entries from the end of entries. n <= 0 keeps all.
func Last(entries []model.Entry, n int) []model.Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}
