// Package journal holds the in-memory, ordered confession store and mirrors
// every change to durable storage.
package journal

import (
	"errors"
	"sync"
	"time"

	murerrors "github.com/manav03panchal/murmur/internal/errors"
	"github.com/manav03panchal/murmur/internal/logging"
	"github.com/manav03panchal/murmur/internal/model"
	"github.com/manav03panchal/murmur/internal/validate"
)

const (
	// DefaultPreviewCount is how many entries RecentPreview returns by default.
	DefaultPreviewCount = 5
	// DefaultPreviewWidth is the rune width preview text is cut to.
	DefaultPreviewWidth = 50
)

// Persister is the durable storage contract for the entry sequence.
type Persister interface {
	Load() ([]model.Entry, error)
	Save(entries []model.Entry) error
	Remove() error
}

// Source picks random indexes. *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Appended describes the outcome of Append.
type Appended struct {
	Entry model.Entry
	Size  int  // Store size after the append
	OK    bool // False when the text was blank and nothing was stored
}

// First reports whether this append took the store from empty to one entry.
func (a Appended) First() bool {
	return a.OK && a.Size == 1
}

// Store is the ordered confession sequence. Insertion order is chronological
// order and the sequence is only ever appended to or cleared.
type Store struct {
	mu      sync.RWMutex
	entries []model.Entry
	persist Persister
	now     func() time.Time
	width   int
}

// Option configures a Store.
type Option func(*Store)

// WithNow overrides the time source used to stamp new entries.
func WithNow(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithPreviewWidth sets the rune width RecentPreview cuts text to.
// Non-positive widths keep the default.
func WithPreviewWidth(w int) Option {
	return func(s *Store) {
		if w > 0 {
			s.width = w
		}
	}
}

// New creates an empty store backed by p.
func New(p Persister, opts ...Option) *Store {
	s := &Store{persist: p, now: time.Now, width: DefaultPreviewWidth}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load creates a store initialized from p. Unreadable or corrupted data is
// logged and treated as an empty store.
func Load(p Persister, opts ...Option) *Store {
	s := New(p, opts...)

	entries, err := p.Load()
	if err != nil {
		if errors.Is(err, murerrors.ErrStoreCorrupted) {
			logging.Warn("stored confessions unreadable, starting empty", logging.KeyError, err)
		} else {
			logging.Warn("failed to load confessions, starting empty", logging.KeyError, err)
		}
		return s
	}

	s.entries = entries
	logging.DebugLog("confessions loaded", logging.KeyCount, len(entries))
	return s
}

// Append stores text as a new entry. Blank text is a silent no-op. The length
// limit is not enforced here. A persistence failure is returned but the entry
// stays in memory.
func (s *Store) Append(text string) (Appended, error) {
	text = validate.Normalize(text)
	if text == "" {
		return Appended{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := model.NewEntry(text, s.now())
	s.entries = append(s.entries, entry)
	result := Appended{Entry: entry, Size: len(s.entries), OK: true}

	logging.LogOperation("append", logging.KeyEntryID, entry.ID, logging.KeyText, logging.MaskText(text))

	if err := s.persist.Save(s.snapshotLocked()); err != nil {
		return result, murerrors.Wrap(err, "persist confession")
	}
	return result, nil
}

// Clear removes every entry and the stored sequence.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := len(s.entries)
	s.entries = nil
	logging.LogOperation("clear", logging.KeyCount, cleared)

	if err := s.persist.Remove(); err != nil {
		return murerrors.Wrap(err, "erase confessions")
	}
	return nil
}

// All returns a copy of the sequence in chronological order.
func (s *Store) All() []model.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// RecentPreview returns the last n entries newest first, with text cut to
// the preview width plus an ellipsis. n <= 0 means DefaultPreviewCount.
func (s *Store) RecentPreview(n int) []model.Entry {
	if n <= 0 {
		n = DefaultPreviewCount
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]model.Entry, 0, n)
	for i := len(s.entries) - 1; i >= len(s.entries)-n; i-- {
		e := s.entries[i]
		e.Text = e.Preview(s.width)
		out = append(out, e)
	}
	return out
}

// Random returns a uniformly chosen entry, or false when the store is empty.
func (s *Store) Random(src Source) (model.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.entries) == 0 {
		return model.Entry{}, false
	}
	return s.entries[src.IntN(len(s.entries))], true
}

func (s *Store) snapshotLocked() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
