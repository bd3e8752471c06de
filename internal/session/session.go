// Package session ties the entry store, whisper scheduler and speech
// notifier together behind the user's three actions: submit, toggle mute
// and delete all.
package session

import (
	"context"

	"github.com/manav03panchal/murmur/internal/journal"
	"github.com/manav03panchal/murmur/internal/logging"
	"github.com/manav03panchal/murmur/internal/model"
	"github.com/manav03panchal/murmur/internal/speech"
	"github.com/manav03panchal/murmur/internal/whisper"
)

// Session is the owned state of one running journal.
type Session struct {
	ctx    context.Context
	store  *journal.Store
	sched  *whisper.Scheduler
	speech speech.Notifier
}

// New creates a session over store. Whispers are sent to presenter and
// spoken through notifier.
func New(store *journal.Store, presenter whisper.Presenter, notifier speech.Notifier, opts ...whisper.Option) *Session {
	if notifier == nil {
		notifier = speech.NewNoOp()
	}
	return &Session{
		ctx:    logging.NewSessionContext(),
		store:  store,
		sched:  whisper.New(store, presenter, notifier, opts...),
		speech: notifier,
	}
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() string {
	return logging.SessionIDFromContext(s.ctx)
}

// Context returns the session-scoped context.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Open starts whispering if there is anything to whisper.
func (s *Session) Open() {
	count := s.store.Len()
	logging.LoggerFromContext(s.ctx).Info("session opened", logging.KeyCount, count)
	if count > 0 {
		s.sched.Start()
	}
}

// Submit records text. Blank text is ignored and reports false. The first
// entry of an empty store starts the scheduler once the store is updated.
// A persistence error still leaves the entry recorded in memory.
func (s *Session) Submit(text string) (model.Entry, bool, error) {
	res, err := s.store.Append(text)
	if !res.OK {
		return model.Entry{}, false, err
	}
	if err != nil {
		logging.LoggerFromContext(s.ctx).Error("failed to persist confession",
			logging.KeyEntryID, res.Entry.ID, logging.KeyError, err)
	}
	if res.First() {
		s.sched.Start()
	}
	return res.Entry, true, err
}

// ToggleMute flips the mute state and returns the new value.
func (s *Session) ToggleMute() bool {
	if s.sched.Muted() {
		s.sched.Unmute()
		return false
	}
	s.sched.Mute()
	return true
}

// DeleteAll erases every entry when confirm returns true. It reports whether
// the erase happened.
func (s *Session) DeleteAll(confirm func() bool) (bool, error) {
	if confirm == nil || !confirm() {
		return false, nil
	}

	err := s.store.Clear()
	s.sched.StoreCleared()
	if err != nil {
		logging.LoggerFromContext(s.ctx).Error("failed to erase stored confessions", logging.KeyError, err)
	}
	return true, err
}

// Count returns the number of stored entries.
func (s *Session) Count() int {
	return s.store.Len()
}

// Entries returns every stored entry, oldest first.
func (s *Session) Entries() []model.Entry {
	return s.store.All()
}

// Preview returns the n most recent entries, newest first, truncated.
func (s *Session) Preview(n int) []model.Entry {
	return s.store.RecentPreview(n)
}

// Muted reports whether whispers are muted.
func (s *Session) Muted() bool {
	return s.sched.Muted()
}

// State reports the scheduler state.
func (s *Session) State() whisper.State {
	return s.sched.State()
}

// Close stops every timer and any speech in flight.
func (s *Session) Close() {
	s.sched.Stop()
	s.speech.Cancel()
	logging.LoggerFromContext(s.ctx).Info("session closed",
		logging.KeyCount, s.store.Len(), "whispers", s.sched.Whispers())
}
