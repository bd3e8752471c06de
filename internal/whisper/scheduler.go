// Package whisper replays stored confessions at irregular intervals.
//
// The Scheduler is a two-state machine. In Idle nothing is pending; in Armed
// exactly one one-shot timer is pending. When that timer fires, a random
// entry is sampled from the store, displayed, and the scheduler re-arms.
// Mute and store clearing cancel the pending timer. A timer cancelled after
// its callback was already on the way is recognized by its generation and
// dropped.
package whisper

import (
	"sync"
	"time"

	"github.com/manav03panchal/murmur/internal/config"
	"github.com/manav03panchal/murmur/internal/glitch"
	"github.com/manav03panchal/murmur/internal/journal"
	"github.com/manav03panchal/murmur/internal/logging"
	"github.com/manav03panchal/murmur/internal/model"
	"github.com/manav03panchal/murmur/internal/speech"
	"github.com/manav03panchal/murmur/internal/timer"
)

// State is the scheduler's lifecycle state.
type State int

const (
	Idle State = iota
	Armed
)

// String returns the state label.
func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Armed:
		return "ARMED"
	default:
		return "UNKNOWN"
	}
}

// Source is the randomness used for delays, selection and glitching.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// Entries is the view of the store the scheduler samples from.
type Entries interface {
	Len() int
	Random(src journal.Source) (model.Entry, bool)
}

// Presenter is the display surface for whispers.
type Presenter interface {
	ShowGlitch(text string)
	HideGlitch()
	ShowWhisper(entry model.Entry)
	HideWhisper()
}

// Scheduler drives the whisper replay loop.
type Scheduler struct {
	mu sync.Mutex

	cfg       config.WhisperConfig
	clock     timer.Clock
	src       Source
	entries   Entries
	presenter Presenter
	speech    speech.Notifier

	muted   bool
	stopped bool
	pending timer.Handle
	gen     uint64

	// Overlay hide timers from the most recent display.
	overlayGen   uint64
	glitchHide   timer.Handle
	whisperHide  timer.Handle
	lastDelay    time.Duration
	whisperCount int
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock sets the clock timers are armed on.
func WithClock(c timer.Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// WithSource sets the random source.
func WithSource(src Source) Option {
	return func(s *Scheduler) {
		s.src = src
	}
}

// WithConfig sets delays, overlay durations and glitch probability.
func WithConfig(cfg config.WhisperConfig) Option {
	return func(s *Scheduler) {
		s.cfg = cfg
	}
}

// New creates an idle, unmuted scheduler.
func New(entries Entries, presenter Presenter, notifier speech.Notifier, opts ...Option) *Scheduler {
	s := &Scheduler{
		cfg:       config.DefaultRuntimeConfig().Whisper,
		clock:     timer.System,
		src:       glitch.Default,
		entries:   entries,
		presenter: presenter,
		speech:    notifier,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.speech == nil {
		s.speech = speech.NewNoOp()
	}
	return s
}

// Start arms the next whisper. It stays Idle when muted or the store is
// empty. Any pending timer is cancelled first.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armLocked()
}

// Mute silences whispers and speech until Unmute.
func (s *Scheduler) Mute() {
	s.mu.Lock()
	s.muted = true
	s.cancelPendingLocked()
	s.mu.Unlock()

	logging.LogOperation("mute", logging.KeyMuted, true)
	s.speech.Cancel()
}

// Unmute clears the mute flag and re-arms.
func (s *Scheduler) Unmute() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muted = false
	logging.LogOperation("unmute", logging.KeyMuted, false)
	s.armLocked()
}

// StoreCleared cancels everything in flight after the store was emptied.
// The mute flag is left alone.
func (s *Scheduler) StoreCleared() {
	s.mu.Lock()
	s.cancelPendingLocked()
	s.mu.Unlock()

	logging.LogOperation("store_cleared")
	s.speech.Cancel()
}

// Stop cancels the pending timer, overlay timers and speech for teardown.
// The scheduler never re-arms afterwards.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.cancelPendingLocked()
	s.cancelOverlaysLocked()
	s.mu.Unlock()

	s.speech.Cancel()
}

// State reports Armed while a whisper is pending.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		return Armed
	}
	return Idle
}

// Muted reports the mute flag.
func (s *Scheduler) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// LastDelay returns the delay the most recent timer was armed with.
func (s *Scheduler) LastDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDelay
}

// Whispers returns how many whispers have been displayed.
func (s *Scheduler) Whispers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.whisperCount
}

func (s *Scheduler) armLocked() {
	s.cancelPendingLocked()
	if s.stopped || s.muted || s.entries.Len() == 0 {
		return
	}

	delay := s.nextDelayLocked()
	gen := s.gen
	s.lastDelay = delay
	s.pending = s.clock.AfterFunc(delay, func() { s.fire(gen) })

	logging.DebugLog("whisper armed",
		logging.KeyDelay, delay.Milliseconds(),
		logging.KeyState, Armed.String())
}

// cancelPendingLocked stops the pending timer and invalidates any callback
// that already escaped Stop.
func (s *Scheduler) cancelPendingLocked() {
	s.gen++
	if s.pending == nil {
		return
	}
	s.pending.Stop()
	s.pending = nil
}

func (s *Scheduler) nextDelayLocked() time.Duration {
	return s.cfg.MinDelay + time.Duration(s.src.Float64()*float64(s.cfg.Spread))
}

func (s *Scheduler) fire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.pending == nil {
		s.mu.Unlock()
		logging.DebugLog("stale whisper timer dropped")
		return
	}
	s.pending = nil

	entry, ok := s.entries.Random(s.src)
	if !ok {
		// Cleared between arming and firing.
		s.mu.Unlock()
		s.Start()
		return
	}

	glitched := glitch.Render(entry.Text, s.cfg.GlitchProbability, s.src)
	s.scheduleOverlaysLocked()
	overlay := s.overlayGen
	s.whisperCount++
	s.mu.Unlock()

	// Presenter calls may block on the UI loop, which is where Mute and
	// StoreCleared come from, so they run unlocked and gen is checked after.
	logging.LogOperation("whisper", logging.KeyEntryID, entry.ID)
	s.presenter.ShowGlitch(glitched)
	if s.current(gen) {
		s.presenter.ShowWhisper(entry)
	}

	s.mu.Lock()
	if gen != s.gen || s.stopped {
		// Muted, cleared or stopped while the overlays went up. Nothing is
		// spoken and whoever moved gen owns the schedule now.
		retract := overlay == s.overlayGen && s.entries.Len() == 0
		if retract {
			s.cancelOverlaysLocked()
		}
		s.mu.Unlock()

		logging.DebugLog("whisper interrupted before speech")
		if retract {
			s.presenter.HideGlitch()
			s.presenter.HideWhisper()
		}
		return
	}
	// Speak returns at once. Holding the lock orders it before the Cancel of
	// any later Mute or StoreCleared.
	s.speech.Speak(entry.Text, s.muted)
	s.armLocked()
	s.mu.Unlock()
}

// current reports whether gen is still the live generation.
func (s *Scheduler) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.gen && !s.stopped
}
