// Package speech speaks whispered confessions through an external
// text-to-speech command.
package speech

import (
	"github.com/manav03panchal/murmur/internal/config"
	"github.com/manav03panchal/murmur/internal/logging"
)

// Notifier requests and cancels speech playback.
type Notifier interface {
	// Speak starts speaking text, replacing anything already playing.
	// It is a no-op when muted is true or no engine is available.
	Speak(text string, muted bool)
	// Cancel stops in-flight playback immediately.
	Cancel()
}

// Params are fractions of the engine's default rate, pitch and volume.
type Params struct {
	Rate   float64
	Pitch  float64
	Volume float64
}

// DefaultParams returns the slow, low, quiet whisper voice.
func DefaultParams() Params {
	return Params{Rate: 0.6, Pitch: 0.7, Volume: 0.5}
}

// FromConfig builds the notifier described by cfg.
func FromConfig(cfg config.SpeechConfig) Notifier {
	if cfg.Disabled {
		logging.DebugLog("speech disabled by configuration")
		return NewNoOp()
	}
	return NewCommand(
		WithEngine(cfg.Engine),
		WithParams(Params{Rate: cfg.Rate, Pitch: cfg.Pitch, Volume: cfg.Volume}),
	)
}

// Compile-time interface checks.
var (
	_ Notifier = (*NoOp)(nil)
	_ Notifier = (*Command)(nil)
)

// NoOp is a notifier that never makes a sound. Used for --silent and tests.
type NoOp struct{}

// NewNoOp creates a no-op notifier.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Speak does nothing.
func (n *NoOp) Speak(text string, muted bool) {
	logging.DebugLog("speech no-op", logging.KeyText, logging.MaskText(text), logging.KeyMuted, muted)
}

// Cancel does nothing.
func (n *NoOp) Cancel() {}
