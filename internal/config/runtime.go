// Package config provides centralized configuration for murmur runtime values.
package config

import (
	"os"
	"strconv"
	"time"
)

// RuntimeConfig holds all tunable runtime values.
type RuntimeConfig struct {
	// Whisper scheduling and overlay timing
	Whisper WhisperConfig

	// Speech synthesis parameters
	Speech SpeechConfig

	// Terminal UI configuration
	UI UIConfig
}

// WhisperConfig holds whisper scheduler configuration.
type WhisperConfig struct {
	// MinDelay is the shortest wait before the next whisper.
	// Default: 5s
	MinDelay time.Duration

	// Spread is added to MinDelay, scaled by a uniform random value in [0, 1).
	// Default: 10s (so delays fall in [5s, 15s))
	Spread time.Duration

	// GlitchDuration is how long the glitch overlay stays visible.
	// Default: 300ms
	GlitchDuration time.Duration

	// DisplayDuration is how long the whisper overlay stays visible.
	// Default: 5s
	DisplayDuration time.Duration

	// GlitchProbability is the per-character substitution probability.
	// Default: 0.6
	GlitchProbability float64
}

// SpeechConfig holds speech synthesis configuration.
// Rate, Pitch and Volume are fractions of the engine's defaults.
type SpeechConfig struct {
	// Engine forces a specific speech command. Empty means auto-detect.
	Engine string

	// Disabled turns speech off entirely.
	Disabled bool

	Rate   float64 // Default: 0.6
	Pitch  float64 // Default: 0.7
	Volume float64 // Default: 0.5
}

// UIConfig holds presentation configuration.
type UIConfig struct {
	// MaxLength is the advisory confession length limit.
	// Default: 200
	MaxLength int

	// PreviewCount is how many recent entries the preview list shows.
	// Default: 5
	PreviewCount int

	// PreviewWidth is the rune width preview text is cut to.
	// Default: 50
	PreviewWidth int

	// ClockInterval is how often the REC clock refreshes.
	// Default: 1s
	ClockInterval time.Duration

	// ConfirmationDuration is how long the RECORDED banner stays up.
	// Default: 3s
	ConfirmationDuration time.Duration
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Whisper: WhisperConfig{
			MinDelay:          5 * time.Second,
			Spread:            10 * time.Second,
			GlitchDuration:    300 * time.Millisecond,
			DisplayDuration:   5 * time.Second,
			GlitchProbability: 0.6,
		},
		Speech: SpeechConfig{
			Rate:   0.6,
			Pitch:  0.7,
			Volume: 0.5,
		},
		UI: UIConfig{
			MaxLength:            200,
			PreviewCount:         5,
			PreviewWidth:         50,
			ClockInterval:        time.Second,
			ConfirmationDuration: 3 * time.Second,
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

// initGlobal initializes the global config with defaults and environment overrides.
func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
// Invalid values are ignored and the previous value is kept.
func (c *RuntimeConfig) loadFromEnv() {
	// Whisper configuration
	envDuration("MURMUR_WHISPER_MIN_DELAY", &c.Whisper.MinDelay)
	envDuration("MURMUR_WHISPER_SPREAD", &c.Whisper.Spread)
	envDuration("MURMUR_GLITCH_DURATION", &c.Whisper.GlitchDuration)
	envDuration("MURMUR_WHISPER_DURATION", &c.Whisper.DisplayDuration)
	envFraction("MURMUR_GLITCH_PROBABILITY", &c.Whisper.GlitchProbability)

	// Speech configuration
	if v := os.Getenv("MURMUR_SPEECH_ENGINE"); v != "" {
		c.Speech.Engine = v
	}
	if v := os.Getenv("MURMUR_SPEECH_DISABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Speech.Disabled = b
		}
	}
	envFraction("MURMUR_SPEECH_RATE", &c.Speech.Rate)
	envFraction("MURMUR_SPEECH_PITCH", &c.Speech.Pitch)
	envFraction("MURMUR_SPEECH_VOLUME", &c.Speech.Volume)

	// UI configuration
	envPositive("MURMUR_PREVIEW_COUNT", &c.UI.PreviewCount)
	envPositive("MURMUR_PREVIEW_WIDTH", &c.UI.PreviewWidth)
}

func envDuration(name string, dst *time.Duration) {
	if v := os.Getenv(name); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			*dst = d
		}
	}
}

func envPositive(name string, dst *int) {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}

// envFraction accepts values in (0, 1].
func envFraction(name string, dst *float64) {
	if v := os.Getenv(name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 1 {
			*dst = f
		}
	}
}

// ReloadFromEnv reloads configuration from environment variables.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults.
// This is primarily useful for testing.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
