package config

import (
	"testing"
	"time"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	// Whisper defaults
	if cfg.Whisper.MinDelay != 5*time.Second {
		t.Errorf("expected Whisper.MinDelay = 5s, got %v", cfg.Whisper.MinDelay)
	}
	if cfg.Whisper.Spread != 10*time.Second {
		t.Errorf("expected Whisper.Spread = 10s, got %v", cfg.Whisper.Spread)
	}
	if cfg.Whisper.GlitchDuration != 300*time.Millisecond {
		t.Errorf("expected Whisper.GlitchDuration = 300ms, got %v", cfg.Whisper.GlitchDuration)
	}
	if cfg.Whisper.DisplayDuration != 5*time.Second {
		t.Errorf("expected Whisper.DisplayDuration = 5s, got %v", cfg.Whisper.DisplayDuration)
	}
	if cfg.Whisper.GlitchProbability != 0.6 {
		t.Errorf("expected Whisper.GlitchProbability = 0.6, got %v", cfg.Whisper.GlitchProbability)
	}

	// Speech defaults
	if cfg.Speech.Rate != 0.6 || cfg.Speech.Pitch != 0.7 || cfg.Speech.Volume != 0.5 {
		t.Errorf("unexpected speech defaults: %+v", cfg.Speech)
	}
	if cfg.Speech.Engine != "" || cfg.Speech.Disabled {
		t.Errorf("expected auto-detected, enabled speech, got %+v", cfg.Speech)
	}

	// UI defaults
	if cfg.UI.MaxLength != 200 {
		t.Errorf("expected UI.MaxLength = 200, got %d", cfg.UI.MaxLength)
	}
	if cfg.UI.PreviewCount != 5 {
		t.Errorf("expected UI.PreviewCount = 5, got %d", cfg.UI.PreviewCount)
	}
	if cfg.UI.PreviewWidth != 50 {
		t.Errorf("expected UI.PreviewWidth = 50, got %d", cfg.UI.PreviewWidth)
	}
	if cfg.UI.ClockInterval != time.Second {
		t.Errorf("expected UI.ClockInterval = 1s, got %v", cfg.UI.ClockInterval)
	}
	if cfg.UI.ConfirmationDuration != 3*time.Second {
		t.Errorf("expected UI.ConfirmationDuration = 3s, got %v", cfg.UI.ConfirmationDuration)
	}
}

func TestGlobalConfigExists(t *testing.T) {
	if Global == nil {
		t.Fatal("Global config should not be nil")
	}
}

func TestConfigReset(t *testing.T) {
	original := *Global
	defer func() { *Global = original }()

	Global.Whisper.MinDelay = time.Millisecond
	Global.Reset()

	if Global.Whisper.MinDelay != 5*time.Second {
		t.Errorf("expected Whisper.MinDelay = 5s after reset, got %v", Global.Whisper.MinDelay)
	}
}

func TestConfigLoadFromEnv(t *testing.T) {
	t.Setenv("MURMUR_WHISPER_MIN_DELAY", "1s")
	t.Setenv("MURMUR_WHISPER_SPREAD", "2s")
	t.Setenv("MURMUR_GLITCH_DURATION", "50ms")
	t.Setenv("MURMUR_WHISPER_DURATION", "8s")
	t.Setenv("MURMUR_GLITCH_PROBABILITY", "0.25")
	t.Setenv("MURMUR_SPEECH_ENGINE", "say")
	t.Setenv("MURMUR_SPEECH_DISABLED", "true")
	t.Setenv("MURMUR_SPEECH_RATE", "0.9")
	t.Setenv("MURMUR_PREVIEW_COUNT", "7")
	t.Setenv("MURMUR_PREVIEW_WIDTH", "30")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	if cfg.Whisper.MinDelay != time.Second {
		t.Errorf("expected Whisper.MinDelay = 1s from env, got %v", cfg.Whisper.MinDelay)
	}
	if cfg.Whisper.Spread != 2*time.Second {
		t.Errorf("expected Whisper.Spread = 2s from env, got %v", cfg.Whisper.Spread)
	}
	if cfg.Whisper.GlitchDuration != 50*time.Millisecond {
		t.Errorf("expected Whisper.GlitchDuration = 50ms from env, got %v", cfg.Whisper.GlitchDuration)
	}
	if cfg.Whisper.DisplayDuration != 8*time.Second {
		t.Errorf("expected Whisper.DisplayDuration = 8s from env, got %v", cfg.Whisper.DisplayDuration)
	}
	if cfg.Whisper.GlitchProbability != 0.25 {
		t.Errorf("expected Whisper.GlitchProbability = 0.25 from env, got %v", cfg.Whisper.GlitchProbability)
	}
	if cfg.Speech.Engine != "say" {
		t.Errorf("expected Speech.Engine = say from env, got %q", cfg.Speech.Engine)
	}
	if !cfg.Speech.Disabled {
		t.Error("expected Speech.Disabled from env")
	}
	if cfg.Speech.Rate != 0.9 {
		t.Errorf("expected Speech.Rate = 0.9 from env, got %v", cfg.Speech.Rate)
	}
	if cfg.UI.PreviewCount != 7 {
		t.Errorf("expected UI.PreviewCount = 7 from env, got %d", cfg.UI.PreviewCount)
	}
	if cfg.UI.PreviewWidth != 30 {
		t.Errorf("expected UI.PreviewWidth = 30 from env, got %d", cfg.UI.PreviewWidth)
	}
}

func TestConfigLoadFromEnvInvalidValues(t *testing.T) {
	t.Setenv("MURMUR_WHISPER_MIN_DELAY", "soon")
	t.Setenv("MURMUR_WHISPER_SPREAD", "-3s")
	t.Setenv("MURMUR_GLITCH_PROBABILITY", "1.5")
	t.Setenv("MURMUR_SPEECH_PITCH", "0")
	t.Setenv("MURMUR_SPEECH_DISABLED", "maybe")
	t.Setenv("MURMUR_PREVIEW_COUNT", "-1")
	t.Setenv("MURMUR_PREVIEW_WIDTH", "wide")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	if cfg.Whisper.MinDelay != 5*time.Second {
		t.Errorf("expected Whisper.MinDelay = 5s (default), got %v", cfg.Whisper.MinDelay)
	}
	if cfg.Whisper.Spread != 10*time.Second {
		t.Errorf("expected Whisper.Spread = 10s (default), got %v", cfg.Whisper.Spread)
	}
	if cfg.Whisper.GlitchProbability != 0.6 {
		t.Errorf("expected Whisper.GlitchProbability = 0.6 (default), got %v", cfg.Whisper.GlitchProbability)
	}
	if cfg.Speech.Pitch != 0.7 {
		t.Errorf("expected Speech.Pitch = 0.7 (default), got %v", cfg.Speech.Pitch)
	}
	if cfg.Speech.Disabled {
		t.Error("expected Speech.Disabled = false (default)")
	}
	if cfg.UI.PreviewCount != 5 {
		t.Errorf("expected UI.PreviewCount = 5 (default), got %d", cfg.UI.PreviewCount)
	}
	if cfg.UI.PreviewWidth != 50 {
		t.Errorf("expected UI.PreviewWidth = 50 (default), got %d", cfg.UI.PreviewWidth)
	}
}

func TestReloadFromEnv(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	t.Setenv("MURMUR_WHISPER_DURATION", "1s")
	cfg.ReloadFromEnv()

	if cfg.Whisper.DisplayDuration != time.Second {
		t.Errorf("expected Whisper.DisplayDuration = 1s after reload, got %v", cfg.Whisper.DisplayDuration)
	}
}
