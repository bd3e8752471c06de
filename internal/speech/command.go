package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"sync"

	murerrors "github.com/manav03panchal/murmur/internal/errors"
	"github.com/manav03panchal/murmur/internal/logging"
)

// Known engines, in detection order.
const (
	EngineEspeakNG = "espeak-ng"
	EngineEspeak   = "espeak"
	EngineSpdSay   = "spd-say"
	EngineSay      = "say"
)

// Engines lists the commands probed when no engine is configured.
var Engines = []string{EngineEspeakNG, EngineEspeak, EngineSpdSay, EngineSay}

// Engine defaults the params are scaled against.
const (
	espeakWPM    = 175
	espeakPitch  = 50
	espeakAmp    = 100
	sayWPM       = 175
	spdSayMidway = 100
)

// RunFunc runs a speech command and blocks until it exits or ctx is done.
type RunFunc func(ctx context.Context, path string, args []string) error

func runCommand(ctx context.Context, path string, args []string) error {
	return exec.CommandContext(ctx, path, args...).Run()
}

// Command speaks by running an external text-to-speech program.
type Command struct {
	mu       sync.Mutex
	engine   string
	path     string
	params   Params
	run      RunFunc
	lookPath func(string) (string, error)
	cancel   context.CancelFunc
	gen      uint64
}

// Option configures a Command.
type Option func(*Command)

// WithEngine forces a specific engine command instead of auto-detection.
func WithEngine(name string) Option {
	return func(c *Command) {
		c.engine = name
	}
}

// WithParams sets the voice parameters.
func WithParams(p Params) Option {
	return func(c *Command) {
		c.params = p
	}
}

// WithRunner replaces the process runner.
func WithRunner(run RunFunc) Option {
	return func(c *Command) {
		c.run = run
	}
}

// WithLookPath replaces exec.LookPath for engine detection.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(c *Command) {
		c.lookPath = fn
	}
}

// NewCommand creates a command notifier and detects its engine.
func NewCommand(opts ...Option) *Command {
	c := &Command{
		params:   DefaultParams(),
		run:      runCommand,
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.detect()
	return c
}

func (c *Command) detect() {
	candidates := Engines
	if c.engine != "" {
		candidates = []string{c.engine}
	}

	for _, name := range candidates {
		path, err := c.lookPath(name)
		if err != nil {
			continue
		}
		c.engine = name
		c.path = path
		logging.DebugLog("speech engine detected", logging.KeyEngine, name)
		return
	}

	c.path = ""
	logging.DebugLog("speech disabled", logging.KeyError, murerrors.ErrSpeechUnavailable)
}

// Available reports whether an engine was found.
func (c *Command) Available() bool {
	return c.path != ""
}

// Engine returns the detected engine name, or "" when unavailable.
func (c *Command) Engine() string {
	if !c.Available() {
		return ""
	}
	return c.engine
}

// Speak starts speaking text and cancels any previous playback.
func (c *Command) Speak(text string, muted bool) {
	if muted || !c.Available() || text == "" {
		return
	}

	args := Args(c.engine, c.params, text)

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	go func() {
		err := c.run(ctx, c.path, args)

		c.mu.Lock()
		if c.gen == gen {
			c.cancel = nil
		}
		c.mu.Unlock()
		cancel()

		if err != nil && ctx.Err() == nil {
			logging.DebugLog("speech command failed", logging.KeyEngine, c.engine, logging.KeyError, err)
		}
	}()
}

// Cancel kills in-flight playback.
func (c *Command) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Args builds the command line for engine. Unknown engines get the text as
// their only argument.
func Args(engine string, p Params, text string) []string {
	switch engine {
	case EngineEspeakNG, EngineEspeak:
		return []string{
			"-s", strconv.Itoa(scale(espeakWPM, p.Rate)),
			"-p", strconv.Itoa(scale(espeakPitch, p.Pitch)),
			"-a", strconv.Itoa(scale(espeakAmp, p.Volume)),
			"--", text,
		}
	case EngineSpdSay:
		// spd-say takes -100..100 with 0 as the default
		return []string{
			"-w",
			"-r", strconv.Itoa(scale(spdSayMidway, p.Rate) - spdSayMidway),
			"-p", strconv.Itoa(scale(spdSayMidway, p.Pitch) - spdSayMidway),
			"-i", strconv.Itoa(scale(spdSayMidway, p.Volume) - spdSayMidway),
			"--", text,
		}
	case EngineSay:
		return []string{
			"-r", strconv.Itoa(scale(sayWPM, p.Rate)),
			fmt.Sprintf("[[volm %.2f]] %s", p.Volume, text),
		}
	default:
		return []string{text}
	}
}

func scale(base int, f float64) int {
	return int(float64(base)*f + 0.5)
}
