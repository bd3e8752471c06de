// Package runtime provides the per-command runtime context for murmur.
package runtime

import (
	"os"

	"github.com/manav03panchal/murmur/internal/config"
	"github.com/manav03panchal/murmur/internal/journal"
	"github.com/manav03panchal/murmur/internal/output"
	"github.com/manav03panchal/murmur/internal/speech"
	"github.com/manav03panchal/murmur/internal/storage"
)

// EnvDatabase overrides the database path. ":memory:" selects an in-memory store.
const EnvDatabase = "MURMUR_DATABASE"

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter

	EntryRepo *storage.EntryRepo
	Store     *journal.Store

	Debug  bool
	Silent bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
	Silent    bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New opens storage and loads the entry store.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv(EnvDatabase); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}
	if opts.DBPath == "" && !opts.InMemory {
		opts.DBPath = storage.DefaultPath()
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	repo := storage.NewEntryRepo(db)

	formatter := output.NewFormatter()
	if opts.Format != "" {
		formatter.Format = opts.Format
	}
	if opts.ColorMode != "" {
		formatter.ColorMode = opts.ColorMode
	}

	return &Context{
		DB:        db,
		Formatter: formatter,
		EntryRepo: repo,
		Store:     journal.Load(repo, journal.WithPreviewWidth(config.Global.UI.PreviewWidth)),
		Debug:     opts.Debug,
		Silent:    opts.Silent,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// Notifier returns the speech notifier for this run.
func (c *Context) Notifier() speech.Notifier {
	if c.Silent {
		return speech.NewNoOp()
	}
	return speech.FromConfig(config.Global.Speech)
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// PlainFormatter returns a plain formatter.
func (c *Context) PlainFormatter() *output.PlainFormatter {
	return output.NewPlainFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsPlain returns true if output format is plain.
func (c *Context) IsPlain() bool {
	return c.Formatter.Format == output.FormatPlain
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
