// Package cmd provides the CLI commands for murmur.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/murmur/internal/config"
	murerrors "github.com/manav03panchal/murmur/internal/errors"
	"github.com/manav03panchal/murmur/internal/logging"
	"github.com/manav03panchal/murmur/internal/output"
	"github.com/manav03panchal/murmur/internal/runtime"
	"github.com/manav03panchal/murmur/internal/session"
	"github.com/manav03panchal/murmur/internal/tui"
	"github.com/manav03panchal/murmur/internal/whisper"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagSilent bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// isTerminal reports whether fd is an interactive terminal.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "murmur",
	Short: "A terminal confession recorder that whispers your secrets back",
	Long: `murmur records short confessions and, while it runs, replays them at
random moments as glitching whispers, optionally spoken aloud.

Keyboard Controls:
  enter / ctrl+s  Record the current text
  ctrl+t          Mute or unmute whispers
  ctrl+x          Erase all recordings (asks first)
  esc / ctrl+c    Quit

Examples:
  murmur
  murmur add "I never read the terms and conditions"
  murmur list --since "last week"
  murmur erase --yes`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for commands that do not touch storage
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}

		format, ok := output.ParseFormat(flagFormat)
		if !ok {
			return murerrors.NewUserErrorWithField("format", flagFormat,
				"Unknown output format", "Use one of: cli, json, plain.")
		}
		colorMode, ok := output.ParseColorMode(flagColor)
		if !ok {
			return murerrors.NewUserErrorWithField("color", flagColor,
				"Unknown color mode", "Use one of: auto, always, never.")
		}

		if flagDebug {
			logging.InitDebug()
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		opts.Silent = flagSilent

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}
		ctx.Formatter.Writer = cmd.OutOrStdout()

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			err := ctx.Close()
			ctx = nil
			return err
		}
		return nil
	},
	RunE: runRecorder,
}

// runRecorder opens the interactive recorder.
func runRecorder(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
		return murerrors.NewUserError(
			"murmur needs an interactive terminal",
			"Use 'murmur add' and 'murmur list' from scripts.").WithCause(murerrors.ErrNotATerminal)
	}

	// The TUI owns the terminal, so logs go to a file
	if f, err := logging.OpenFile(logging.LogPath()); err == nil {
		cfg := logging.DefaultConfig()
		if flagDebug {
			cfg = logging.DebugConfig()
		}
		cfg.Output = f
		logging.Init(cfg)
		defer f.Close()
	}

	presenter := tui.NewPresenter()
	sess := session.New(ctx.Store, presenter, ctx.Notifier(), whisper.WithConfig(config.Global.Whisper))
	defer sess.Close()

	ctx.Debugf("session %s opened with %d recordings", sess.ID(), sess.Count())
	return tui.Run(sess, presenter, config.Global.UI)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&flagSilent, "silent", false,
		"Disable spoken whispers")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("murmur %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError(err.Error(), runtime.GetSuggestion(err))
	} else {
		os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
	}
	os.Exit(1)
}
