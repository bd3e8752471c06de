package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/manav03panchal/murmur/internal/logging"
	"github.com/manav03panchal/murmur/internal/runtime"
	"github.com/manav03panchal/murmur/internal/validate"
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Record a confession without opening the recorder",
	Long: `Record a confession from the command line.

The text is taken from the arguments, or from standard input when no
arguments are given and input is piped. Confessions are limited to 200
characters.

Examples:
  murmur add "I still have the library book"
  echo "I ate the last slice" | murmur add
  murmur add -f json "I reply-all on purpose"`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

// stdinPiped reports whether standard input is a pipe or file.
var stdinPiped = func() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 && stdinPiped() {
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), 64*1024))
		if err != nil {
			return err
		}
		text = string(data)
	}

	normalized, err := validate.Confession(text)
	if err != nil {
		return err
	}

	res, err := ctx.Store.Append(normalized)
	if err != nil {
		return runtime.WrapDiskFullError(err, "write", ctx.DB.Path())
	}

	logging.LogOperation("add", logging.KeyEntryID, res.Entry.ID, logging.KeyCount, res.Size)

	switch {
	case ctx.IsJSON():
		return ctx.JSONFormatter().PrintRecorded(res.Entry, res.Size)
	case ctx.IsPlain():
		ctx.PlainFormatter().PrintEntry(res.Entry)
	default:
		cli := ctx.CLIFormatter()
		if normalized != validate.Normalize(text) {
			cli.Warning("Control characters were removed.")
		}
		cli.PrintRecorded(res.Entry, res.Size)
	}
	return nil
}
