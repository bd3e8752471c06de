package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	murerrors "github.com/manav03panchal/murmur/internal/errors"
	"github.com/manav03panchal/murmur/internal/logging"
	"github.com/manav03panchal/murmur/internal/runtime"
)

var eraseYes bool

var eraseCmd = &cobra.Command{
	Use:   "erase",
	Short: "Erase all recorded confessions",
	Long: `Permanently erase every recorded confession.

You are asked to confirm unless --yes is given. Without a terminal to ask
on, --yes is required.

Examples:
  murmur erase
  murmur erase --yes`,
	Args: cobra.NoArgs,
	RunE: runErase,
}

func init() {
	eraseCmd.Flags().BoolVarP(&eraseYes, "yes", "y", false, "Erase without asking")
	rootCmd.AddCommand(eraseCmd)
}

func runErase(cmd *cobra.Command, args []string) error {
	count := ctx.Store.Len()

	if !eraseYes && count > 0 {
		if !isTerminal(os.Stdin.Fd()) {
			return murerrors.NewUserError(
				"Refusing to erase without confirmation",
				"Pass --yes to erase from a script.").WithCause(murerrors.ErrNotConfirmed)
		}
		ok, err := promptConfirmation(cmd.InOrStdin(), cmd.ErrOrStderr(),
			fmt.Sprintf("ERASE ALL %d RECORDINGS? [y/N]: ", count))
		if err != nil {
			return err
		}
		if !ok {
			if ctx.IsJSON() {
				return ctx.JSONFormatter().PrintErased(count, false)
			}
			ctx.CLIFormatter().Muted("Cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Clear(); err != nil {
		return runtime.WrapDiskFullError(err, "erase", ctx.DB.Path())
	}
	logging.LogOperation("erase", logging.KeyCount, count)

	switch {
	case ctx.IsJSON():
		return ctx.JSONFormatter().PrintErased(count, true)
	case ctx.IsPlain():
		ctx.Formatter.Println(count)
	default:
		ctx.CLIFormatter().PrintErased(count)
	}
	return nil
}

// promptConfirmation asks a yes/no question. Anything but y or yes is no.
func promptConfirmation(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response := strings.ToLower(strings.TrimSpace(line))
	return response == "y" || response == "yes", nil
}
