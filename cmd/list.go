package cmd

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	murerrors "github.com/manav03panchal/murmur/internal/errors"
	"github.com/manav03panchal/murmur/internal/journal"
	"github.com/manav03panchal/murmur/internal/parser"
)

var (
	listSince string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recorded confessions",
	Long: `List recorded confessions, oldest first.

Examples:
  murmur list
  murmur list --since yesterday
  murmur list --since "last week" --limit 5
  murmur list -f plain | cut -f3`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSince, "since", "", "Only show recordings at or after this time")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Show at most N of the most recent recordings")
	_ = listCmd.RegisterFlagCompletionFunc("since", completeSince)
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listLimit < 0 {
		return murerrors.NewUserErrorWithField("limit", strconv.Itoa(listLimit),
			"Limit cannot be negative", "Use --limit 0 to show everything.")
	}

	all := ctx.Store.All()
	entries := all

	if listSince != "" {
		since, err := parser.ParseSince(listSince)
		if err != nil {
			var tpe *parser.TimeParseError
			if errors.As(err, &tpe) {
				return tpe.ToUserError()
			}
			return err
		}
		ctx.Debugf("listing since %s", since.Format("2006-01-02 15:04:05"))
		entries = journal.Since(entries, since)
	}
	entries = journal.Last(entries, listLimit)

	switch {
	case ctx.IsJSON():
		return ctx.JSONFormatter().PrintEntries(entries, len(all))
	case ctx.IsPlain():
		ctx.PlainFormatter().PrintEntries(entries)
	default:
		ctx.CLIFormatter().PrintEntries(entries, len(all))
	}
	return nil
}
