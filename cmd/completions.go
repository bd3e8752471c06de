package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/murmur/internal/parser"
)

// completeSince suggests time expressions for --since.
func completeSince(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, ex := range parser.SinceExamples {
		if strings.HasPrefix(ex, toComplete) {
			completions = append(completions, ex)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
