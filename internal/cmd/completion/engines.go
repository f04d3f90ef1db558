// Package completion provides shell completion for command arguments.
package completion

import (
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/r6915ee/dropfunk/internal/appcontext"
)

// Engines completes the first argument with engine directory names,
// described by their display names. Later arguments get no completion.
func Engines(app appcontext.Interface) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		df, err := app.Dropfunk(cmd.Context())
		if err != nil {
			cobra.CompDebugln("engine completion: "+err.Error(), true)
			return nil, cobra.ShellCompDirectiveError
		}

		var completions []string
		for _, e := range df.Catalog().Engines() {
			if strings.HasPrefix(e.Root, toComplete) {
				completions = append(completions, e.Root+"\t"+e.DisplayName())
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}
