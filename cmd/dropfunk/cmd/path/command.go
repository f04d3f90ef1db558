// Package path provides the path command.
package path

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/r6915ee/dropfunk/internal/appcontext"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/completion"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/engine"
)

// NewCommand creates the path command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "path [engine]",
		GroupID: "core",
		Short:   "Print the directory of an engine",
		Long: `Print the absolute directory of an engine, given by index or directory
name. Without an argument the engines directory itself is printed.

Fails if the engine directory was removed after the scan.`,
		Example: `  dropfunk path             # Engines directory
  dropfunk path 0           # First engine
  cd "$(dropfunk path godot)"`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completion.Engines(app),
		RunE:              func(cmd *cobra.Command, args []string) error {
			df, err := app.Dropfunk(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), df.Location())
				return nil
			}

			index, err := engine.Index(df.Catalog(), args[0])
			if err != nil {
				return err
			}
			path, err := df.Resolve(index)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
