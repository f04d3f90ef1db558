// Package open provides the open command.
package open

import (
	"github.com/spf13/cobra"

	"codeberg.org/r6915ee/dropfunk/internal/appcontext"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/completion"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/engine"
)

// NewCommand creates the open command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "open [engine]",
		GroupID: "core",
		Short:   "Open the engines directory in the file manager",
		Long: `Open the engines directory, or the directory of one engine given by
index or directory name, in the platform file manager.`,
		Example: `  dropfunk open             # Engines directory
  dropfunk open godot       # One engine`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completion.Engines(app),
		RunE:              func(cmd *cobra.Command, args []string) error {
			df, err := app.Dropfunk(cmd.Context())
			if err != nil {
				return err
			}

			target := df.Location()
			if len(args) == 1 {
				index, err := engine.Index(df.Catalog(), args[0])
				if err != nil {
					return err
				}
				if target, err = df.Resolve(index); err != nil {
					return err
				}
			}
			return app.Open(target)
		},
	}
}
