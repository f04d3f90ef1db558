// Package show provides the show command.
package show

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"codeberg.org/r6915ee/dropfunk/internal/appcontext"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/completion"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/constants"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/engine"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/output"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/table"
	"codeberg.org/r6915ee/dropfunk/pkg/engines"
)

// NewCommand creates the show command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "show [engine]",
		GroupID: "core",
		Short:   "Show engine details",
		Long: `Show the metadata, versions and modpacks of one engine.

The engine is given by index or directory name. Without an argument the
selected engine (--select) is shown. Naming an engine makes it the
selected one.`,
		Example: `  dropfunk show             # Selected engine
  dropfunk show 1           # Engine at index 1
  dropfunk show godot       # Engine in directory godot`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completion.Engines(app),
		RunE:              func(cmd *cobra.Command, args []string) error {
			df, err := app.Dropfunk(cmd.Context())
			if err != nil {
				return err
			}
			cat := df.Catalog()

			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			index, err := engine.Target(cat, arg)
			if err != nil {
				return err
			}
			if arg != "" && index != cat.Selected() {
				if err := cat.Select(index); err != nil {
					return err
				}
				app.Logger().Warn().Msgf("Set current engine to %s", cat.Metadata(index).DisplayName)
			}

			path, err := df.Resolve(index)
			if err != nil {
				return err
			}

			view := engine.NewView(cat, index)
			view.Path = path

			format := app.OutputFormat()
			if !constants.IsTable(format) {
				return output.Render(cmd.OutOrStdout(), format, table.Data{}, view)
			}
			return printDetails(cmd.OutOrStdout(), format, cat.Engine(index), path)
		},
	}
}

func printDetails(w io.Writer, format string, e engines.Engine, path string) error {
	fmt.Fprintf(w, "Engine: %s\n\n", e.DisplayName())
	if err := output.Render(w, format, table.EngineDetails(e, path), nil); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if len(e.Modpacks) == 0 {
		fmt.Fprintln(w, "Modpacks: none")
		return nil
	}
	fmt.Fprintln(w, "Modpacks:")
	return output.Render(w, format, table.ModpacksToTableData(e.Modpacks), nil)
}
