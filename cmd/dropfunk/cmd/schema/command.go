// Package schema provides the schema command.
package schema

import (
	"github.com/spf13/cobra"

	"codeberg.org/r6915ee/dropfunk/internal/appcontext"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/constants"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/output"
	"codeberg.org/r6915ee/dropfunk/pkg/engines"
)

// NewCommand creates the schema command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "schema",
		GroupID: "management",
		Short:   "Print the JSON Schema of meta.json",
		Long: `Print the JSON Schema describing an engine's meta.json file.

Point your editor at it to get validation while editing metadata.`,
		Example: `  dropfunk schema > meta.schema.json`,
		Args:    cobra.NoArgs,
		RunE:    func(cmd *cobra.Command, _ []string) error {
			if format := app.OutputFormat(); !constants.IsTable(format) && format != constants.FormatJSON {
				app.Logger().Debug().Str("format", format).Msg("Schema is always printed as JSON")
			}
			return output.NewFormatter(output.FormatJSON).Format(cmd.OutOrStdout(), engines.MetadataSchema())
		},
	}
}
