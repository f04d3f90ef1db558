// Package list provides the list command.
package list

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"codeberg.org/r6915ee/dropfunk/internal/appcontext"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/alerts"
	cmdconstants "codeberg.org/r6915ee/dropfunk/internal/cmd/constants"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/engine"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/output"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/table"
	"codeberg.org/r6915ee/dropfunk/pkg/constants"
	"codeberg.org/r6915ee/dropfunk/pkg/engines"
)

// NewCommand creates the list command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "List installed engines",
		Long: `List the engines installed under the engines directory.

Every subdirectory of the engines directory is an engine. Engines without a
meta.json get a template one on first scan. The selected engine is marked
with *.`,
		Example: `  dropfunk list             # Table of engines
  dropfunk list -o wide     # Include source code and website columns
  dropfunk list -o json     # Structured output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			df, err := app.Dropfunk(cmd.Context())
			if err != nil {
				return err
			}
			cat := df.Catalog()
			format := app.OutputFormat()

			if cat.IsEmpty() && cmdconstants.IsTable(format) {
				printNoEngines(cmd.OutOrStdout(), cat.Location())
			} else {
				data := table.EnginesToTableData(cat.Engines(), cat.Selected(), format == cmdconstants.FormatWide)
				if err := output.Render(cmd.OutOrStdout(), format, data, engine.Views(cat)); err != nil {
					return err
				}
			}

			return printFailures(alerts.NewWriter(cmd.ErrOrStderr(), app.NoColor()), cat.Failures())
		},
	}
}

func printNoEngines(w io.Writer, location string) {
	fmt.Fprintf(w, `No Engines

No engines have been installed. To use Dropfunk, please install an engine.
To install an engine:
  1. Create a subdirectory under the engines directory (%s).
     This subdirectory contains the versions of the engine, as well as metadata.
  2. Create a subdirectory under the previous directory with the version number
     as the filename. Extract the downloaded engine into this subdirectory.
  3. If any modpacks were distributed alongside the downloaded engine, move them
     into a %s subdirectory under the main engine directory.
  4. Dropfunk will create a template %s file that describes the engine's
     metadata. You are free to configure this file as you please.
  5. At this point, you should be able to start using Dropfunk!

Run "dropfunk open" to open the engines directory.
`, location, constants.ModsDirName, constants.MetadataFileName)
}

func printFailures(w *alerts.Writer, failures []engines.ScanFailure) error {
	for _, f := range failures {
		alert := alerts.NewWarning("skipped "+f.Dir).
			WithError(f.Err).
			WithDetails("Fix or remove " + filepath.Join(f.Dir, constants.MetadataFileName) + " and run the command again.")
		if err := w.Write(alert); err != nil {
			return err
		}
	}
	return nil
}
