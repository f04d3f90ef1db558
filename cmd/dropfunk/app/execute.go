package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/r6915ee/dropfunk/cmd/dropfunk/cmd/list"
	"codeberg.org/r6915ee/dropfunk/cmd/dropfunk/cmd/open"
	pathcmd "codeberg.org/r6915ee/dropfunk/cmd/dropfunk/cmd/path"
	"codeberg.org/r6915ee/dropfunk/cmd/dropfunk/cmd/schema"
	"codeberg.org/r6915ee/dropfunk/cmd/dropfunk/cmd/show"
	"codeberg.org/r6915ee/dropfunk/cmd/dropfunk/cmd/version"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/output"
)

// Execute runs the dropfunk CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dropfunk",
		Short:   "Engine catalog for Dropfunk",
		Version: a.version,
		Long: `Dropfunk keeps a catalog of the game engines installed under its engines
directory. Each subdirectory is an engine described by a meta.json file,
created from a template the first time the engine is seen.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $XDG_CONFIG_HOME/dropfunk/config.yaml)")
	flags.String("data-dir", a.config.DataDir, "engines directory")
	flags.Bool("strict", a.config.Strict, "fail when any engine's meta.json cannot be used")
	flags.Int("select", a.config.Selected, "index of the selected engine")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, wide, json, yaml, markdown")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("dropfunk {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. An explicit --config
// reloads the configuration; flags set on the command line are then
// applied on top.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		config, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		a.config = config
	}
	a.config.ApplyFlags(cmd.Flags())

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(pathcmd.NewCommand(a))
	rootCmd.AddCommand(open.NewCommand(a))

	rootCmd.AddCommand(schema.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
}

// ExitOnError prints err and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
