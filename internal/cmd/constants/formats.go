// Package constants provides shared constants for CLI commands.
package constants

// Output format constants used throughout the CLI.
const (
	// FormatTable is the default table output format.
	FormatTable = "table"

	// FormatWide is a table with the link columns included.
	FormatWide = "wide"

	// FormatJSON outputs data as JSON.
	FormatJSON = "json"

	// FormatYAML outputs data as YAML.
	FormatYAML = "yaml"

	// FormatMarkdown outputs a markdown table.
	FormatMarkdown = "markdown"
)

// IsTable reports whether format renders as a human-oriented table.
func IsTable(format string) bool {
	return format == "" || format == FormatTable || format == FormatWide || format == FormatMarkdown
}
