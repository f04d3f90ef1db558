// Package constants holds values shared across dropfunk: the on-disk
// layout of an engine root, file permissions, and application identity.
package constants

// Application identity.
const (
	// AppName is the binary and data directory name.
	AppName = "dropfunk"

	// EnvPrefix prefixes environment variables read by the CLI (DROPFUNK_DATA_DIR, ...).
	EnvPrefix = "DROPFUNK"

	// ConfigFileName is the base name of the optional config file.
	ConfigFileName = "config"

	// EnginesDirName is the subdirectory of the data directory holding engines.
	EnginesDirName = "engines"
)

// Engine root layout.
const (
	// MetadataFileName is the sidecar file describing an engine.
	MetadataFileName = "meta.json"

	// DefaultDisplayName is written into freshly created sidecars.
	DefaultDisplayName = "Template"

	// ModsDirName is reserved for modpacks shipped alongside an engine.
	ModsDirName = "mods"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
