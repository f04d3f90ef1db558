// Package appcontext defines what commands need from the application.
// cmd/dropfunk/app implements it; tests use Mock.
package appcontext

import (
	"context"

	"github.com/rs/zerolog"

	"codeberg.org/r6915ee/dropfunk"
)

// Interface is the dependency surface handed to every command.
type Interface interface {
	// Dropfunk returns the catalog holder, scanning the engine root on
	// first use. Later calls return the same instance.
	Dropfunk(ctx context.Context) (dropfunk.Dropfunk, error)

	// Open hands a path to the platform file manager.
	Open(path string) error

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// OutputFormat returns the configured output format (table, wide, json, yaml, markdown).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
