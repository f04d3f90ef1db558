// Package app provides the application context and dependency management
// for the dropfunk CLI: configuration, logging and the lazily scanned
// engine catalog.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/afero"

	"codeberg.org/r6915ee/dropfunk"
	"codeberg.org/r6915ee/dropfunk/internal/appcontext"
	"codeberg.org/r6915ee/dropfunk/internal/cmd/output"
	"codeberg.org/r6915ee/dropfunk/pkg/errors"
	"codeberg.org/r6915ee/dropfunk/pkg/logging"
)

// Compile-time interface check.
var _ appcontext.Interface = (*App)(nil)

// App represents the dropfunk application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	fs     afero.Fs
	opener func(string) error

	// Catalog holder (lazy-initialized, singleton)
	mu       sync.RWMutex
	dropfunk dropfunk.Dropfunk
}

// New creates a new App instance with the given version information.
// Configuration comes from the default locations and can be replaced
// with functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		fs:      afero.NewOsFs(),
		opener:  open.Run,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// NoColor reports whether --no-color or DROPFUNK_NO_COLOR is set.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// OutputFormat returns the configured output format, detected from the
// terminal when none is set.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Dropfunk returns the catalog holder, scanning the engine root on first
// use. It is safe for concurrent use and scans at most once.
func (a *App) Dropfunk(ctx context.Context) (dropfunk.Dropfunk, error) {
	a.mu.RLock()
	if a.dropfunk != nil {
		df := a.dropfunk
		a.mu.RUnlock()
		return df, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.dropfunk != nil {
		return a.dropfunk, nil
	}

	ctx = logging.WithLogger(ctx, a.logger)
	df, err := dropfunk.New(ctx,
		dropfunk.WithRoot(a.config.DataDir),
		dropfunk.WithFS(a.fs),
		dropfunk.WithStrict(a.config.Strict),
		dropfunk.WithSelected(a.config.Selected),
	)
	if err != nil {
		return nil, err
	}

	a.dropfunk = df
	return df, nil
}

// Open hands path to the platform file manager and waits for the
// launcher to exit.
func (a *App) Open(path string) error {
	a.logger.Debug().Str("path", path).Msg("Opening in file manager")
	if err := a.opener(path); err != nil {
		return errors.NewProcessError("open", path, err)
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFS sets the filesystem the engine root is scanned on.
func WithFS(fs afero.Fs) Option {
	return func(a *App) error {
		a.fs = fs
		return nil
	}
}

// WithOpener replaces the file manager launcher (useful for testing).
func WithOpener(opener func(string) error) Option {
	return func(a *App) error {
		a.opener = opener
		return nil
	}
}

// WithDropfunk sets a prebuilt catalog holder (useful for testing).
func WithDropfunk(df dropfunk.Dropfunk) Option {
	return func(a *App) error {
		a.dropfunk = df
		return nil
	}
}
