package appcontext

import (
	"context"

	"github.com/rs/zerolog"

	"codeberg.org/r6915ee/dropfunk"
)

// Compile-time interface check.
var _ Interface = (*Mock)(nil)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	DropfunkFunc     func(context.Context) (dropfunk.Dropfunk, error)
	OpenFunc         func(string) error
	LoggerFunc       func() *zerolog.Logger
	NoColorFunc      func() bool
	OutputFormatFunc func() string
	VersionFunc      func() string
}

// Dropfunk returns the catalog holder using the mock function or nil.
func (m *Mock) Dropfunk(ctx context.Context) (dropfunk.Dropfunk, error) {
	if m.DropfunkFunc != nil {
		return m.DropfunkFunc(ctx)
	}
	return nil, nil
}

// Open calls the mock function or does nothing.
func (m *Mock) Open(path string) error {
	if m.OpenFunc != nil {
		return m.OpenFunc(path)
	}
	return nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// NoColor returns the mock function result or false.
func (m *Mock) NoColor() bool {
	if m.NoColorFunc != nil {
		return m.NoColorFunc()
	}
	return false
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "unknown".
func (m *Mock) BuiltBy() string { return "unknown" }
