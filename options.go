package dropfunk

import (
	"github.com/spf13/afero"
)

// Option is a function that configures a Dropfunk instance
type Option func(*config) error

type config struct {
	root     string
	fs       afero.Fs
	strict   bool
	selected int
}

// WithRoot sets the engine root directory. It is required.
func WithRoot(root string) Option {
	return func(c *config) error {
		c.root = root
		return nil
	}
}

// WithFS sets the filesystem engines are read from. Defaults to the OS filesystem.
func WithFS(fs afero.Fs) Option {
	return func(c *config) error {
		c.fs = fs
		return nil
	}
}

// WithStrict makes a single unusable engine fail the whole scan.
func WithStrict(strict bool) Option {
	return func(c *config) error {
		c.strict = strict
		return nil
	}
}

// WithSelected sets the initially selected engine index.
func WithSelected(index int) Option {
	return func(c *config) error {
		c.selected = index
		return nil
	}
}
