// Package dropfunk catalogs the engines installed under a root directory.
//
// New scans the root once and keeps the resulting catalog; it is the
// single place where the root location and scan policy are decided:
//
//	df, err := dropfunk.New(ctx, dropfunk.WithRoot(dir))
//	if err != nil {
//	    return err
//	}
//	cat := df.Catalog()
//	if cat.IsEmpty() {
//	    // fresh installation, nothing to show yet
//	}
package dropfunk

import (
	"context"
	"strings"

	"github.com/spf13/afero"

	"codeberg.org/r6915ee/dropfunk/pkg/engines"
	"codeberg.org/r6915ee/dropfunk/pkg/errors"
	"codeberg.org/r6915ee/dropfunk/pkg/logging"
)

// Dropfunk holds the engine catalog built at startup.
type Dropfunk interface {
	// Catalog returns the scanned catalog. Callers own it after the
	// scan; it must not be shared across goroutines.
	Catalog() *engines.Catalog

	// Location returns the absolute engine root.
	Location() string

	// Resolve returns the directory of engine index, or an error
	// satisfying errors.IsNotFound if it disappeared after the scan.
	Resolve(index int) (string, error)
}

// Compile-time interface check.
var _ Dropfunk = (*client)(nil)

type client struct {
	catalog  *engines.Catalog
	resolver *engines.PathResolver
}

// New scans the configured root and returns the catalog holder.
func New(ctx context.Context, opts ...Option) (Dropfunk, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errors.NewConfigError("dropfunk", "applying options", err)
		}
	}
	if strings.TrimSpace(cfg.root) == "" {
		return nil, errors.NewConfigError("dropfunk", "root location is required", nil)
	}
	if cfg.fs == nil {
		cfg.fs = afero.NewOsFs()
	}

	ctx = logging.WithOperation(ctx, "scan")
	scanner := engines.NewScanner(
		engines.WithFS(cfg.fs),
		engines.WithStrict(cfg.strict),
		engines.WithSelected(cfg.selected),
	)
	cat, err := scanner.Scan(ctx, cfg.root)
	if err != nil {
		return nil, errors.WrapResource("scan", "catalog", cfg.root, err)
	}

	return &client{
		catalog:  cat,
		resolver: engines.NewPathResolver(cfg.fs),
	}, nil
}

func (c *client) Catalog() *engines.Catalog {
	return c.catalog
}

func (c *client) Location() string {
	return c.catalog.Location()
}

func (c *client) Resolve(index int) (string, error) {
	return c.resolver.Resolve(c.catalog, index)
}
