package engines

import (
	"github.com/agentstation/utc"

	"codeberg.org/r6915ee/dropfunk/pkg/errors"
)

// ScanFailure records an engine directory excluded from a catalog.
type ScanFailure struct {
	Dir string
	Err error
}

// Catalog is the result of a scan: the engines found under a root
// location plus the index the presentation layer has selected.
//
// Apart from Select, a Catalog does not change after the scan. It is not
// safe for concurrent use; hand it to a single owner.
type Catalog struct {
	location  string
	engines   []Engine
	selected  int
	failures  []ScanFailure
	scannedAt utc.Time
}

// NewCatalog builds a catalog from already loaded engines. Scanner.Scan is
// the usual constructor; this one exists for callers assembling catalogs
// from other sources and for tests.
func NewCatalog(location string, engines []Engine) *Catalog {
	return &Catalog{
		location:  location,
		engines:   engines,
		scannedAt: utc.Now(),
	}
}

// Location returns the absolute root path that was scanned.
func (c *Catalog) Location() string { return c.location }

// Len returns the number of engines.
func (c *Catalog) Len() int { return len(c.engines) }

// IsEmpty reports whether no engines were found. This is the normal
// state of a fresh installation.
func (c *Catalog) IsEmpty() bool { return len(c.engines) == 0 }

// Engines returns a copy of the engines in scan order.
func (c *Catalog) Engines() []Engine {
	out := make([]Engine, len(c.engines))
	for i, e := range c.engines {
		out[i] = e.clone()
	}
	return out
}

// Engine returns the engine at index i. It panics if i is out of range.
func (c *Catalog) Engine(i int) Engine { return c.engines[i].clone() }

// Metadata returns the metadata of engine i. It panics if i is out of range.
func (c *Catalog) Metadata(i int) Metadata { return c.engines[i].Metadata }

// Versions returns the version folders of engine i. It panics if i is out of range.
func (c *Catalog) Versions(i int) []string {
	return append([]string{}, c.engines[i].Versions...)
}

// Modpacks returns the modpacks of engine i. It panics if i is out of range.
func (c *Catalog) Modpacks(i int) []Modpack {
	return append([]Modpack{}, c.engines[i].Modpacks...)
}

// Index returns the position of the engine whose directory is root.
func (c *Catalog) Index(root string) (int, bool) {
	for i, e := range c.engines {
		if e.Root == root {
			return i, true
		}
	}
	return 0, false
}

// Selected returns the selected index. On an empty catalog the value is
// meaningless and must not be used to index engines.
func (c *Catalog) Selected() int { return c.selected }

// SelectedEngine returns the selected engine, or false when the catalog
// is empty.
func (c *Catalog) SelectedEngine() (Engine, bool) {
	if c.IsEmpty() || c.selected < 0 || c.selected >= len(c.engines) {
		return Engine{}, false
	}
	return c.Engine(c.selected), true
}

// Select changes the selected index. Out-of-range indexes, including any
// index on an empty catalog, are rejected and the selection is unchanged.
func (c *Catalog) Select(i int) error {
	if i < 0 || i >= len(c.engines) {
		return errors.NewValidationError("selected", i, "index out of range")
	}
	c.selected = i
	return nil
}

// Failures returns the engine directories excluded from the catalog.
func (c *Catalog) Failures() []ScanFailure {
	return append([]ScanFailure{}, c.failures...)
}

// ScannedAt returns when the catalog was built.
func (c *Catalog) ScannedAt() utc.Time { return c.scannedAt }
