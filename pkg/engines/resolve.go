package engines

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"codeberg.org/r6915ee/dropfunk/pkg/errors"
)

// PathResolver maps catalog entries back to directories on disk.
type PathResolver struct {
	fs afero.Fs
}

// NewPathResolver returns a resolver checking paths on fs. A nil fs means
// the OS filesystem.
func NewPathResolver(fs afero.Fs) *PathResolver {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &PathResolver{fs: fs}
}

// Resolve returns the absolute directory of engine index in cat.
//
// If the directory was removed after the scan the error is an
// *errors.EngineNotFoundError naming the engine. An out-of-range index is
// a programming error and panics; check cat.Len first.
func (r *PathResolver) Resolve(cat *Catalog, index int) (string, error) {
	if index < 0 || index >= cat.Len() {
		panic(fmt.Sprintf("engines: resolve index %d out of range [0,%d)", index, cat.Len()))
	}
	engine := cat.engines[index]
	path := filepath.Join(cat.location, engine.Root)

	exists, err := afero.Exists(r.fs, path)
	if err != nil {
		return "", errors.WrapIO("stat", path, err)
	}
	if !exists {
		return "", errors.NewEngineNotFoundError(engine.Metadata.DisplayName, path)
	}
	return path, nil
}
