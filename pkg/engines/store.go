package engines

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"codeberg.org/r6915ee/dropfunk/pkg/constants"
	"codeberg.org/r6915ee/dropfunk/pkg/errors"
)

// MetadataStore loads the metadata of one engine directory.
type MetadataStore interface {
	// LoadOrCreate returns the metadata stored in dir. When dir has no
	// sidecar a default one is written first and created is true.
	LoadOrCreate(dir string) (meta Metadata, created bool, err error)
}

// Compile-time interface check.
var _ MetadataStore = (*FileStore)(nil)

// FileStore keeps metadata in a meta.json file inside each engine directory.
type FileStore struct {
	fs afero.Fs
}

// NewFileStore returns a store backed by fs. A nil fs means the OS filesystem.
func NewFileStore(fs afero.Fs) *FileStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileStore{fs: fs}
}

// SidecarPath returns the metadata file path for an engine directory.
func SidecarPath(dir string) string {
	return filepath.Join(dir, constants.MetadataFileName)
}

// LoadOrCreate implements MetadataStore. An existing sidecar is never
// rewritten.
func (s *FileStore) LoadOrCreate(dir string) (Metadata, bool, error) {
	path := SidecarPath(dir)

	if err := s.checkLink(path); err != nil {
		return Metadata{}, false, err
	}

	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return Metadata{}, false, errors.WrapIO("stat", path, err)
	}

	if !exists {
		meta := DefaultMetadata()
		data, err := meta.Encode()
		if err != nil {
			return Metadata{}, false, errors.WrapParse("json", path, err)
		}
		if err := afero.WriteFile(s.fs, path, data, constants.FilePermissions); err != nil {
			return Metadata{}, false, errors.WrapIO("write", path, err)
		}
		return meta, true, nil
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return Metadata{}, false, errors.WrapIO("read", path, err)
	}
	meta, err := DecodeMetadata(path, data)
	if err != nil {
		return Metadata{}, false, err
	}
	return meta, false, nil
}

// checkLink fails when the sidecar is a symlink whose target is missing,
// so the template is never written through it.
func (s *FileStore) checkLink(path string) error {
	lstater, ok := s.fs.(afero.Lstater)
	if !ok {
		return nil
	}
	info, _, err := lstater.LstatIfPossible(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return nil
	}
	if _, err := s.fs.Stat(path); err != nil {
		return errors.WrapIO("stat", path, err)
	}
	return nil
}
