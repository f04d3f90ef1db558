package engines

import (
	"context"
	"os"
	"path/filepath"

	"github.com/agentstation/utc"
	"github.com/spf13/afero"

	"codeberg.org/r6915ee/dropfunk/pkg/constants"
	"codeberg.org/r6915ee/dropfunk/pkg/errors"
	"codeberg.org/r6915ee/dropfunk/pkg/logging"
)

// Scanner builds catalogs from an engine root directory.
type Scanner struct {
	fs       afero.Fs
	store    MetadataStore
	strict   bool
	selected int
}

// ScanOption configures a Scanner.
type ScanOption func(*Scanner)

// WithFS sets the filesystem to scan. Defaults to the OS filesystem.
func WithFS(fs afero.Fs) ScanOption {
	return func(s *Scanner) {
		s.fs = fs
	}
}

// WithStore sets the metadata store. Defaults to a FileStore on the
// scanner's filesystem.
func WithStore(store MetadataStore) ScanOption {
	return func(s *Scanner) {
		s.store = store
	}
}

// WithStrict makes the first unreadable or malformed engine abort the
// scan. By default such engines are left out and reported through
// Catalog.Failures.
func WithStrict(strict bool) ScanOption {
	return func(s *Scanner) {
		s.strict = strict
	}
}

// WithSelected sets the initial selected index of scanned catalogs.
func WithSelected(index int) ScanOption {
	return func(s *Scanner) {
		s.selected = index
	}
}

// NewScanner returns a Scanner configured by opts.
func NewScanner(opts ...ScanOption) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.store == nil {
		s.store = NewFileStore(s.fs)
	}
	return s
}

// Scan creates root if needed and catalogs each of its subdirectories.
//
// Engines appear in the order the filesystem lists them, which for the
// OS and in-memory filesystems is sorted by name. Plain files and
// symlinks that do not lead to a directory are skipped.
//
// Errors creating or listing root are returned as *errors.IOError. What
// happens to an engine whose sidecar cannot be read or parsed depends on
// WithStrict.
func (s *Scanner) Scan(ctx context.Context, root string) (*Catalog, error) {
	location, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.WrapIO("resolve", root, err)
	}
	ctx = logging.WithRoot(ctx, location)
	logger := logging.FromContext(ctx)

	if err := s.fs.MkdirAll(location, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", location, err)
	}

	entries, err := afero.ReadDir(s.fs, location)
	if err != nil {
		return nil, errors.WrapIO("list", location, err)
	}

	cat := &Catalog{
		location: location,
		engines:  make([]Engine, 0, len(entries)),
	}

	count := 0
	for _, entry := range entries {
		dir := filepath.Join(location, entry.Name())
		if !s.isDir(entry, dir) {
			logger.Trace().Str("entry", entry.Name()).Msg("Skipping non-directory")
			continue
		}
		count++
		engineLog := logging.FromContext(logging.WithEngine(ctx, entry.Name()))

		meta, created, err := s.store.LoadOrCreate(dir)
		if err != nil {
			if s.strict {
				return nil, errors.NewScanError(entry.Name(), err)
			}
			engineLog.Warn().Err(err).Msg("Skipping engine with unusable metadata")
			cat.failures = append(cat.failures, ScanFailure{Dir: entry.Name(), Err: err})
			continue
		}
		if created {
			engineLog.Debug().Msg("Created template metadata")
		}

		cat.engines = append(cat.engines, Engine{
			Root:     entry.Name(),
			Versions: []string{},
			Modpacks: []Modpack{},
			Metadata: meta,
		})
	}

	cat.selected = s.selected
	if !cat.IsEmpty() && (s.selected < 0 || s.selected >= len(cat.engines)) {
		logger.Warn().Int("selected", s.selected).Int("engines", len(cat.engines)).Msg("Selected index out of range, using 0")
		cat.selected = 0
	}
	cat.scannedAt = utc.Now()

	logger.Info().
		Int("count", count).
		Int("failed", len(cat.failures)).
		Msgf("%d engine(s) were recorded", len(cat.engines))

	return cat, nil
}

// isDir reports whether entry is a directory or a symlink to one.
func (s *Scanner) isDir(entry os.FileInfo, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Mode()&os.ModeSymlink == 0 {
		return false
	}
	target, err := s.fs.Stat(path)
	return err == nil && target.IsDir()
}
