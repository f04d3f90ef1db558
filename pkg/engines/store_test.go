package engines_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/r6915ee/dropfunk/internal/utils/ptr"
	"codeberg.org/r6915ee/dropfunk/pkg/engines"
	"codeberg.org/r6915ee/dropfunk/pkg/errors"
)

func TestFileStoreCreatesDefault(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/engines/A", 0o755))
	store := engines.NewFileStore(fs)

	meta, created, err := store.LoadOrCreate("/engines/A")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, engines.DefaultMetadata(), meta)

	data, err := afero.ReadFile(fs, "/engines/A/meta.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"display_name":"Template","source_code":null,"website":null,"authors":null}`, string(data))
}

func TestFileStoreLoadsExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	original := []byte(`{"display_name":"Beta","authors":"Team B"}`)
	require.NoError(t, fs.MkdirAll("/engines/B", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/engines/B/meta.json", original, 0o644))
	store := engines.NewFileStore(fs)

	meta, created, err := store.LoadOrCreate("/engines/B")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, engines.Metadata{DisplayName: "Beta", Authors: ptr.String("Team B")}, meta)

	after, err := afero.ReadFile(fs, "/engines/B/meta.json")
	require.NoError(t, err)
	assert.Equal(t, original, after, "existing sidecar must not be rewritten")
}

func TestFileStoreSecondCallLoads(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/engines/A", 0o755))
	store := engines.NewFileStore(fs)

	first, created, err := store.LoadOrCreate("/engines/A")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := store.LoadOrCreate("/engines/A")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, second)
}

func TestFileStoreErrors(t *testing.T) {
	t.Run("malformed sidecar", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/engines/C", 0o755))
		require.NoError(t, afero.WriteFile(fs, "/engines/C/meta.json", []byte("{not json"), 0o644))

		_, _, err := engines.NewFileStore(fs).LoadOrCreate("/engines/C")
		require.Error(t, err)
		assert.True(t, errors.IsParseError(err))
	})

	t.Run("missing display name", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/engines/C", 0o755))
		require.NoError(t, afero.WriteFile(fs, "/engines/C/meta.json", []byte(`{"website":"x"}`), 0o644))

		_, _, err := engines.NewFileStore(fs).LoadOrCreate("/engines/C")
		require.Error(t, err)
		assert.True(t, errors.IsParseError(err))
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unwritable directory", func(t *testing.T) {
		base := afero.NewMemMapFs()
		require.NoError(t, base.MkdirAll("/engines/A", 0o755))

		_, _, err := engines.NewFileStore(afero.NewReadOnlyFs(base)).LoadOrCreate("/engines/A")
		require.Error(t, err)
		var ioErr *errors.IOError
		require.True(t, errors.As(err, &ioErr))
		assert.Equal(t, "write", ioErr.Operation)
		assert.Equal(t, "/engines/A/meta.json", ioErr.Path)
	})

	t.Run("sidecar is a directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/engines/D/meta.json", 0o755))

		_, _, err := engines.NewFileStore(fs).LoadOrCreate("/engines/D")
		require.Error(t, err)
		assert.True(t, errors.IsIOError(err) || errors.IsParseError(err))
	})
}

func TestSidecarPath(t *testing.T) {
	assert.Equal(t, "/engines/A/meta.json", engines.SidecarPath("/engines/A"))
}

func TestFileStoreRejectsDanglingSidecarLink(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	target := filepath.Join(outside, "meta.json")

	require.NoError(t, os.Mkdir(filepath.Join(root, "A"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "B"), 0o755))
	if err := os.Symlink(target, filepath.Join(root, "A", "meta.json")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	_, created, err := engines.NewFileStore(afero.NewOsFs()).LoadOrCreate(filepath.Join(root, "A"))
	require.Error(t, err)
	assert.False(t, created)
	assert.True(t, errors.IsIOError(err))
	assert.NoFileExists(t, target)

	cat, err := engines.NewScanner().Scan(context.Background(), root)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())
	assert.Equal(t, "B", cat.Engine(0).Root)
	require.Len(t, cat.Failures(), 1)
	assert.Equal(t, "A", cat.Failures()[0].Dir)
	assert.NoFileExists(t, target)
}
