package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/r6915ee/dropfunk/pkg/engines"
	"codeberg.org/r6915ee/dropfunk/pkg/errors"
)

func testCatalog() *engines.Catalog {
	return engines.NewCatalog("/data", []engines.Engine{
		{Root: "A", Metadata: engines.DefaultMetadata()},
		{Root: "B", Metadata: engines.Metadata{DisplayName: "Beta"}},
	})
}

func TestIndex(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name    string
		arg     string
		want    int
		checkFn func(error) bool
	}{
		{name: "numeric", arg: "1", want: 1},
		{name: "directory name", arg: "A", want: 0},
		{name: "out of range", arg: "2", checkFn: errors.IsValidationError},
		{name: "negative", arg: "-1", checkFn: errors.IsValidationError},
		{name: "unknown directory", arg: "Z", checkFn: errors.IsNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Index(cat, tt.arg)
			if tt.checkFn != nil {
				require.Error(t, err)
				assert.True(t, tt.checkFn(err), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTarget(t *testing.T) {
	cat := testCatalog()
	require.NoError(t, cat.Select(1))

	i, err := Target(cat, "")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = Target(cat, "A")
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	_, err = Target(engines.NewCatalog("/empty", nil), "")
	assert.True(t, errors.IsNotFound(err))
}

func TestViews(t *testing.T) {
	cat := testCatalog()
	require.NoError(t, cat.Select(1))

	views := Views(cat)
	require.Len(t, views, 2)
	assert.False(t, views[0].Selected)
	assert.True(t, views[1].Selected)
	assert.Equal(t, "Beta", views[1].Metadata.DisplayName)
	assert.NotNil(t, views[0].Versions)
	assert.Empty(t, views[0].Versions)
}

func TestIndexPrefersNumericDirectoryNames(t *testing.T) {
	cat := engines.NewCatalog("/data", []engines.Engine{
		{Root: "10", Metadata: engines.DefaultMetadata()},
		{Root: "2", Metadata: engines.DefaultMetadata()},
	})

	tests := []struct {
		arg  string
		want int
	}{
		{arg: "10", want: 0},
		{arg: "2", want: 1},
		{arg: "1", want: 1},
		{arg: "0", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := Index(cat, tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Index(cat, "3")
	assert.True(t, errors.IsValidationError(err))
}
