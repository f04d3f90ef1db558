package open

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/r6915ee/dropfunk"
	"codeberg.org/r6915ee/dropfunk/internal/appcontext"
)

func TestOpenCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/data/godot", 0o755))

	var opened []string
	app := &appcontext.Mock{
		DropfunkFunc: func(ctx context.Context) (dropfunk.Dropfunk, error) {
			return dropfunk.New(ctx, dropfunk.WithRoot("/data"), dropfunk.WithFS(fs))
		},
		OpenFunc: func(path string) error {
			opened = append(opened, path)
			return nil
		},
	}

	for _, args := range [][]string{{}, {"godot"}, {"0"}} {
		cmd := NewCommand(app)
		cmd.SetArgs(args)
		require.NoError(t, cmd.ExecuteContext(context.Background()))
	}
	assert.Equal(t, []string{"/data", "/data/godot", "/data/godot"}, opened)

	cmd := NewCommand(app)
	cmd.SetArgs([]string{"unreal"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
	assert.Len(t, opened, 3)
}

func TestOpenCommandPropagatesOpenerError(t *testing.T) {
	cause := errors.New("no opener")
	app := &appcontext.Mock{
		DropfunkFunc: func(ctx context.Context) (dropfunk.Dropfunk, error) {
			return dropfunk.New(ctx, dropfunk.WithRoot("/data"), dropfunk.WithFS(afero.NewMemMapFs()))
		},
		OpenFunc: func(string) error { return cause },
	}

	cmd := NewCommand(app)
	cmd.SetArgs([]string{})
	assert.ErrorIs(t, cmd.ExecuteContext(context.Background()), cause)
}
