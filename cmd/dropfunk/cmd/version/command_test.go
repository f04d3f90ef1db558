package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/r6915ee/dropfunk/internal/appcontext"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand(&appcontext.Mock{VersionFunc: func() string { return "1.2.3" }})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "dropfunk version 1.2.3")
	assert.Contains(t, out.String(), "commit: unknown")
	assert.Contains(t, out.String(), "platform: ")
}
