package alerts

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertString(t *testing.T) {
	a := NewWarning("skipped C").WithError(errors.New("bad json")).WithDetails("fix C/meta.json")
	assert.Equal(t, "! skipped C: bad json\n  fix C/meta.json", a.String())
	assert.Equal(t, "i hello", New(LevelInfo, "hello").String())
}

func TestLevel(t *testing.T) {
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "unknown(9)", Level(9).String())
	assert.Equal(t, "?", Level(9).Icon())
}

func TestWriterWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)
	require.NoError(t, w.Write(NewWarning("skipped C")))
	assert.Equal(t, "! skipped C\n", buf.String())
}
