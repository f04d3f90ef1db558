package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/r6915ee/dropfunk/pkg/errors"
)

// isolateConfig runs the test in an empty directory with no DROPFUNK_
// or LOG_ variables set.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "DROPFUNK_") || strings.HasPrefix(key, "LOG_") {
			unsetEnv(t, key)
		}
	}
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	xdg.Reload()
	return dir
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateConfig(t)

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultDataDir(), config.DataDir)
	assert.False(t, config.Strict)
	assert.Equal(t, 0, config.Selected)
	assert.Empty(t, config.Format)
	assert.Empty(t, config.LogLevel)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
	assert.Empty(t, config.ConfigFile)
}

func TestDefaultDataDir(t *testing.T) {
	assert.True(t, strings.HasSuffix(DefaultDataDir(), filepath.Join("dropfunk", "engines")), DefaultDataDir())
	assert.True(t, filepath.IsAbs(DefaultDataDir()))
}

func TestLoadConfigExplicitFile(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /srv/engines\nstrict: true\nselected: 2\nformat: yaml\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/engines", config.DataDir)
	assert.True(t, config.Strict)
	assert.Equal(t, 2, config.Selected)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, path, config.ConfigFile)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	dir := isolateConfig(t)

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadConfigLocalFile(t *testing.T) {
	isolateConfig(t)
	require.NoError(t, os.WriteFile(".dropfunk.yaml", []byte("data_dir: ./engines\n"), 0o644))

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "./engines", config.DataDir)
	assert.Equal(t, ".dropfunk.yaml", config.ConfigFile)
}

func TestLoadConfigEnvironment(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /from/file\n"), 0o644))

	t.Setenv("DROPFUNK_DATA_DIR", "/from/env")
	t.Setenv("DROPFUNK_SELECTED", "3")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", config.DataDir)
	assert.Equal(t, 3, config.Selected)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfigDotEnv(t *testing.T) {
	isolateConfig(t)
	unsetEnv(t, "DROPFUNK_STRICT")
	unsetEnv(t, "DROPFUNK_FORMAT")
	require.NoError(t, os.WriteFile(".env", []byte("DROPFUNK_STRICT=true\nDROPFUNK_FORMAT=json\n"), 0o644))
	require.NoError(t, os.WriteFile(".env.local", []byte("DROPFUNK_FORMAT=markdown\n"), 0o644))

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.True(t, config.Strict)
	assert.Equal(t, "markdown", config.Format)
}

func TestConfigApplyFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data-dir", "", "")
	flags.Bool("strict", false, "")
	flags.Int("select", 0, "")
	flags.String("format", "", "")
	flags.String("log-level", "", "")
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Parse([]string{"--data-dir=/flag", "--select=1", "--verbose"}))

	config := &Config{DataDir: "/config", Strict: true, Format: "yaml"}
	config.ApplyFlags(flags)

	assert.Equal(t, "/flag", config.DataDir)
	assert.Equal(t, 1, config.Selected)
	assert.True(t, config.Verbose)
	// Unset flags leave the loaded values alone.
	assert.True(t, config.Strict)
	assert.Equal(t, "yaml", config.Format)
}
