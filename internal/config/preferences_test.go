package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biorhythm-studio/internal/config"
)

// TestLoad_MissingFile: an absent preferences file yields the defaults,
// not an error.
func TestLoad_MissingFile(t *testing.T) {
	prefs, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPreferences(), prefs)
}

// TestLoad_File: a valid TOML file overrides the defaults field by field.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	content := "window_width = 1024.0\nwindow_height = 768.0\nlog_level = \"DEBUG\"\nlog_stdout = false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	prefs, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(1024), prefs.WindowWidth)
	assert.Equal(t, float32(768), prefs.WindowHeight)
	assert.Equal(t, "DEBUG", prefs.LogLevel)
	assert.False(t, prefs.LogStdout)
}

// TestLoad_MalformedFile: a file that exists but fails to parse is an
// error, never a silent fallback.
func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("window_width = [broken"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

// TestLoad_PartialFile: fields the file omits keep their defaults, and
// nonsense geometry is clamped back to the defaults.
func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("window_width = -50.0\n"), 0o644))

	prefs, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(config.DefaultWindowWidth), prefs.WindowWidth)
	assert.Equal(t, float32(config.DefaultWindowHeight), prefs.WindowHeight)
	assert.Equal(t, config.DefaultLogLevel, prefs.LogLevel)
}

// TestLoad_EnvOverrides: environment variables win over the file.
func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"DEBUG\"\n"), 0o644))

	t.Setenv("BIORHYTHM_LOG_LEVEL", "TRACE")
	t.Setenv("BIORHYTHM_LOG_STDOUT", "false")
	t.Setenv("BIORHYTHM_WINDOW_WIDTH", "1280")

	prefs, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "TRACE", prefs.LogLevel)
	assert.False(t, prefs.LogStdout)
	assert.Equal(t, float32(1280), prefs.WindowWidth)
}
