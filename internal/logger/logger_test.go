package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biorhythm-studio/internal/logger"
)

// TestSetLevelLabel accepts exactly the form's dropdown labels.
func TestSetLevelLabel(t *testing.T) {
	m := logger.NewManager()
	defer m.Close()

	for _, label := range []string{"ERROR", "WARN", "INFO", "DEBUG", "TRACE"} {
		assert.NoError(t, m.SetLevelLabel(label), label)
	}
	assert.Error(t, m.SetLevelLabel("VERBOSE"))
	assert.Error(t, m.SetLevelLabel("info"))
}

// TestEnableFile: the file sink gets a timestamped name in the chosen
// directory and receives structured JSON events.
func TestEnableFile(t *testing.T) {
	m := logger.NewManager()
	m.SetStdout(false)

	dir := t.TempDir()
	path, err := m.EnableFile(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "conversion_"))
	assert.True(t, strings.HasSuffix(path, ".log"))

	m.Info("test", "conversion started", map[string]interface{}{"source": "input.xlsx"})
	require.NoError(t, m.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, `"message":"conversion started"`)
	assert.Contains(t, line, `"component":"test"`)
	assert.Contains(t, line, `"source":"input.xlsx"`)
}

// TestLevelFiltering: events below the active level never reach the sink.
func TestLevelFiltering(t *testing.T) {
	m := logger.NewManager()
	m.SetStdout(false)
	require.NoError(t, m.SetLevelLabel("WARN"))

	path, err := m.EnableFile(t.TempDir())
	require.NoError(t, err)

	m.Debug("test", "too quiet", nil)
	m.Info("test", "still too quiet", nil)
	m.Warn("test", "loud enough", nil)
	require.NoError(t, m.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "too quiet")
	assert.Contains(t, string(data), "loud enough")
}

// TestCloseWithoutFile is a no-op.
func TestCloseWithoutFile(t *testing.T) {
	m := logger.NewManager()
	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close())
}
