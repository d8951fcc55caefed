// Package logger wraps zerolog behind a small manager that the rest
// of the application logs through with component-tagged fields. The
// manager owns the sink configuration the file form controls at
// runtime: verbosity by display label, an optional per-run log file,
// and a stdout on/off toggle. No package-level singleton: the manager
// is constructed at startup and passed explicitly.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Level display labels accepted by SetLevelLabel, matching the file
// form's log level dropdown.
var levelByLabel = map[string]zerolog.Level{
	"ERROR": zerolog.ErrorLevel,
	"WARN":  zerolog.WarnLevel,
	"INFO":  zerolog.InfoLevel,
	"DEBUG": zerolog.DebugLevel,
	"TRACE": zerolog.TraceLevel,
}

// Manager is a rebuildable multi-sink zerolog front. All sink changes
// take effect for subsequent log calls; concurrent logging is safe.
type Manager struct {
	mu     sync.RWMutex
	level  zerolog.Level
	stdout bool
	file   *os.File
	logger zerolog.Logger
}

// NewManager returns a manager logging to stdout at info level.
func NewManager() *Manager {
	m := &Manager{
		level:  zerolog.InfoLevel,
		stdout: true,
	}
	m.rebuild()
	return m
}

// rebuild recomposes the underlying zerolog.Logger from the current
// sink set. Callers must hold mu.
func (m *Manager) rebuild() {
	writers := make([]io.Writer, 0, 2)
	if m.stdout {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout})
	}
	if m.file != nil {
		writers = append(writers, m.file)
	}
	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}
	m.logger = zerolog.New(out).
		Level(m.level).
		With().
		Timestamp().
		Logger()
}

// SetLevelLabel changes the active verbosity from a form display label
// ("ERROR", "WARN", "INFO", "DEBUG", "TRACE").
func (m *Manager) SetLevelLabel(label string) error {
	level, ok := levelByLabel[label]
	if !ok {
		return fmt.Errorf("unknown log level %q", label)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.level = level
	m.rebuild()
	return nil
}

// SetStdout enables or disables the console sink.
func (m *Manager) SetStdout(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stdout = enabled
	m.rebuild()
}

// EnableFile opens a timestamped log file in dir and adds it as a
// sink, replacing any previously opened file. Names include the run's
// start time so successive runs never overwrite each other. Returns
// the full path of the opened file.
func (m *Manager) EnableFile(dir string) (string, error) {
	name := fmt.Sprintf("conversion_%s.log", time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.file != nil {
		m.file.Close()
	}
	m.file = f
	m.rebuild()
	return path, nil
}

// Close releases the file sink, if any.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.file == nil {
		return nil
	}
	err := m.file.Close()
	m.file = nil
	m.rebuild()
	return err
}

func (m *Manager) current() zerolog.Logger {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.logger
}

// Info logs a component-tagged informational message.
func (m *Manager) Info(component, message string, fields map[string]interface{}) {
	logger := m.current()
	event := logger.Info().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

// Warn logs a component-tagged warning.
func (m *Manager) Warn(component, message string, fields map[string]interface{}) {
	logger := m.current()
	event := logger.Warn().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

// Debug logs a component-tagged debug message.
func (m *Manager) Debug(component, message string, fields map[string]interface{}) {
	logger := m.current()
	event := logger.Debug().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

// Error logs a component-tagged failure.
func (m *Manager) Error(component string, err error, fields map[string]interface{}) {
	logger := m.current()
	event := logger.Error().Str("component", component).Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg("operation failed")
}
