package formmodel

// Backend identifies the database backend selected in the file form.
type Backend int

const (
	BackendSQLite Backend = iota
	BackendMySQL
	BackendDB2
	BackendPostgres
	BackendMariaDB
	BackendMSSQL
	BackendRedis
	BackendAWS
	BackendAzure
	BackendGoogleCloud
	BackendApache
)

// DefaultBackend is used when the form carries no recognizable
// backend label.
const DefaultBackend = BackendSQLite

// backendLabels is the single bidirectional source of truth for
// backend display strings. Adding a backend is a one-line change here;
// parsing, rendering, and the dropdown option list all derive from it.
var backendLabels = []struct {
	backend Backend
	label   string
}{
	{BackendSQLite, "SQLite"},
	{BackendMySQL, "MySQL"},
	{BackendDB2, "DB2"},
	{BackendPostgres, "Postgresql"},
	{BackendMariaDB, "MariaDB"},
	{BackendMSSQL, "MSSQL"},
	{BackendRedis, "Redis"},
	{BackendAWS, "AWS"},
	{BackendAzure, "Azure"},
	{BackendGoogleCloud, "Google Cloud"},
	{BackendApache, "Apache"},
}

// Label returns the backend's display string.
func (b Backend) Label() string {
	for _, entry := range backendLabels {
		if entry.backend == b {
			return entry.label
		}
	}
	return DefaultBackend.Label()
}

func (b Backend) String() string {
	return b.Label()
}

// BackendFromLabel parses an exact, case-sensitive display label.
// Unknown labels report ok=false; callers substitute DefaultBackend
// rather than treating this as an error.
func BackendFromLabel(label string) (Backend, bool) {
	for _, entry := range backendLabels {
		if entry.label == label {
			return entry.backend, true
		}
	}
	return DefaultBackend, false
}

// BackendLabels returns the display labels in dropdown order.
func BackendLabels() []string {
	labels := make([]string, len(backendLabels))
	for i, entry := range backendLabels {
		labels[i] = entry.label
	}
	return labels
}

// Level is the log verbosity selected in the file form.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// DefaultLevel is used when the form carries no recognizable level label.
const DefaultLevel = LevelInfo

var levelLabels = []struct {
	level Level
	label string
}{
	{LevelError, "ERROR"},
	{LevelWarn, "WARN"},
	{LevelInfo, "INFO"},
	{LevelDebug, "DEBUG"},
	{LevelTrace, "TRACE"},
}

// Label returns the level's display string.
func (l Level) Label() string {
	for _, entry := range levelLabels {
		if entry.level == l {
			return entry.label
		}
	}
	return DefaultLevel.Label()
}

func (l Level) String() string {
	return l.Label()
}

// LevelFromLabel parses an exact, case-sensitive display label.
// Unknown labels report ok=false; callers substitute DefaultLevel.
func LevelFromLabel(label string) (Level, bool) {
	for _, entry := range levelLabels {
		if entry.label == label {
			return entry.level, true
		}
	}
	return DefaultLevel, false
}

// LevelLabels returns the display labels in dropdown order.
func LevelLabels() []string {
	labels := make([]string, len(levelLabels))
	for i, entry := range levelLabels {
		labels[i] = entry.label
	}
	return labels
}
