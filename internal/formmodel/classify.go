package formmodel

import (
	"path/filepath"
	"strings"
)

// SourceKind classifies an input file path by extension.
type SourceKind int

const (
	SourceOther SourceKind = iota
	SourceExcel
	SourceCSV
)

func (k SourceKind) String() string {
	switch k {
	case SourceExcel:
		return "Excel"
	case SourceCSV:
		return "CSV"
	default:
		return "Other"
	}
}

// DatabaseKind classifies a database file path by extension.
type DatabaseKind int

const (
	DatabaseOther DatabaseKind = iota
	DatabaseSQLite
)

func (k DatabaseKind) String() string {
	if k == DatabaseSQLite {
		return "SQLite"
	}
	return "Other"
}

// Extension filter tables. These drive both classification and the
// file-picker dialog filters so the two can never drift apart.
var (
	ExcelExtensions  = []string{"xlsx", "xlsm", "xlsb", "xls"}
	CSVExtensions    = []string{"csv"}
	SQLiteExtensions = []string{"db", "db3", "sqlite"}
)

// ClassifySource buckets a source path into Excel, CSV, or Other by
// its extension, case-insensitively. Empty paths and paths without an
// extension classify as Other; there is no error condition.
func ClassifySource(path string) SourceKind {
	switch ext := lowerExt(path); {
	case contains(ExcelExtensions, ext):
		return SourceExcel
	case contains(CSVExtensions, ext):
		return SourceCSV
	default:
		return SourceOther
	}
}

// ClassifyDatabase buckets a database path into SQLite or Other.
// Only db, db3, and sqlite match; "sqlite3" deliberately does not —
// the narrow list matches the shipped file-picker filter and is kept
// as-is rather than widened.
func ClassifyDatabase(path string) DatabaseKind {
	if contains(SQLiteExtensions, lowerExt(path)) {
		return DatabaseSQLite
	}
	return DatabaseOther
}

// lowerExt extracts the extension without its leading dot, lowercased.
// Returns "" when the path has no extension.
func lowerExt(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func contains(list []string, value string) bool {
	if value == "" {
		return false
	}
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
