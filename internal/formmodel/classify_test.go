package formmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"biorhythm-studio/internal/formmodel"
)

// TestClassifySource_Spreadsheets verifies every recognized
// spreadsheet extension classifies as Excel, case-insensitively.
func TestClassifySource_Spreadsheets(t *testing.T) {
	for _, path := range []string{
		"input.xlsx", "input.xlsm", "input.xlsb", "input.xls",
		"report.XLSX", "Report.XlSm", "/home/user/Desktop/data.XLS",
	} {
		assert.Equal(t, formmodel.SourceExcel, formmodel.ClassifySource(path), "path %q", path)
	}
}

// TestClassifySource_CSV covers the csv bucket.
func TestClassifySource_CSV(t *testing.T) {
	assert.Equal(t, formmodel.SourceCSV, formmodel.ClassifySource("input.csv"))
	assert.Equal(t, formmodel.SourceCSV, formmodel.ClassifySource("DATA.CSV"))
}

// TestClassifySource_Other: unknown extensions, no extension, and the
// empty path all classify as Other with no error condition.
func TestClassifySource_Other(t *testing.T) {
	for _, path := range []string{
		"", "notes.txt", "noextension", "archive.tar.gz", "weird.", ".hidden",
	} {
		assert.Equal(t, formmodel.SourceOther, formmodel.ClassifySource(path), "path %q", path)
	}
}

// TestClassifyDatabase_SQLite covers the recognized SQLite extensions.
func TestClassifyDatabase_SQLite(t *testing.T) {
	for _, path := range []string{"app.db", "app.db3", "app.sqlite", "App.DB", "x.SQLite"} {
		assert.Equal(t, formmodel.DatabaseSQLite, formmodel.ClassifyDatabase(path), "path %q", path)
	}
}

// TestClassifyDatabase_Sqlite3DoesNotMatch pins the known quirk: the
// narrow extension list excludes "sqlite3" on purpose, mirroring the
// file-picker filter.
func TestClassifyDatabase_Sqlite3DoesNotMatch(t *testing.T) {
	assert.Equal(t, formmodel.DatabaseOther, formmodel.ClassifyDatabase("main.sqlite3"))
}

// TestClassifyDatabase_Other covers the fallthrough bucket.
func TestClassifyDatabase_Other(t *testing.T) {
	for _, path := range []string{"", "dump.sql", "database", "db"} {
		assert.Equal(t, formmodel.DatabaseOther, formmodel.ClassifyDatabase(path), "path %q", path)
	}
}
