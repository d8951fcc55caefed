package formmodel

import (
	"fmt"
	"strings"
)

// Submission validation messages, in their fixed emission order.
const (
	msgSourceRequired   = "Source file is required."
	msgDatabaseRequired = "Database file is required."
	msgSheetRequired    = "Sheet selection is required for Excel sources."
)

// FileFormModel is a normalized snapshot of the file-selection form.
// It is constructed fresh from the current field values each time the
// host requests a classification or submission check, used, and
// discarded; it is never long-lived mutable state.
type FileFormModel struct {
	SourceFile    string
	DatabaseFile  string
	LogDirectory  string
	Backend       Backend
	Level         Level
	SelectedSheet string
	LogStdout     bool
	HasHeaders    bool
}

// RawFormFields carries the untyped values a UI layer collects:
// free-text paths, dropdown labels, and checkbox states.
type RawFormFields struct {
	SourceFile    string
	DatabaseFile  string
	LogDirectory  string
	BackendLabel  string
	LevelLabel    string
	SelectedSheet string
	LogStdout     bool
	HasHeaders    bool
}

// NewFileFormModel normalizes raw field values into a typed snapshot.
// Paths are trimmed; dropdown labels that match no known entry fall
// back to the type defaults rather than being rejected.
func NewFileFormModel(raw RawFormFields) FileFormModel {
	backend, ok := BackendFromLabel(raw.BackendLabel)
	if !ok {
		backend = DefaultBackend
	}
	level, ok := LevelFromLabel(raw.LevelLabel)
	if !ok {
		level = DefaultLevel
	}
	return FileFormModel{
		SourceFile:    strings.TrimSpace(raw.SourceFile),
		DatabaseFile:  strings.TrimSpace(raw.DatabaseFile),
		LogDirectory:  strings.TrimSpace(raw.LogDirectory),
		Backend:       backend,
		Level:         level,
		SelectedSheet: raw.SelectedSheet,
		LogStdout:     raw.LogStdout,
		HasHeaders:    raw.HasHeaders,
	}
}

// SourceKind classifies the model's source path.
func (m FileFormModel) SourceKind() SourceKind {
	return ClassifySource(m.SourceFile)
}

// DatabaseKind classifies the model's database path.
func (m FileFormModel) DatabaseKind() DatabaseKind {
	return ClassifyDatabase(m.DatabaseFile)
}

// ValidateForSubmit checks the snapshot for completeness and returns
// every violated rule at once so the host can display all problems in
// a single pass. The message order is fixed (source → database →
// sheet) and callers rely on it. A nil result means the model is
// submittable. The log directory is deliberately not checked: leaving
// it empty just keeps file logging disabled.
func (m FileFormModel) ValidateForSubmit() []string {
	var errs []string
	if m.SourceFile == "" {
		errs = append(errs, msgSourceRequired)
	}
	if m.DatabaseFile == "" {
		errs = append(errs, msgDatabaseRequired)
	}
	if m.SourceKind() == SourceExcel && strings.TrimSpace(m.SelectedSheet) == "" {
		errs = append(errs, msgSheetRequired)
	}
	return errs
}

// String renders the snapshot as a multi-line block for log output.
func (m FileFormModel) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source file:   %s\n", m.SourceFile)
	fmt.Fprintf(&b, "Database:      %s\n", m.DatabaseFile)
	fmt.Fprintf(&b, "Log folder:    %s\n", m.LogDirectory)
	fmt.Fprintf(&b, "DB backend:    %s\n", m.Backend)
	fmt.Fprintf(&b, "Log level:     %s\n", m.Level)
	fmt.Fprintf(&b, "Log to stdout: %t\n", m.LogStdout)
	fmt.Fprintf(&b, "Has headers:   %t", m.HasHeaders)
	return b.String()
}

// SheetOptions returns the selectable sheet names for a source path.
// Non-spreadsheet sources have none. The fixed list is a stand-in
// until real workbook parsing is wired up.
func SheetOptions(sourcePath string) []string {
	if ClassifySource(strings.TrimSpace(sourcePath)) != SourceExcel {
		return nil
	}
	return []string{"Sheet1", "Sheet2", "Sheet3"}
}
