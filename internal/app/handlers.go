package app

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2/dialog"

	"biorhythm-studio/internal/biorhythm"
	"biorhythm-studio/internal/formmodel"
)

// handleConvert snapshots the file form, validates it, and on success
// applies the logging choices the form carries before handing off.
// Validation failures are shown all at once and logged individually;
// nothing is fatal, the user just fixes the form and retries.
func (a *Application) handleConvert() {
	model := a.fileForm.Model()

	if errs := model.ValidateForSubmit(); errs != nil {
		a.log.Warn("FileForm", "cannot submit form due to validation errors", map[string]interface{}{
			"error_count": len(errs),
		})
		for _, msg := range errs {
			a.log.Warn("FileForm", msg, nil)
		}
		dialog.ShowError(errors.New(strings.Join(errs, "\n")), a.window)
		return
	}

	// Apply the level first so everything below logs at the chosen
	// verbosity.
	if err := a.log.SetLevelLabel(model.Level.Label()); err != nil {
		a.log.Warn("FileForm", "could not apply log level", map[string]interface{}{
			"level": model.Level.Label(),
			"error": err.Error(),
		})
	}

	// An empty log directory keeps file logging disabled.
	if model.LogDirectory != "" {
		path, err := a.log.EnableFile(model.LogDirectory)
		if err != nil {
			a.log.Warn("FileForm", "could not open log file", map[string]interface{}{
				"directory": model.LogDirectory,
				"error":     err.Error(),
			})
		} else {
			a.log.Info("FileForm", "file logging enabled", map[string]interface{}{
				"path": path,
			})
		}
	}

	a.log.SetStdout(model.LogStdout)

	a.log.Info("FileForm", "form validated", map[string]interface{}{
		"source":      model.SourceFile,
		"source_kind": model.SourceKind().String(),
		"database":    model.DatabaseFile,
		"db_kind":     model.DatabaseKind().String(),
		"backend":     model.Backend.Label(),
		"sheet":       model.SelectedSheet,
		"has_headers": model.HasHeaders,
	})
	// Next step: hand the validated model to the conversion pipeline.
}

// handleLoadSheets refreshes the sheet dropdown from the current
// source path. Non-spreadsheet sources clear it.
func (a *Application) handleLoadSheets() {
	model := a.fileForm.Model()
	sheets := formmodel.SheetOptions(model.SourceFile)
	a.fileForm.SetSheetOptions(sheets)

	a.log.Info("FileForm", "loaded sheet options", map[string]interface{}{
		"source":      model.SourceFile,
		"sheet_count": len(sheets),
	})
}

// handleRegister receives an already-validated registration snapshot.
func (a *Application) handleRegister(model formmodel.RegistrationModel) {
	a.log.Info("Registration", "account created", map[string]interface{}{
		"first_name": model.FirstName,
		"last_name":  model.LastName,
		"email":      model.Email,
	})
	dialog.ShowInformation("Account Created",
		"Welcome, "+model.FirstName+" "+model.LastName+"!", a.window)
}

// handleBirthdate stores a validated birthdate and redraws the chart.
func (a *Application) handleBirthdate(date biorhythm.Date) {
	a.birthdate = date
	a.log.Info("Chart", "birthdate updated", map[string]interface{}{
		"birthdate": date.String(),
	})
	a.refreshChart()
}
