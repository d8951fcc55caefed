package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"biorhythm-studio/internal/formmodel"
)

// FileForm is the file-selection form panel: source/database/log-folder
// pickers, backend and log level dropdowns, the sheet selector that only
// matters for spreadsheet sources, and the two action buttons.
//
// The panel owns raw widget state only. Typed snapshots come from
// Model(); all validation lives in the formmodel package.
type FileForm struct {
	window fyne.Window

	sourceEntry   *widget.Entry
	databaseEntry *widget.Entry
	logDirEntry   *widget.Entry
	backendSelect *widget.Select
	levelSelect   *widget.Select
	sheetsSelect  *widget.Select
	stdoutCheck   *widget.Check
	headersCheck  *widget.Check

	convertButton *widget.Button
	sheetsButton  *widget.Button

	container *fyne.Container

	onConvert    func()
	onLoadSheets func()
}

// NewFileForm builds the form panel. The callbacks fire on the Convert
// Files and Load Sheets buttons respectively.
func NewFileForm(window fyne.Window, onConvert, onLoadSheets func()) *FileForm {
	form := &FileForm{
		window:       window,
		onConvert:    onConvert,
		onLoadSheets: onLoadSheets,
	}
	form.setupWidgets()
	return form
}

func (f *FileForm) setupWidgets() {
	f.sourceEntry = widget.NewEntry()
	f.sourceEntry.SetPlaceHolder("Source file path...")
	f.databaseEntry = widget.NewEntry()
	f.databaseEntry.SetPlaceHolder("Database file path...")
	f.logDirEntry = widget.NewEntry()
	f.logDirEntry.SetPlaceHolder("Log folder path...")

	f.backendSelect = widget.NewSelect(formmodel.BackendLabels(), nil)
	f.backendSelect.SetSelected(formmodel.DefaultBackend.Label())

	f.levelSelect = widget.NewSelect(formmodel.LevelLabels(), nil)
	f.levelSelect.SetSelected(formmodel.DefaultLevel.Label())

	f.sheetsSelect = widget.NewSelect(nil, nil)
	f.sheetsSelect.PlaceHolder = "(no sheets loaded)"

	f.stdoutCheck = widget.NewCheck("Log to stdout", nil)
	f.headersCheck = widget.NewCheck("Input Has Headers", nil)
	f.headersCheck.SetChecked(true)

	sourceButton := widget.NewButton("Select File", func() {
		f.pickFile(f.sourceEntry, sourceExtensions())
	})
	databaseButton := widget.NewButton("Select Database", func() {
		f.pickFile(f.databaseEntry, dotted(formmodel.SQLiteExtensions))
	})
	logDirButton := widget.NewButton("Select Log Folder", func() {
		f.pickFolder(f.logDirEntry)
	})

	f.convertButton = widget.NewButton("Convert Files", func() {
		if f.onConvert != nil {
			f.onConvert()
		}
	})
	f.convertButton.Importance = widget.HighImportance

	f.sheetsButton = widget.NewButton("Load Sheets", func() {
		if f.onLoadSheets != nil {
			f.onLoadSheets()
		}
	})

	rows := container.NewVBox(
		labeledRow("Source File:", f.sourceEntry, sourceButton),
		labeledRow("Database:", f.databaseEntry, databaseButton),
		labeledRow("Log Folder:", f.logDirEntry, logDirButton),
		labeledRow("Log Level:", f.levelSelect, nil),
		labeledRow("DB Backend:", f.backendSelect, nil),
		labeledRow("Sheets:", f.sheetsSelect, nil),
		container.NewPadded(container.NewVBox(f.stdoutCheck, f.headersCheck)),
		container.NewHBox(widget.NewSeparator()),
		container.NewCenter(container.NewHBox(f.convertButton, f.sheetsButton)),
	)

	f.container = container.NewPadded(rows)
}

// Container returns the form's root container.
func (f *FileForm) Container() *fyne.Container {
	return f.container
}

// Model collects the current field values into a normalized snapshot.
func (f *FileForm) Model() formmodel.FileFormModel {
	return formmodel.NewFileFormModel(formmodel.RawFormFields{
		SourceFile:    f.sourceEntry.Text,
		DatabaseFile:  f.databaseEntry.Text,
		LogDirectory:  f.logDirEntry.Text,
		BackendLabel:  f.backendSelect.Selected,
		LevelLabel:    f.levelSelect.Selected,
		SelectedSheet: f.sheetsSelect.Selected,
		LogStdout:     f.stdoutCheck.Checked,
		HasHeaders:    f.headersCheck.Checked,
	})
}

// SetSheetOptions replaces the sheet dropdown options, selecting the
// first entry when any exist.
func (f *FileForm) SetSheetOptions(options []string) {
	f.sheetsSelect.Options = options
	if len(options) > 0 {
		f.sheetsSelect.SetSelected(options[0])
	} else {
		f.sheetsSelect.ClearSelected()
	}
	f.sheetsSelect.Refresh()
}

// SetLevelLabel preselects the log level dropdown, used to apply
// startup preferences.
func (f *FileForm) SetLevelLabel(label string) {
	if _, ok := formmodel.LevelFromLabel(label); ok {
		f.levelSelect.SetSelected(label)
	}
}

// SetStdout preselects the stdout checkbox.
func (f *FileForm) SetStdout(enabled bool) {
	f.stdoutCheck.SetChecked(enabled)
}

func (f *FileForm) pickFile(target *widget.Entry, extensions []string) {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, f.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		target.SetText(path)
	}, f.window)
	if len(extensions) > 0 {
		picker.SetFilter(storage.NewExtensionFileFilter(extensions))
	}
	picker.Show()
}

func (f *FileForm) pickFolder(target *widget.Entry) {
	dialog.ShowFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, f.window)
			return
		}
		if list == nil {
			return
		}
		target.SetText(list.Path())
	}, f.window)
}

// labeledRow lays out "label | stretched field | optional button",
// keeping every row's shape consistent.
func labeledRow(label string, field fyne.CanvasObject, button *widget.Button) *fyne.Container {
	if button != nil {
		return container.NewBorder(nil, nil, widget.NewLabel(label), button, field)
	}
	return container.NewBorder(nil, nil, widget.NewLabel(label), nil, field)
}

// sourceExtensions is the source picker filter: the spreadsheet and
// CSV lists the classifier recognizes, dotted for the dialog API.
func sourceExtensions() []string {
	exts := dotted(formmodel.ExcelExtensions)
	return append(exts, dotted(formmodel.CSVExtensions)...)
}

func dotted(extensions []string) []string {
	out := make([]string, len(extensions))
	for i, ext := range extensions {
		out[i] = "." + ext
	}
	return out
}
