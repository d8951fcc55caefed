package gui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"biorhythm-studio/internal/biorhythm"
)

// ShowDateDialog opens the birthdate entry dialog. OK parses and
// validates the three fields; on failure the dialog stays open and
// shows the single first-failure message the engine reports. onSubmit
// receives the validated date; onCancel fires if the user dismisses
// the dialog instead.
func ShowDateDialog(window fyne.Window, initial biorhythm.Date, onSubmit func(biorhythm.Date), onCancel func()) {
	yearEntry := widget.NewEntry()
	yearEntry.SetText(strconv.Itoa(initial.Year))
	monthEntry := widget.NewEntry()
	monthEntry.SetText(strconv.Itoa(initial.Month))
	dayEntry := widget.NewEntry()
	dayEntry.SetText(strconv.Itoa(initial.Day))

	errorLabel := widget.NewLabel("")
	errorLabel.Importance = widget.DangerImportance
	errorLabel.Hide()

	fields := container.NewGridWithColumns(3,
		container.NewVBox(widget.NewLabel("Year"), yearEntry),
		container.NewVBox(widget.NewLabel("Month"), monthEntry),
		container.NewVBox(widget.NewLabel("Day"), dayEntry),
	)

	var d dialog.Dialog

	okButton := widget.NewButton("OK", func() {
		date, err := biorhythm.ParseDate(yearEntry.Text, monthEntry.Text, dayEntry.Text)
		if err != nil {
			errorLabel.SetText(err.Error())
			errorLabel.Show()
			return
		}
		d.Hide()
		onSubmit(date)
	})
	okButton.Importance = widget.HighImportance

	cancelButton := widget.NewButton("Cancel", func() {
		d.Hide()
		if onCancel != nil {
			onCancel()
		}
	})

	content := container.NewVBox(
		fields,
		errorLabel,
		container.NewCenter(container.NewHBox(cancelButton, okButton)),
	)

	d = dialog.NewCustomWithoutButtons("Enter Your Birthdate", content, window)
	d.Show()
}
