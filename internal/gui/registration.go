package gui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"biorhythm-studio/internal/formmodel"
)

// RegistrationForm is the account-creation demo panel. Like the file
// form it keeps raw widget state only and defers all validation to the
// formmodel snapshot.
type RegistrationForm struct {
	firstNameEntry *widget.Entry
	lastNameEntry  *widget.Entry
	emailEntry     *widget.Entry
	passwordEntry  *widget.Entry
	confirmEntry   *widget.Entry
	termsCheck     *widget.Check
	errorLabel     *widget.Label

	container *fyne.Container

	onRegister func(formmodel.RegistrationModel)
}

// NewRegistrationForm builds the panel. onRegister fires only for a
// snapshot that passed validation.
func NewRegistrationForm(onRegister func(formmodel.RegistrationModel)) *RegistrationForm {
	form := &RegistrationForm{onRegister: onRegister}
	form.setupWidgets()
	return form
}

func (r *RegistrationForm) setupWidgets() {
	r.firstNameEntry = widget.NewEntry()
	r.firstNameEntry.SetPlaceHolder("First name...")
	r.lastNameEntry = widget.NewEntry()
	r.lastNameEntry.SetPlaceHolder("Last name...")
	r.emailEntry = widget.NewEntry()
	r.emailEntry.SetPlaceHolder("Valid email...")
	r.passwordEntry = widget.NewPasswordEntry()
	r.passwordEntry.SetPlaceHolder("Password...")
	r.confirmEntry = widget.NewPasswordEntry()
	r.confirmEntry.SetPlaceHolder("Confirm password...")
	r.termsCheck = widget.NewCheck("I agree to the Terms of Service", nil)

	r.errorLabel = widget.NewLabel("")
	r.errorLabel.Importance = widget.DangerImportance
	r.errorLabel.Wrapping = fyne.TextWrapWord
	r.errorLabel.Hide()

	registerButton := widget.NewButton("Create Account", r.submit)
	registerButton.Importance = widget.HighImportance

	r.container = container.NewPadded(container.NewVBox(
		widget.NewLabel("Personal Information"),
		container.NewGridWithColumns(2, r.firstNameEntry, r.lastNameEntry),
		labeledRow("Email:", r.emailEntry, nil),
		labeledRow("Password:", r.passwordEntry, nil),
		labeledRow("Confirm:", r.confirmEntry, nil),
		widget.NewLabel("Password must be at least 8 characters"),
		r.termsCheck,
		r.errorLabel,
		registerButton,
	))
}

// Container returns the form's root container.
func (r *RegistrationForm) Container() *fyne.Container {
	return r.container
}

// Model collects the current field values into a snapshot.
func (r *RegistrationForm) Model() formmodel.RegistrationModel {
	return formmodel.NewRegistrationModel(
		r.firstNameEntry.Text,
		r.lastNameEntry.Text,
		r.emailEntry.Text,
		r.passwordEntry.Text,
		r.confirmEntry.Text,
		r.termsCheck.Checked,
	)
}

func (r *RegistrationForm) submit() {
	model := r.Model()
	if errs := model.ValidateForSubmit(); errs != nil {
		r.errorLabel.SetText(strings.Join(errs, "\n"))
		r.errorLabel.Show()
		return
	}
	r.errorLabel.Hide()
	if r.onRegister != nil {
		r.onRegister(model)
	}
}
