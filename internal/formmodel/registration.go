package formmodel

import (
	"strings"
)

// Registration validation messages, in their fixed emission order.
const (
	msgFirstNameRequired = "First name is required."
	msgLastNameRequired  = "Last name is required."
	msgEmailRequired     = "Email is required."
	msgEmailInvalid      = "Email must be a valid address."
	msgPasswordTooShort  = "Password must be at least 8 characters."
	msgPasswordMismatch  = "Passwords do not match."
	msgTermsNotAccepted  = "You must accept the Terms of Service."
)

// RegistrationModel is a snapshot of the registration demo form,
// validated with the same accumulate-all strategy as FileFormModel.
type RegistrationModel struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	TermsAccepted   bool
}

// NewRegistrationModel trims the name and email fields. Passwords are
// kept verbatim: leading or trailing spaces are part of the secret.
func NewRegistrationModel(firstName, lastName, email, password, confirm string, terms bool) RegistrationModel {
	return RegistrationModel{
		FirstName:       strings.TrimSpace(firstName),
		LastName:        strings.TrimSpace(lastName),
		Email:           strings.TrimSpace(email),
		Password:        password,
		ConfirmPassword: confirm,
		TermsAccepted:   terms,
	}
}

// ValidateForSubmit accumulates every violated rule in declaration
// order. A nil result means the registration is submittable.
func (m RegistrationModel) ValidateForSubmit() []string {
	var errs []string
	if m.FirstName == "" {
		errs = append(errs, msgFirstNameRequired)
	}
	if m.LastName == "" {
		errs = append(errs, msgLastNameRequired)
	}
	switch {
	case m.Email == "":
		errs = append(errs, msgEmailRequired)
	case !plausibleEmail(m.Email):
		errs = append(errs, msgEmailInvalid)
	}
	if len(m.Password) < 8 {
		errs = append(errs, msgPasswordTooShort)
	}
	if m.Password != m.ConfirmPassword {
		errs = append(errs, msgPasswordMismatch)
	}
	if !m.TermsAccepted {
		errs = append(errs, msgTermsNotAccepted)
	}
	return errs
}

// plausibleEmail applies the minimal local@domain.tld shape check a
// client-side form needs; real verification happens server-side.
func plausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}
