package pages

import (
	"regexp"
	"strings"
)

// Form field keys
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Form is the contact form's data
type Form struct {
	Name    string
	Email   string
	Message string
}

// FieldErrors maps a field key to its message. Empty means valid.
type FieldErrors map[string]string

// Validate checks the form the same way on every submit.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = "Name is required"
	}
	switch email := strings.TrimSpace(f.Email); {
	case email == "":
		errs[FieldEmail] = "Email is required"
	case !emailPattern.MatchString(email):
		errs[FieldEmail] = "Email is invalid"
	}
	if strings.TrimSpace(f.Message) == "" {
		errs[FieldMessage] = "Message is required"
	}
	return errs
}
