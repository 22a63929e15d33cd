// Package validators implements field-level request validation for the
// book catalog API.
//
// Failed rules are collected, not short-circuited: a request missing several
// fields reports every failure in a single response, one entry per rule, in
// rule declaration order.
package validators

import (
	"unicode/utf8"

	"github.com/MKhiriev/go-book-catalog/models"
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator accumulates FieldError entries in the order the rules were
// declared. A Validator with no recorded errors is considered valid.
type Validator struct {
	errors []FieldError
}

// New creates a fresh, empty Validator.
func New() *Validator {
	return &Validator{}
}

// Check records a FieldError for field with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(input.Title != "", "title", "Title is required")
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.errors = append(v.errors, FieldError{Field: field, Message: message})
	}
}

// Valid returns true if no rule has failed.
func (v *Validator) Valid() bool {
	return len(v.errors) == 0
}

// Errors returns the recorded failures in declaration order.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// ValidationErrorsResponse is the 400 response envelope carrying every
// failed rule of a request.
type ValidationErrorsResponse struct {
	Errors []FieldError `json:"errors"`
}

// ValidateRegistration applies the registration rules to creds:
// username required; password required and at least 6 characters.
func ValidateRegistration(creds models.Credentials) *Validator {
	v := New()
	v.Check(creds.Username != "", "username", "Username is required")
	v.Check(creds.Password != "", "password", "Password is required")
	if creds.Password != "" {
		// characters, not bytes: a 5-rune multi-byte password is still too short
		v.Check(utf8.RuneCountInString(creds.Password) >= 6, "password", "Password must be at least 6 characters long")
	}
	return v
}

// ValidateLogin applies the login rules to creds: both fields required.
// The minimum-length rule is a registration-only constraint.
func ValidateLogin(creds models.Credentials) *Validator {
	v := New()
	v.Check(creds.Username != "", "username", "Username is required")
	v.Check(creds.Password != "", "password", "Password is required")
	return v
}

// ValidateBookInput applies the book rules to input: title, author, and
// genre non-empty; year present. Year being numeric is guaranteed by the
// typed contract: a non-numeric year fails JSON decoding before the
// validator runs.
func ValidateBookInput(input models.BookInput) *Validator {
	v := New()
	v.Check(input.Title != "", "title", "Title is required")
	v.Check(input.Author != "", "author", "Author is required")
	v.Check(input.Genre != "", "genre", "Genre is required")
	v.Check(input.Year != 0, "year", "Year is required")
	return v
}
