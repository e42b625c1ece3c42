// Package validator provides the required-field checks shared by the
// contact endpoint and the client submission flow.
package validator

import (
	"errors"
)

// Validation errors
var (
	ErrMissingRequiredFields = errors.New("missing required fields")
)

// ValidateSubmission checks the required contact-form fields. Name,
// email and message must be non-empty; company and phone are optional.
// Email format is deliberately not enforced beyond non-emptiness to
// stay compatible with existing callers.
func ValidateSubmission(name, email, message string) error {
	if name == "" || email == "" || message == "" {
		return ErrMissingRequiredFields
	}
	return nil
}
