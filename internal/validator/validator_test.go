package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name    string
		argName string
		email   string
		message string
		wantErr error
	}{
		{"all required fields present", "Jane Doe", "jane@x.com", "Hello", nil},
		{"missing name", "", "jane@x.com", "Hello", ErrMissingRequiredFields},
		{"missing email", "Jane Doe", "", "Hello", ErrMissingRequiredFields},
		{"missing message", "Jane Doe", "jane@x.com", "", ErrMissingRequiredFields},
		{"all missing", "", "", "", ErrMissingRequiredFields},
		{"email format not enforced", "Jane Doe", "not-an-address", "Hello", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubmission(tt.argName, tt.email, tt.message)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
