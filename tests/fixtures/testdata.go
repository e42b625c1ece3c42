package fixtures

import (
	"time"

	"github.com/curafehealth/website-backend/internal/models"
)

// SubmissionBuilder creates test Submission instances with fluent API
type SubmissionBuilder struct {
	submission models.Submission
}

// NewSubmissionBuilder creates a new SubmissionBuilder with sensible defaults
func NewSubmissionBuilder() *SubmissionBuilder {
	return &SubmissionBuilder{
		submission: models.Submission{
			ID:        1,
			Name:      "Jane Doe",
			Email:     "jane@x.com",
			Company:   "",
			Phone:     "",
			Message:   "Hello",
			CreatedAt: time.Now(),
		},
	}
}

// WithID sets the submission ID
func (b *SubmissionBuilder) WithID(id uint) *SubmissionBuilder {
	b.submission.ID = id
	return b
}

// WithName sets the sender name
func (b *SubmissionBuilder) WithName(name string) *SubmissionBuilder {
	b.submission.Name = name
	return b
}

// WithEmail sets the sender email
func (b *SubmissionBuilder) WithEmail(email string) *SubmissionBuilder {
	b.submission.Email = email
	return b
}

// WithCompany sets the optional company field
func (b *SubmissionBuilder) WithCompany(company string) *SubmissionBuilder {
	b.submission.Company = company
	return b
}

// WithPhone sets the optional phone field
func (b *SubmissionBuilder) WithPhone(phone string) *SubmissionBuilder {
	b.submission.Phone = phone
	return b
}

// WithMessage sets the message body
func (b *SubmissionBuilder) WithMessage(message string) *SubmissionBuilder {
	b.submission.Message = message
	return b
}

// WithCreatedAt sets the created timestamp
func (b *SubmissionBuilder) WithCreatedAt(t time.Time) *SubmissionBuilder {
	b.submission.CreatedAt = t
	return b
}

// Build returns the constructed Submission
func (b *SubmissionBuilder) Build() *models.Submission {
	return &b.submission
}

// ValidContactPayload returns a minimal valid contact request body.
func ValidContactPayload() string {
	return `{"name":"Jane Doe","email":"jane@x.com","message":"Hello"}`
}

// FullContactPayload returns a contact request body with all fields set.
func FullContactPayload() string {
	return `{"name":"Jane Doe","email":"jane@x.com","company":"Acme","phone":"+1 555 0100","message":"Hello from Acme"}`
}
