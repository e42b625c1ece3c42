package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/curafehealth/website-backend/internal/mailer"
	"github.com/curafehealth/website-backend/internal/models"
)

// MockSubmissionRepository implements repository.SubmissionRepository
type MockSubmissionRepository struct {
	mock.Mock
}

// Create appends a new submission
func (m *MockSubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

// List retrieves all submissions, newest first
func (m *MockSubmissionRepository) List(ctx context.Context) ([]models.Submission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Submission), args.Error(1)
}

// GetByID retrieves a submission by its ID
func (m *MockSubmissionRepository) GetByID(ctx context.Context, id uint) (*models.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Submission), args.Error(1)
}

// Count counts all submissions
func (m *MockSubmissionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSender implements mailer.Sender
type MockSender struct {
	mock.Mock
}

// Send dispatches a message
func (m *MockSender) Send(ctx context.Context, msg *mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
