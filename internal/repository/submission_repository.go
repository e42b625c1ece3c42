package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/curafehealth/website-backend/internal/errors"
	"github.com/curafehealth/website-backend/internal/models"
	"gorm.io/gorm"
)

// SubmissionRepository defines the interface for contact-submission data access
type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	List(ctx context.Context) ([]models.Submission, error)
	GetByID(ctx context.Context, id uint) (*models.Submission, error)
	Count(ctx context.Context) (int64, error)
}

// submissionRepository implements SubmissionRepository using GORM
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new SubmissionRepository instance
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create appends a new submission row. The store assigns ID and
// CreatedAt; the insert is atomic per call.
func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	result := r.db.WithContext(ctx).Create(submission)
	if result.Error != nil {
		return fmt.Errorf("failed to create submission: %w: %w", apperrors.ErrStorage, result.Error)
	}
	return nil
}

// List retrieves all submissions, newest first. The id tiebreak keeps
// the order deterministic when rows share a created_at second.
func (r *submissionRepository) List(ctx context.Context) ([]models.Submission, error) {
	var submissions []models.Submission
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&submissions)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list submissions: %w: %w", apperrors.ErrStorage, result.Error)
	}
	return submissions, nil
}

// GetByID retrieves a submission by its ID
func (r *submissionRepository) GetByID(ctx context.Context, id uint) (*models.Submission, error) {
	var submission models.Submission
	result := r.db.WithContext(ctx).First(&submission, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get submission by ID: %w", result.Error)
	}
	return &submission, nil
}

// Count counts all submissions
func (r *submissionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Submission{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", result.Error)
	}
	return count, nil
}
