package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/curafehealth/website-backend/internal/api/response"
	apperrors "github.com/curafehealth/website-backend/internal/errors"
	"github.com/curafehealth/website-backend/internal/mailer"
	"github.com/curafehealth/website-backend/internal/models"
	"github.com/curafehealth/website-backend/internal/repository"
	"github.com/curafehealth/website-backend/internal/validator"
)

// ContactHandler handles contact-form HTTP requests
type ContactHandler struct {
	repo        repository.SubmissionRepository
	sender      mailer.Sender
	toEmail     string
	fromEmail   string
	fromName    string
	mailTimeout time.Duration
	logger      *slog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(repo repository.SubmissionRepository, sender mailer.Sender,
	toEmail, fromEmail, fromName string, mailTimeout time.Duration, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{
		repo:        repo,
		sender:      sender,
		toEmail:     toEmail,
		fromEmail:   fromEmail,
		fromName:    fromName,
		mailTimeout: mailTimeout,
		logger:      logger,
	}
}

// ContactRequest is the submission payload
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Create handles POST /api/contact. A valid request appends exactly
// one row; the insert must succeed before any mail is attempted. Mail
// dispatch is best-effort: one bounded attempt, and a failure degrades
// the response to 202 with a warning instead of failing the caller.
func (h *ContactHandler) Create(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.MissingFields(c)
	}

	if err := validator.ValidateSubmission(req.Name, req.Email, req.Message); err != nil {
		return response.MissingFields(c)
	}

	submission := &models.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.repo.Create(c.Request().Context(), submission); err != nil {
		h.logger.Error("failed to store submission",
			slog.String("code", apperrors.GetErrorCode(err)),
			slog.Any("error", err))
		return response.ServerError(c)
	}

	msg := mailer.Compose(submission, h.toEmail, h.fromEmail, h.fromName)

	sendCtx, cancel := context.WithTimeout(c.Request().Context(), h.mailTimeout)
	defer cancel()

	if err := h.sender.Send(sendCtx, msg); err != nil {
		h.logger.Warn("submission stored but mail dispatch failed",
			slog.Uint64("submission_id", uint64(submission.ID)),
			slog.String("code", apperrors.GetErrorCode(apperrors.ErrTransport)),
			slog.Any("error", err))
		return response.StoredWithoutMail(c, submission.ID)
	}

	return response.Stored(c, submission.ID)
}

// List handles GET /api/submissions, returning every row newest first.
func (h *ContactHandler) List(c echo.Context) error {
	submissions, err := h.repo.List(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list submissions",
			slog.String("code", apperrors.GetErrorCode(err)),
			slog.Any("error", err))
		return response.ServerError(c)
	}

	return response.Submissions(c, submissions)
}
