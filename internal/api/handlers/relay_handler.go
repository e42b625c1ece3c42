package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/curafehealth/website-backend/internal/api/response"
	"github.com/curafehealth/website-backend/internal/mailer"
	"github.com/curafehealth/website-backend/internal/models"
	"github.com/curafehealth/website-backend/internal/validator"
)

// RelayHandler implements the mail-only deployment of the contact
// form. There is no submission store behind it, so a mail failure is
// the only possible outcome and is reported directly to the caller.
type RelayHandler struct {
	sender    mailer.Sender // nil means the provider credential is absent
	toEmail   string
	fromEmail string
	fromName  string
	logger    *slog.Logger
}

// NewRelayHandler creates a new RelayHandler. Pass a nil sender when
// the SendGrid API key is not configured.
func NewRelayHandler(sender mailer.Sender, toEmail, fromEmail, fromName string, logger *slog.Logger) *RelayHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RelayHandler{
		sender:    sender,
		toEmail:   toEmail,
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
	}
}

// Send handles POST /. Validation failures return 400, a missing
// credential 500, and a provider rejection propagates the upstream
// status code and body.
func (h *RelayHandler) Send(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.MissingFields(c)
	}

	if err := validator.ValidateSubmission(req.Name, req.Email, req.Message); err != nil {
		return response.MissingFields(c)
	}

	if h.sender == nil {
		return response.ErrorWithStatus(c, http.StatusInternalServerError,
			"SendGrid API key is not configured")
	}

	msg := mailer.Compose(&models.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Phone:   req.Phone,
		Message: req.Message,
	}, h.toEmail, h.fromEmail, h.fromName)

	if err := h.sender.Send(c.Request().Context(), msg); err != nil {
		h.logger.Error("mail relay dispatch failed", slog.Any("error", err))

		var apiErr *mailer.APIError
		if errors.As(err, &apiErr) {
			return response.ErrorWithStatus(c, apiErr.StatusCode, apiErr.Body)
		}
		return response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
	}

	return response.Sent(c)
}
