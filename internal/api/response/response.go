// Package response renders the site's contact API wire format. The
// shapes are frozen: the static frontend and existing integrations
// parse them as-is.
package response

import (
	"net/http"

	"github.com/curafehealth/website-backend/internal/models"
	"github.com/labstack/echo/v4"
)

// WarningStoredWithoutMail is the warning returned when a submission
// was persisted but the outbound email could not be sent.
const WarningStoredWithoutMail = "stored but email failed"

// SubmissionResult is the response body for a stored submission.
type SubmissionResult struct {
	OK      bool   `json:"ok"`
	Warning string `json:"warning,omitempty"`
	ID      uint   `json:"id"`
}

// SubmissionList is the response body for the submissions listing.
type SubmissionList struct {
	OK          bool                `json:"ok"`
	Submissions []models.Submission `json:"submissions"`
}

// SentResult is the response body for the mail-only relay on success.
type SentResult struct {
	OK bool `json:"ok"`
}

// ErrorBody is the response body for all error outcomes.
type ErrorBody struct {
	Error string `json:"error"`
}

// Stored returns 200 with the persisted row identifier.
func Stored(c echo.Context, id uint) error {
	return c.JSON(http.StatusOK, SubmissionResult{OK: true, ID: id})
}

// StoredWithoutMail returns 202: the row is durable but mail dispatch
// failed. The caller still gets the identifier.
func StoredWithoutMail(c echo.Context, id uint) error {
	return c.JSON(http.StatusAccepted, SubmissionResult{
		OK:      true,
		Warning: WarningStoredWithoutMail,
		ID:      id,
	})
}

// Submissions returns the full listing, newest first.
func Submissions(c echo.Context, submissions []models.Submission) error {
	if submissions == nil {
		submissions = []models.Submission{}
	}
	return c.JSON(http.StatusOK, SubmissionList{OK: true, Submissions: submissions})
}

// Sent returns 200 {ok:true} for the mail-only relay.
func Sent(c echo.Context) error {
	return c.JSON(http.StatusOK, SentResult{OK: true})
}

// MissingFields returns the 400 validation failure.
func MissingFields(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorBody{Error: "Missing required fields"})
}

// ServerError returns the opaque 500 failure.
func ServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Server error"})
}

// ErrorWithStatus returns an arbitrary status with an error body, used
// by the relay to propagate upstream provider failures.
func ErrorWithStatus(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorBody{Error: message})
}
