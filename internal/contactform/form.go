// Package contactform implements the client side of the contact
// pipeline: local validation, submission to the contact endpoint when
// one is configured, and the mailto fallback that hands composition to
// the user's mail client when it is not or when the call fails.
package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/curafehealth/website-backend/internal/validator"
)

// State names one step of the submission flow.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateMailto     State = "mailto-fallback"
	StateSuccess    State = "success"
	StateWarning    State = "warning"
	StateError      State = "error"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not resolved. One user action, one outbound attempt.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Fields holds the contact-form input.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Result is the outcome of one submit action.
type Result struct {
	State     State
	ID        uint   // persisted row identifier, set on success and warning
	Warning   string // warning text from a 202 response
	MailtoURI string // set when the flow degraded to the mailto fallback
}

// Submitter drives the submission flow. With an empty endpoint every
// submit goes straight to the mailto fallback.
type Submitter struct {
	endpoint  string
	recipient string
	client    *http.Client

	mu       sync.Mutex
	inFlight bool
}

// NewSubmitter creates a Submitter posting to endpoint, with recipient
// as the mailto fallback address.
func NewSubmitter(endpoint, recipient string) *Submitter {
	return &Submitter{
		endpoint:  endpoint,
		recipient: recipient,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewSubmitterWithClient creates a Submitter with a custom HTTP
// client, used by tests.
func NewSubmitterWithClient(endpoint, recipient string, client *http.Client) *Submitter {
	s := NewSubmitter(endpoint, recipient)
	s.client = client
	return s
}

type submissionResponse struct {
	OK      bool   `json:"ok"`
	Warning string `json:"warning"`
	ID      uint   `json:"id"`
}

// Submit runs one user-initiated submit action. Validation failures
// return an error without any outbound attempt. The mailto fallback
// never fails the flow: the result carries the URI and the caller
// navigates to it. At most one outbound attempt happens per call, and
// concurrent calls are rejected with ErrSubmitInFlight.
func (s *Submitter) Submit(ctx context.Context, f Fields) (*Result, error) {
	f = trimFields(f)

	if err := validator.ValidateSubmission(f.Name, f.Email, f.Message); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if s.endpoint == "" {
		return s.fallback(f), nil
	}

	result, err := s.post(ctx, f)
	if err != nil {
		// Network failure degrades to the mail client, never to a
		// dropped submission.
		return s.fallback(f), nil
	}
	return result, nil
}

func (s *Submitter) post(ctx context.Context, f Fields) (*Result, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		var body submissionResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, err
		}
		if resp.StatusCode == http.StatusAccepted {
			return &Result{State: StateWarning, ID: body.ID, Warning: body.Warning}, nil
		}
		return &Result{State: StateSuccess, ID: body.ID}, nil
	default:
		// Drain so the connection can be reused, then degrade.
		_, _ = io.Copy(io.Discard, resp.Body)
		return s.fallback(f), nil
	}
}

func (s *Submitter) fallback(f Fields) *Result {
	return &Result{
		State:     StateMailto,
		MailtoURI: Mailto(s.recipient, f),
	}
}

func trimFields(f Fields) Fields {
	return Fields{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Company: strings.TrimSpace(f.Company),
		Phone:   strings.TrimSpace(f.Phone),
		Message: strings.TrimSpace(f.Message),
	}
}
