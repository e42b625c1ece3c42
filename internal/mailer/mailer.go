// Package mailer provides best-effort outbound email dispatch for
// contact submissions, transport-agnostic behind the Sender interface.
package mailer

import (
	"context"
	"errors"
	"fmt"
)

// Message represents an email message to be sent.
type Message struct {
	To       string // recipient email address
	From     string // sender email address
	FromName string // optional display name for the sender
	Subject  string // email subject
	TextBody string // plain-text body
	HTMLBody string // optional HTML alternative body
}

// Sender is the interface that all mail transports implement. Send
// dispatches the message once; there is no retry. Implementations
// honor ctx cancellation and deadlines.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// ErrNotConfigured is returned by the Disabled sender.
var ErrNotConfigured = errors.New("mail transport is not configured")

// Disabled is the Sender used when no mail configuration is present.
// Every Send fails, which degrades the contact endpoint to its
// stored-without-mail warning path without blocking persistence.
type Disabled struct{}

// Send implements Sender.
func (Disabled) Send(ctx context.Context, msg *Message) error {
	return &TransportError{Provider: "disabled", Err: ErrNotConfigured}
}

// TransportError indicates mail dispatch failed for any reason:
// network, auth, timeout, or provider rejection.
type TransportError struct {
	Provider string
	Err      error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("mail dispatch failed (%s): %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError carries the status code and body of a rejected HTTP mail
// provider call, so the serverless relay can propagate both upstream.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("mail provider returned status %d: %s", e.StatusCode, e.Body)
}
