package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultSendGridURL is the SendGrid v3 mail send endpoint.
const DefaultSendGridURL = "https://api.sendgrid.com/v3/mail/send"

// SendGridSender delivers messages through the SendGrid HTTP API using
// a bearer credential.
type SendGridSender struct {
	apiKey string
	url    string
	client *http.Client
}

// NewSendGridSender creates a new SendGridSender
func NewSendGridSender(apiKey string) *SendGridSender {
	return &SendGridSender{
		apiKey: apiKey,
		url:    DefaultSendGridURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewSendGridSenderWithURL creates a SendGridSender against a custom
// endpoint, used by tests.
func NewSendGridSenderWithURL(apiKey, url string) *SendGridSender {
	s := NewSendGridSender(apiKey)
	s.url = url
	return s
}

// sendGridPayload mirrors the v3 mail send request body.
type sendGridPayload struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Send posts the message to the provider. A non-2xx response surfaces
// as a TransportError wrapping an APIError that carries the upstream
// status code and response body.
func (s *SendGridSender) Send(ctx context.Context, msg *Message) error {
	payload := sendGridPayload{
		Personalizations: []sendGridPersonalization{
			{To: []sendGridAddress{{Email: msg.To}}},
		},
		From:    sendGridAddress{Email: msg.From, Name: msg.FromName},
		Subject: msg.Subject,
		Content: []sendGridContent{
			{Type: "text/plain", Value: msg.TextBody},
		},
	}
	if msg.HTMLBody != "" {
		payload.Content = append(payload.Content, sendGridContent{
			Type: "text/html", Value: msg.HTMLBody,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return &TransportError{Provider: "sendgrid", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Provider: "sendgrid", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return &TransportError{Provider: "sendgrid", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return &TransportError{
			Provider: "sendgrid",
			Err:      &APIError{StatusCode: resp.StatusCode, Body: string(respBody)},
		}
	}

	return nil
}
