package mailer

import (
	"context"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the connection settings for the SMTP transport.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	SSL      bool
}

// SMTPSender delivers messages through a configured SMTP relay.
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates a new SMTPSender
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send dials the relay and delivers the message. The dial-and-send
// runs in its own goroutine so ctx cancellation and deadlines bound
// the attempt; a connection, auth or delivery failure surfaces as a
// TransportError.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	m := buildMessage(msg)
	d := s.newDialer()

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return &TransportError{Provider: "smtp", Err: err}
		}
		return nil
	case <-ctx.Done():
		return &TransportError{Provider: "smtp", Err: ctx.Err()}
	}
}

func (s *SMTPSender) newDialer() *gomail.Dialer {
	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	d.SSL = s.cfg.SSL
	return d
}

func buildMessage(msg *Message) *gomail.Message {
	m := gomail.NewMessage()

	if msg.FromName != "" {
		m.SetAddressHeader("From", msg.From, msg.FromName)
	} else {
		m.SetHeader("From", msg.From)
	}
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)

	m.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}

	return m
}
