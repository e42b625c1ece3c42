package mailer

import (
	"fmt"
	"strings"

	"github.com/curafehealth/website-backend/internal/models"
)

// SubjectFor returns the subject line for a contact submission.
func SubjectFor(name string) string {
	return fmt.Sprintf("Website contact from %s", name)
}

// BodyLines returns the plain-text body lines for a submission in the
// fixed order the site has always used: Name, Email, optional Company
// and Phone, a blank line, "Message:" and the message itself. Optional
// fields appear only when non-empty.
func BodyLines(name, email, company, phone, message string) []string {
	lines := []string{
		fmt.Sprintf("Name: %s", name),
		fmt.Sprintf("Email: %s", email),
	}
	if company != "" {
		lines = append(lines, fmt.Sprintf("Company: %s", company))
	}
	if phone != "" {
		lines = append(lines, fmt.Sprintf("Phone: %s", phone))
	}
	lines = append(lines, "", "Message:", message)
	return lines
}

// Compose derives the outbound mail message for a submission. The HTML
// alternative renders the same lines inside <pre> with user-supplied
// content escaped to prevent markup injection.
func Compose(sub *models.Submission, to, from, fromName string) *Message {
	lines := BodyLines(sub.Name, sub.Email, sub.Company, sub.Phone, sub.Message)

	return &Message{
		To:       to,
		From:     from,
		FromName: fromName,
		Subject:  SubjectFor(sub.Name),
		TextBody: strings.Join(lines, "\n"),
		HTMLBody: htmlBody(lines),
	}
}

func htmlBody(lines []string) string {
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = EscapeHTML(line)
	}
	return "<pre>" + strings.Join(escaped, "<br/>") + "</pre>"
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes &, <, >, " and ' to their entity forms.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
