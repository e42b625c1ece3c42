package contactform

import (
	"net/url"
	"strings"

	"github.com/curafehealth/website-backend/internal/mailer"
)

// signatureLines close the mailto body so the recipient can tell the
// message came through the fallback path.
var signatureLines = []string{"", "---", "Sent from CuraFe Health website contact form"}

// Mailto builds the mailto: URI for the fallback path: fixed
// recipient, the standard subject, and the same body template as the
// outbound mail plus the signature.
func Mailto(to string, f Fields) string {
	lines := mailer.BodyLines(f.Name, f.Email, f.Company, f.Phone, f.Message)
	lines = append(lines, signatureLines...)

	subject := encodeComponent(mailer.SubjectFor(f.Name))
	body := encodeComponent(strings.Join(lines, "\n"))

	return "mailto:" + to + "?subject=" + subject + "&body=" + body
}

// encodeComponent percent-encodes like encodeURIComponent: spaces
// become %20, never +, so mail clients parse the query values intact.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
