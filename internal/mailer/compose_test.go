package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curafehealth/website-backend/internal/models"
)

func TestBodyLines_AllFields(t *testing.T) {
	lines := BodyLines("Jane Doe", "jane@x.com", "Acme", "+1 555 0100", "Hello")

	assert.Equal(t, []string{
		"Name: Jane Doe",
		"Email: jane@x.com",
		"Company: Acme",
		"Phone: +1 555 0100",
		"",
		"Message:",
		"Hello",
	}, lines)
}

func TestBodyLines_OptionalFieldsOmittedWhenEmpty(t *testing.T) {
	lines := BodyLines("Jane Doe", "jane@x.com", "", "", "Hello")

	assert.Equal(t, []string{
		"Name: Jane Doe",
		"Email: jane@x.com",
		"",
		"Message:",
		"Hello",
	}, lines)
}

func TestSubjectFor(t *testing.T) {
	assert.Equal(t, "Website contact from Jane Doe", SubjectFor("Jane Doe"))
}

func TestCompose_TextAndHTMLBodies(t *testing.T) {
	sub := &models.Submission{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Message: "Hello",
	}

	msg := Compose(sub, "Curafehealth@gmail.com", "no-reply@example.com", "CuraFe Health Website")

	assert.Equal(t, "Curafehealth@gmail.com", msg.To)
	assert.Equal(t, "no-reply@example.com", msg.From)
	assert.Equal(t, "CuraFe Health Website", msg.FromName)
	assert.Equal(t, "Website contact from Jane Doe", msg.Subject)
	assert.Equal(t, "Name: Jane Doe\nEmail: jane@x.com\n\nMessage:\nHello", msg.TextBody)
	assert.Equal(t, "<pre>Name: Jane Doe<br/>Email: jane@x.com<br/><br/>Message:<br/>Hello</pre>", msg.HTMLBody)
}

func TestEscapeHTML_AllFiveCharacters(t *testing.T) {
	escaped := EscapeHTML(`<script>&"'</script>`)

	assert.Equal(t, "&lt;script&gt;&amp;&quot;&#039;&lt;/script&gt;", escaped)
}

func TestCompose_HTMLBodyEscapesUserContent(t *testing.T) {
	sub := &models.Submission{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Message: `<script>&"'</script>`,
	}

	msg := Compose(sub, "to@example.com", "from@example.com", "")

	// No literal markup characters remain outside entities.
	stripped := msg.HTMLBody
	stripped = strings.TrimPrefix(stripped, "<pre>")
	stripped = strings.TrimSuffix(stripped, "</pre>")
	stripped = strings.ReplaceAll(stripped, "<br/>", "")
	for _, entity := range []string{"&amp;", "&lt;", "&gt;", "&quot;", "&#039;"} {
		stripped = strings.ReplaceAll(stripped, entity, "")
	}
	for _, forbidden := range []string{"&", "<", ">", `"`, "'"} {
		assert.NotContains(t, stripped, forbidden)
	}

	require.Contains(t, msg.HTMLBody, "&lt;script&gt;&amp;&quot;&#039;&lt;/script&gt;")
}
