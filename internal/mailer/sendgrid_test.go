package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() *Message {
	return &Message{
		To:       "Curafehealth@gmail.com",
		From:     "no-reply@example.com",
		FromName: "CuraFe Health Website",
		Subject:  "Website contact from Jane Doe",
		TextBody: "Name: Jane Doe\nEmail: jane@x.com\n\nMessage:\nHello",
		HTMLBody: "<pre>Name: Jane Doe</pre>",
	}
}

func TestSendGridSend_PayloadAndAuth(t *testing.T) {
	var gotAuth string
	var gotPayload sendGridPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotPayload))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sender := NewSendGridSenderWithURL("sg-test-key", server.URL)
	err := sender.Send(context.Background(), testMessage())

	require.NoError(t, err)
	assert.Equal(t, "Bearer sg-test-key", gotAuth)
	require.Len(t, gotPayload.Personalizations, 1)
	require.Len(t, gotPayload.Personalizations[0].To, 1)
	assert.Equal(t, "Curafehealth@gmail.com", gotPayload.Personalizations[0].To[0].Email)
	assert.Equal(t, "no-reply@example.com", gotPayload.From.Email)
	assert.Equal(t, "CuraFe Health Website", gotPayload.From.Name)
	assert.Equal(t, "Website contact from Jane Doe", gotPayload.Subject)
	require.Len(t, gotPayload.Content, 2)
	assert.Equal(t, "text/plain", gotPayload.Content[0].Type)
	assert.Equal(t, "text/html", gotPayload.Content[1].Type)
}

func TestSendGridSend_PlainTextOnly(t *testing.T) {
	var gotPayload sendGridPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	msg := testMessage()
	msg.HTMLBody = ""

	sender := NewSendGridSenderWithURL("sg-test-key", server.URL)
	err := sender.Send(context.Background(), msg)

	require.NoError(t, err)
	require.Len(t, gotPayload.Content, 1)
	assert.Equal(t, "text/plain", gotPayload.Content[0].Type)
}

func TestSendGridSend_NonSuccessIsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer server.Close()

	sender := NewSendGridSenderWithURL("wrong-key", server.URL)
	err := sender.Send(context.Background(), testMessage())

	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "sendgrid", transportErr.Provider)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "bad key")
}

func TestSendGridSend_NetworkFailureIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	sender := NewSendGridSenderWithURL("sg-test-key", server.URL)
	err := sender.Send(context.Background(), testMessage())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestSendGridSend_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := NewSendGridSenderWithURL("sg-test-key", server.URL)
	err := sender.Send(ctx, testMessage())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
