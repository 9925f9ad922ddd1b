package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/smallbiznis/invoicegen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildMessageStructure(t *testing.T) {
	pdf := bytes.Repeat([]byte("%PDF-1.3 body "), 20)
	raw, err := buildMessage("billing@acme.test", "<id@acme.test>", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), Message{
		To:       []string{"client@example.com"},
		Subject:  "Invoice INV-001 from Acme",
		TextBody: "Hello,\nplease find attached.",
		HTMLBody: "<p>Hello,<br>please find attached.</p>",
		Attachments: []Attachment{{
			Filename:    "invoice-acme-INV-001.pdf",
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	})
	require.NoError(t, err)

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "<id@acme.test>", msg.Header.Get("Message-ID"))
	assert.Equal(t, "<client@example.com>", msg.Header.Get("To"))

	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Invoice INV-001 from Acme", subject)

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/mixed", mediaType)

	mixed := multipart.NewReader(msg.Body, params["boundary"])

	bodyPart, err := mixed.NextPart()
	require.NoError(t, err)
	altType, altParams, err := mime.ParseMediaType(bodyPart.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/alternative", altType)

	alt := multipart.NewReader(bodyPart, altParams["boundary"])
	textPart, err := alt.NextPart()
	require.NoError(t, err)
	text, err := io.ReadAll(textPart)
	require.NoError(t, err)
	assert.Equal(t, "Hello,\nplease find attached.", string(text))

	htmlPart, err := alt.NextPart()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(htmlPart.Header.Get("Content-Type"), "text/html"))

	attPart, err := mixed.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "invoice-acme-INV-001.pdf", attPart.FileName())
	encoded, err := io.ReadAll(attPart)
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSpace(string(encoded)), "\r\n") {
		assert.LessOrEqual(t, len(line), 76)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(string(encoded), "\r\n", ""))
	require.NoError(t, err)
	assert.Equal(t, pdf, decoded)

	_, err = mixed.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestBuildMessageRejectsBadRecipient(t *testing.T) {
	_, err := buildMessage("a@b.test", "<x@b.test>", time.Now(), Message{To: []string{"not an address"}, TextBody: "x"})
	require.Error(t, err)
}

func TestSMTPSendWithoutRecipients(t *testing.T) {
	_, err := NewSMTP(Config{Host: "smtp.example.com", Port: 587, From: "a@b.test"}).Send(context.Background(), Message{})
	require.ErrorIs(t, err, ErrNoRecipients)
}

func TestNoOpProvider(t *testing.T) {
	p := &NoOpProvider{}
	id, err := p.Send(context.Background(), Message{To: []string{"a@b.test"}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "<") && strings.HasSuffix(id, "@localhost>"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Send(ctx, Message{To: []string{"a@b.test"}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewFromConfigFallsBackToNoOp(t *testing.T) {
	p := NewFromConfig(config.Config{}, zap.NewNop())
	require.IsType(t, &NoOpProvider{}, p)

	p = NewFromConfig(config.Config{Email: config.EmailConfig{SMTPHost: "smtp.example.com", SMTPPort: 587, SMTPFrom: "a@b.test"}}, zap.NewNop())
	require.IsType(t, &SMTPProvider{}, p)
}
