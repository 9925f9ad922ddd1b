package email

import (
	"context"
	"errors"
)

var (
	ErrNoRecipients = errors.New("email: no recipients")
	ErrSendFailed   = errors.New("email: send failed")
)

// Attachment is a file carried in a Message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is one outbound email. TextBody is required; HTMLBody is sent as
// an alternative part when set.
type Message struct {
	To          []string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}

// Provider delivers messages and returns the Message-ID it assigned.
type Provider interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// NoOpProvider accepts every message without delivering it.
type NoOpProvider struct{}

func (p *NoOpProvider) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(msg.To) == 0 {
		return "", ErrNoRecipients
	}
	return newMessageID("localhost"), nil
}
