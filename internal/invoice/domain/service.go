package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
)

// PDFResult is a serialized invoice ready for download or attachment.
type PDFResult struct {
	Bytes    []byte
	Filename string
	Pages    int
}

// Base64Export carries the PDF as a data URI for clients that cannot take
// binary responses.
type Base64Export struct {
	Filename string `json:"filename"`
	DataURI  string `json:"dataUri"`
	Pages    int    `json:"pages"`
}

// EmailDraft is a subject/body pair produced from an email template.
type EmailDraft struct {
	TemplateID string `json:"templateId"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
}

// SendRequest mirrors the mail route payload.
type SendRequest struct {
	RecipientEmail string `json:"recipientEmail" validate:"required,email"`
	PDFBase64      string `json:"pdfBase64" validate:"required"`
	Subject        string `json:"subject" validate:"required"`
	Body           string `json:"body" validate:"required"`
	CompanyName    string `json:"companyName"`
	InvoiceNumber  string `json:"invoiceNumber"`
}

type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Filename  string `json:"filename"`
}

type Service interface {
	RenderHTML(ctx context.Context, doc InvoiceDocument) (string, error)
	RenderPDF(ctx context.Context, doc InvoiceDocument) (PDFResult, error)
	ExportBase64(ctx context.Context, doc InvoiceDocument) (Base64Export, error)
	ComposeEmail(ctx context.Context, doc InvoiceDocument, templateID string) (EmailDraft, error)
	SendInvoice(ctx context.Context, req SendRequest) (SendResult, error)
	Preview(ctx context.Context, id templatedomain.TemplateID) (string, error)
}

var (
	ErrRenderFailed          = errors.New("render_failed")
	ErrDeliveryFailed        = errors.New("delivery_failed")
	ErrInvalidDocument       = errors.New("invalid_document")
	ErrInvalidSendRequest    = errors.New("invalid_send_request")
	ErrInvalidAttachment     = errors.New("invalid_attachment")
	ErrEmailTemplateNotFound = errors.New("email_template_not_found")
	ErrTemplateNotFound      = errors.New("template_not_found")
	ErrRateLimited           = errors.New("rate_limited")
)

// RateLimitError rejects a send that exceeded the recipient budget or that
// duplicates a send still in flight.
type RateLimitError struct {
	RetryAfter time.Duration
	Reason     string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter <= 0 {
		return "rate_limited: " + e.Reason
	}
	return fmt.Sprintf("rate_limited: %s, retry after %s", e.Reason, e.RetryAfter.Round(time.Second))
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }
