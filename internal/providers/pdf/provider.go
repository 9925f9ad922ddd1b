package pdf

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/invoicegen/internal/invoice/layout"
)

// ErrRenderFailed is returned when the PDF engine reports a fault.
var ErrRenderFailed = errors.New("pdf_render_failed")

// Metadata is written into the PDF info dictionary.
type Metadata struct {
	Title     string
	Author    string
	Subject   string
	Creator   string
	CreatedAt time.Time
}

// Provider serializes a laid out document into PDF bytes.
type Provider interface {
	Render(ctx context.Context, doc *layout.Document, meta Metadata) ([]byte, error)
}

type NoOpProvider struct{}

func (p *NoOpProvider) Render(ctx context.Context, doc *layout.Document, meta Metadata) ([]byte, error) {
	return nil, nil
}
