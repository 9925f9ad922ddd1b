package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	"github.com/smallbiznis/invoicegen/internal/invoice/layout"
	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
	"github.com/smallbiznis/invoicegen/internal/invoicetemplate/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageCount(out []byte) int {
	return bytes.Count(out, []byte("/Type /Page")) - bytes.Count(out, []byte("/Type /Pages"))
}

func buildLayout(t *testing.T, rows int) *layout.Document {
	t.Helper()
	doc := invoicedomain.SampleInvoice(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	for len(doc.LineItems) < rows {
		doc.LineItems = append(doc.LineItems, invoicedomain.LineItem{Description: "Extra", Quantity: 1, UnitPrice: 1})
	}
	style, ok := repository.Provide().FindByID(templatedomain.TemplateModern)
	require.True(t, ok)
	return layout.Build(doc, style)
}

func TestRenderProducesPDF(t *testing.T) {
	d := buildLayout(t, 2)
	out, err := New().Render(context.Background(), d, Metadata{Title: "Invoice INV-001", Creator: "invoicegen"})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Equal(t, 1, pageCount(out))
}

func TestRenderMultiPage(t *testing.T) {
	d := buildLayout(t, 40)
	require.Equal(t, 2, d.PageCount())

	out, err := New().Render(context.Background(), d, Metadata{})
	require.NoError(t, err)
	assert.Equal(t, 2, pageCount(out))
}

func TestRenderUncompressedContainsText(t *testing.T) {
	d := buildLayout(t, 2)
	out, err := New(WithCompression(false)).Render(context.Background(), d, Metadata{})
	require.NoError(t, err)

	assert.Contains(t, string(out), "(INVOICE) Tj")
	assert.Contains(t, string(out), "(Thank you for your business!) Tj")
}

func TestRenderIsVectorOnly(t *testing.T) {
	out, err := New(WithCompression(false)).Render(context.Background(), buildLayout(t, 2), Metadata{})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "/Subtype /Image")
}

func TestRenderNilDocument(t *testing.T) {
	_, err := New().Render(context.Background(), nil, Metadata{})
	assert.ErrorIs(t, err, ErrRenderFailed)
}

func TestRenderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Render(ctx, buildLayout(t, 1), Metadata{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNoOpProvider(t *testing.T) {
	out, err := (&NoOpProvider{}).Render(context.Background(), buildLayout(t, 1), Metadata{})
	assert.NoError(t, err)
	assert.Nil(t, out)
}
