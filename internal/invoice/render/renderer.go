// Package render turns an invoice document into a standalone HTML page.
package render

import (
	"github.com/smallbiznis/invoicegen/internal/invoice/calc"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
)

// RenderInput is everything one render needs. Totals must come from
// calc.ForDocument on the same document.
type RenderInput struct {
	Document   invoicedomain.InvoiceDocument
	Style      templatedomain.Style
	StyleSheet string
	Totals     calc.Totals
}

type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}
