// Package calc derives invoice totals from line items and the tax policy.
package calc

import (
	"math"

	"github.com/shopspring/decimal"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
)

var hundred = decimal.NewFromInt(100)

// Totals is recomputed on every render and never stored.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Total     decimal.Decimal `json:"total"`
}

// Compute sums the items, applies tax only when includeTax is set and a tax
// policy exists, and adds the two. No rounding happens here.
func Compute(items []invoicedomain.LineItem, tax *invoicedomain.TaxDetails, includeTax bool) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineTotal(item))
	}

	taxAmount := decimal.Zero
	if includeTax && tax != nil {
		taxAmount = subtotal.Mul(FromFloat(tax.Rate)).Div(hundred)
	}

	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}
}

// ForDocument applies the document's own tax gate.
func ForDocument(doc invoicedomain.InvoiceDocument) Totals {
	return Compute(doc.LineItems, doc.TaxDetails, doc.ApplyTax())
}

// LineTotal is quantity times unit price for one row.
func LineTotal(item invoicedomain.LineItem) decimal.Decimal {
	return FromFloat(item.Quantity).Mul(FromFloat(item.UnitPrice))
}

// FromFloat maps NaN and infinities to zero; decimal cannot hold them.
func FromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
