package format

import (
	"strings"

	"github.com/shopspring/decimal"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
)

// Placeholders are the values substituted into email subjects and bodies.
type Placeholders struct {
	InvoiceNumber string
	CompanyName   string
	ClientName    string
	InvoiceDate   string
	DueDate       string
	TotalAmount   decimal.Decimal
}

// PlaceholdersFor collects the substitution values of a document.
func PlaceholdersFor(doc invoicedomain.InvoiceDocument, total decimal.Decimal) Placeholders {
	p := Placeholders{
		InvoiceNumber: doc.InvoiceNumber,
		CompanyName:   doc.Company.Name,
		ClientName:    doc.Client.Name,
		InvoiceDate:   doc.InvoiceDate.String(),
		TotalAmount:   total,
	}
	if doc.DueDate != nil {
		p.DueDate = doc.DueDate.String()
	}
	return p
}

// ExpandPlaceholders replaces every {token} occurrence in tpl. Unknown tokens
// are left untouched.
//
// This function is PURE:
// - No side effects
// - Fully deterministic
func ExpandPlaceholders(tpl string, p Placeholders) string {
	r := strings.NewReplacer(
		"{invoiceNumber}", p.InvoiceNumber,
		"{companyName}", p.CompanyName,
		"{clientName}", p.ClientName,
		"{invoiceDate}", p.InvoiceDate,
		"{dueDate}", p.DueDate,
		"{totalAmount}", p.TotalAmount.StringFixed(2),
	)
	return r.Replace(tpl)
}
