package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/smallbiznis/invoicegen/internal/invoice/calc"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	"github.com/smallbiznis/invoicegen/internal/invoice/format"
	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice{{with .InvoiceNumber}} {{.}}{{end}}</title>
  <style>
{{.StyleSheet}}
  </style>
</head>
<body class="template-{{.Style.ID}}">
  <div class="invoice">
    <div class="header">
      <div class="company-info">
        <h1>{{.Doc.Company.Name}}</h1>
        {{- range .Doc.CompanyFields}}
        <p>{{.Value}}</p>
        {{- end}}
      </div>
      <div class="invoice-title">
        <h2>INVOICE</h2>
        <div class="invoice-meta">
          {{- with .InvoiceNumber}}
          <p><strong>Invoice #:</strong> {{.}}</p>
          {{- end}}
          <p><strong>Date:</strong> {{formatDate .Doc.InvoiceDate}}</p>
          {{- with .DueDate}}
          <p><strong>Due Date:</strong> {{.}}</p>
          {{- end}}
        </div>
      </div>
    </div>

    <div class="section bill-to">
      <div class="section-title">Bill To</div>
      <div class="client-name">{{.Doc.Client.Name}}</div>
      {{- range .Doc.ClientFields}}
      <p>{{.Value}}</p>
      {{- end}}
    </div>

    <table class="items">
      <thead>
        <tr>
          <th>Description</th>
          <th class="num">Quantity</th>
          <th class="num">Unit Price</th>
          <th class="num">Total</th>
        </tr>
      </thead>
      <tbody>
        {{- range .Doc.LineItems}}
        <tr>
          <td>{{.Description}}</td>
          <td class="num">{{formatQuantity .Quantity}}</td>
          <td class="num">{{formatUnitPrice .UnitPrice}}</td>
          <td class="num">{{formatMoney (lineTotal .)}}</td>
        </tr>
        {{- end}}
      </tbody>
    </table>

    <div class="totals">
      <div class="totals-row">
        <div class="label">Subtotal:</div>
        <div class="value">{{formatMoney .Totals.Subtotal}}</div>
      </div>
      {{- if .ShowTax}}
      <div class="totals-row">
        <div class="label">{{.TaxLabel}}:</div>
        <div class="value">{{formatMoney .Totals.TaxAmount}}</div>
      </div>
      {{- end}}
      <div class="totals-row grand-total">
        <div class="label">Total:</div>
        <div class="value">{{formatMoney .Totals.Total}}</div>
      </div>
    </div>

    {{- if .Doc.ShowPaymentDetails}}
    <div class="section payment-details">
      <div class="section-title">Payment Details</div>
      {{- range .Doc.BankFields}}
      <p><strong>{{.Label}}:</strong> {{.Value}}</p>
      {{- end}}
    </div>
    {{- end}}

    {{- with .PaymentTerms}}
    <div class="notes"><strong>Payment Terms:</strong> {{.}}</div>
    {{- end}}
    {{- with .Notes}}
    <div class="notes"><strong>Notes:</strong> {{.}}</div>
    {{- end}}

    <div class="footer">
      <p>{{.Footer}}</p>
    </div>
  </div>
</body>
</html>
`

// DefaultFooter is the closing line printed on every invoice.
const DefaultFooter = "Thank you for your business!"

type HTMLRenderer struct {
	tpl    *template.Template
	footer string
}

type Option func(*HTMLRenderer)

// WithFooter overrides the footer line. Blank values keep the default.
func WithFooter(footer string) Option {
	return func(r *HTMLRenderer) {
		if footer != "" {
			r.footer = footer
		}
	}
}

func NewRenderer(opts ...Option) Renderer {
	funcs := template.FuncMap{
		"formatMoney":     format.Currency,
		"formatUnitPrice": formatUnitPrice,
		"formatDate":      format.Date,
		"formatQuantity":  format.Quantity,
		"lineTotal":       calc.LineTotal,
	}
	r := &HTMLRenderer{
		tpl:    template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate)),
		footer: DefaultFooter,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type view struct {
	Doc           invoicedomain.InvoiceDocument
	Style         templatedomain.Style
	StyleSheet    template.CSS
	Totals        calc.Totals
	InvoiceNumber string
	DueDate       string
	ShowTax       bool
	TaxLabel      string
	PaymentTerms  string
	Notes         string
	Footer        string
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	doc := input.Document
	v := view{
		Doc:        doc,
		Style:      input.Style,
		StyleSheet: template.CSS(input.StyleSheet),
		Totals:     input.Totals,
		ShowTax:    doc.ApplyTax(),
		Footer:     r.footer,
	}
	if number, ok := doc.VisibleInvoiceNumber(); ok {
		v.InvoiceNumber = number
	}
	if due, ok := doc.VisibleDueDate(); ok {
		v.DueDate = format.Date(due)
	}
	if v.ShowTax {
		v.TaxLabel = format.TaxLabel(doc.TaxDetails)
	}
	if terms, ok := doc.VisiblePaymentTerms(); ok {
		v.PaymentTerms = terms
	}
	if notes, ok := doc.VisibleNotes(); ok {
		v.Notes = notes
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("%w: %v", invoicedomain.ErrRenderFailed, err)
	}

	return buf.String(), nil
}

func formatUnitPrice(value float64) string {
	return format.Currency(calc.FromFloat(value))
}
