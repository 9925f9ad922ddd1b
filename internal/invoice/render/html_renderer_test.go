package render

import (
	"strings"
	"testing"
	"time"

	"github.com/smallbiznis/invoicegen/internal/invoice/calc"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
	"github.com/smallbiznis/invoicegen/internal/invoicetemplate/repository"
	templateservice "github.com/smallbiznis/invoicegen/internal/invoicetemplate/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func inputFor(t *testing.T, doc invoicedomain.InvoiceDocument) RenderInput {
	t.Helper()
	registry := templateservice.NewService(templateservice.Params{Log: zap.NewNop(), Repo: repository.Provide()})
	style := registry.Resolve(doc.Template)
	return RenderInput{
		Document:   doc,
		Style:      style,
		StyleSheet: registry.StyleSheet(style),
		Totals:     calc.ForDocument(doc),
	}
}

func scenarioA() invoicedomain.InvoiceDocument {
	return invoicedomain.InvoiceDocument{
		Template:    templatedomain.TemplateProfessional,
		InvoiceDate: invoicedomain.NewDate(2024, time.March, 5),
		Company:     invoicedomain.CompanyInfo{Name: "Acme"},
		Client:      invoicedomain.ClientInfo{Name: "Globex"},
		LineItems: []invoicedomain.LineItem{
			{Description: "A", Quantity: 2, UnitPrice: 50},
			{Description: "B", Quantity: 1, UnitPrice: 100},
		},
		TaxDetails:        &invoicedomain.TaxDetails{TaxName: "GST", Rate: 10},
		IncludeTaxDetails: true,
		FieldVisibility:   invoicedomain.DefaultFieldVisibility(),
	}
}

func render(t *testing.T, doc invoicedomain.InvoiceDocument) string {
	t.Helper()
	html, err := NewRenderer().RenderHTML(inputFor(t, doc))
	require.NoError(t, err)
	return html
}

func TestRenderScenarioA(t *testing.T) {
	html := render(t, scenarioA())

	assert.Contains(t, html, "$200.00")
	assert.Contains(t, html, "GST (10%):")
	assert.Contains(t, html, "$20.00")
	assert.Contains(t, html, "$220.00")
	assert.Contains(t, html, "<h2>INVOICE</h2>")
	assert.Contains(t, html, "<strong>Date:</strong> 3/5/2024")
	assert.Contains(t, html, "Thank you for your business!")
}

func TestRenderScenarioBTaxLineHidden(t *testing.T) {
	doc := scenarioA()
	doc.IncludeTaxDetails = false
	html := render(t, doc)

	assert.NotContains(t, html, "GST")
	assert.NotContains(t, html, "$20.00")
	assert.Equal(t, 2, strings.Count(html, "$200.00"))
}

func TestRenderScenarioCIBANHidden(t *testing.T) {
	doc := scenarioA()
	doc.IncludeBankDetails = true
	doc.BankDetails = &invoicedomain.BankDetails{AccountName: "Acme", AccountNumber: "123", BankName: "Bank", IBAN: ""}
	doc.FieldVisibility.BankIBAN = false
	html := render(t, doc)

	assert.Contains(t, html, "Payment Details")
	assert.Contains(t, html, "<strong>Account Name:</strong> Acme")
	assert.NotContains(t, html, "IBAN")
}

func TestRenderOptionalSectionsOmitted(t *testing.T) {
	doc := scenarioA()
	doc.InvoiceNumber = "INV-1"
	doc.PaymentTerms = "Net 30"
	html := render(t, doc)

	assert.NotContains(t, html, "Invoice #:")
	assert.NotContains(t, html, "INV-1")
	assert.Contains(t, html, "<title>Invoice</title>")
	assert.NotContains(t, html, "Payment Terms:")
	assert.NotContains(t, html, "Payment Details")
	assert.NotContains(t, html, "Notes:")
	assert.NotContains(t, html, "Due Date:")
}

func TestRenderFullDocument(t *testing.T) {
	doc := invoicedomain.SampleInvoice(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	html := render(t, doc)

	assert.Contains(t, html, "<title>Invoice INV-001</title>")
	assert.Contains(t, html, "<strong>Invoice #:</strong> INV-001")
	assert.Contains(t, html, "<strong>Due Date:</strong> 2/19/2025")
	assert.Contains(t, html, "hello@sample.com")
	assert.Contains(t, html, "<strong>SWIFT Code:</strong> SAMPAUS")
	assert.Contains(t, html, "<strong>Payment Terms:</strong> Payment due within 30 days")
	assert.Contains(t, html, "<strong>Notes:</strong> Thank you for your business!")
	assert.Contains(t, html, "$2,200.00")
	assert.Contains(t, html, "$2,000.00")
}

func TestRenderEscapesValues(t *testing.T) {
	doc := scenarioA()
	doc.Company.Name = `<script>alert("x")</script>`
	doc.LineItems[0].Description = "Bolts & <nuts>"
	html := render(t, doc)

	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "Bolts &amp; &lt;nuts&gt;")
}

func TestRenderIsIdempotent(t *testing.T) {
	doc := invoicedomain.SampleInvoice(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, render(t, doc), render(t, doc))
}

func TestRenderEmbedsTemplateStyles(t *testing.T) {
	doc := scenarioA()
	doc.Template = templatedomain.TemplateTech
	html := render(t, doc)

	assert.Contains(t, html, "#0d1117")
	assert.Contains(t, html, "'Courier New'")
	assert.Contains(t, html, `class="template-tech"`)
	assert.False(t, strings.Contains(html, "ZgotmplZ"))
}

func TestRenderUnknownTemplateMatchesProfessional(t *testing.T) {
	doc := scenarioA()
	doc.Template = "does-not-exist"
	unknown := render(t, doc)

	doc.Template = templatedomain.TemplateProfessional
	assert.Equal(t, unknown, render(t, doc))
}

func TestRenderCustomFooter(t *testing.T) {
	html, err := NewRenderer(WithFooter("Danke!")).RenderHTML(inputFor(t, scenarioA()))
	require.NoError(t, err)
	assert.Contains(t, html, "Danke!")
	assert.NotContains(t, html, DefaultFooter)
}
