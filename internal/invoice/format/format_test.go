package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	cases := map[string]string{
		"0":         "$0.00",
		"220":       "$220.00",
		"1234.5":    "$1,234.50",
		"1000000":   "$1,000,000.00",
		"0.005":     "$0.01",
		"-20":       "-$20.00",
		"-1234.567": "-$1,234.57",
	}
	for in, want := range cases {
		assert.Equal(t, want, Currency(decimal.RequireFromString(in)), in)
	}
}

func TestQuantityAndRate(t *testing.T) {
	assert.Equal(t, "1", Quantity(1))
	assert.Equal(t, "2.5", Quantity(2.5))
	assert.Equal(t, "12.5", Rate(12.5))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "3/5/2024", Date(invoicedomain.NewDate(2024, time.March, 5)))
	assert.Equal(t, "12/31/2024", Date(invoicedomain.NewDate(2024, time.December, 31)))
	assert.Equal(t, "", Date(invoicedomain.Date{}))
}

func TestTaxLabel(t *testing.T) {
	assert.Equal(t, "GST (10%)", TaxLabel(&invoicedomain.TaxDetails{TaxName: "GST", Rate: 10}))
	assert.Equal(t, "Tax (7.5%)", TaxLabel(&invoicedomain.TaxDetails{Rate: 7.5}))
	assert.Equal(t, "", TaxLabel(nil))
}

func TestFilename(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	assert.Equal(t, "invoice-acme-studio-pty-ltd-INV-001.pdf", Filename("Acme Studio Pty Ltd", "INV-001", now))
	assert.Equal(t, "invoice-document-INV-001.pdf", Filename("", "INV-001", now))
	assert.Equal(t, "invoice-acme-1700000000123.pdf", Filename("Acme", "", now))
	assert.Equal(t, "invoice-acme-INV-2024-7.pdf", Filename("Acme", "INV/2024 7", now))
}

func TestDataURIRoundTrip(t *testing.T) {
	payload := []byte("%PDF-1.3 test")
	uri := DataURI(payload)
	assert.Contains(t, uri, "data:application/pdf;base64,")

	decoded, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)

	decoded, err = DecodeDataURI(uri[len("data:application/pdf;base64,"):])
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestDecodeDataURIErrors(t *testing.T) {
	_, err := DecodeDataURI("")
	assert.Error(t, err)

	_, err = DecodeDataURI("data:application/pdf;base64")
	assert.Error(t, err)

	_, err = DecodeDataURI("not base64 !!")
	assert.Error(t, err)
}

func TestExpandPlaceholders(t *testing.T) {
	p := Placeholders{
		InvoiceNumber: "INV-7",
		CompanyName:   "Acme",
		ClientName:    "Globex",
		InvoiceDate:   "2024-03-05",
		DueDate:       "2024-04-04",
		TotalAmount:   decimal.RequireFromString("220"),
	}
	out := ExpandPlaceholders("Invoice {invoiceNumber} from {companyName} for {clientName}: {totalAmount} due {dueDate} ({invoiceDate}) {invoiceNumber} {other}", p)
	assert.Equal(t, "Invoice INV-7 from Acme for Globex: 220.00 due 2024-04-04 (2024-03-05) INV-7 {other}", out)
}

func TestPlaceholdersFor(t *testing.T) {
	doc := invoicedomain.SampleInvoice(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	p := PlaceholdersFor(doc, decimal.NewFromInt(2200))
	assert.Equal(t, "INV-001", p.InvoiceNumber)
	assert.Equal(t, "Client Corp", p.ClientName)
	assert.Equal(t, "2025-02-19", p.DueDate)

	doc.DueDate = nil
	assert.Equal(t, "", PlaceholdersFor(doc, decimal.Zero).DueDate)
}
