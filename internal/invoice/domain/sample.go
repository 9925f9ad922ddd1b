package domain

import (
	"time"

	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
)

// SampleInvoice returns the demo document used for template previews. The
// invoice is dated now and due 30 days later.
func SampleInvoice(now time.Time) InvoiceDocument {
	issued := DateOf(now.UTC())
	due := issued.AddDays(30)
	visibility := DefaultFieldVisibility()
	visibility.BankSwiftCode = true

	return InvoiceDocument{
		Template:      templatedomain.DefaultTemplate,
		InvoiceNumber: "INV-001",
		InvoiceDate:   issued,
		DueDate:       &due,
		Company: CompanyInfo{
			Name:    "Sample Company Inc.",
			Email:   "hello@sample.com",
			Phone:   "+1 (555) 123-4567",
			Address: "123 Business St, City, State 12345",
			Website: "www.sample.com",
		},
		Client: ClientInfo{
			Name:    "Client Corp",
			Email:   "contact@client.com",
			Phone:   "+1 (555) 987-6543",
			Address: "456 Client Ave, Town, State 67890",
		},
		LineItems: []LineItem{
			{Description: "Professional Services", Quantity: 1, UnitPrice: 1000},
			{Description: "Consulting Fees", Quantity: 5, UnitPrice: 200},
		},
		TaxDetails: &TaxDetails{TaxName: "GST", Rate: 10},
		BankDetails: &BankDetails{
			AccountName:   "Sample Company Inc.",
			AccountNumber: "1234567890",
			BankName:      "Sample Bank",
			BSB:           "123456",
			SwiftCode:     "SAMPAUS",
		},
		PaymentTerms:         "Payment due within 30 days",
		Notes:                "Thank you for your business!",
		IncludeInvoiceNumber: true,
		IncludeBankDetails:   true,
		IncludeTaxDetails:    true,
		IncludePaymentTerms:  true,
		FieldVisibility:      visibility,
	}
}
