// Package domain contains the invoice document model rendered to HTML and PDF.
package domain

import (
	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
)

// InvoiceDocument is the full snapshot handed to a render. Renderers never
// mutate it.
type InvoiceDocument struct {
	Template      templatedomain.TemplateID `json:"template"`
	InvoiceNumber string                    `json:"invoiceNumber,omitempty"`
	InvoiceDate   Date                      `json:"invoiceDate"`
	DueDate       *Date                     `json:"dueDate,omitempty"`
	Company       CompanyInfo               `json:"company"`
	Client        ClientInfo                `json:"client"`
	LineItems     []LineItem                `json:"lineItems"`
	TaxDetails    *TaxDetails               `json:"taxDetails,omitempty"`
	BankDetails   *BankDetails              `json:"bankDetails,omitempty"`
	Notes         string                    `json:"notes,omitempty"`
	PaymentTerms  string                    `json:"paymentTerms,omitempty"`

	IncludeInvoiceNumber bool `json:"includeInvoiceNumber"`
	IncludeBankDetails   bool `json:"includeBankDetails"`
	IncludeTaxDetails    bool `json:"includeTaxDetails"`
	IncludePaymentTerms  bool `json:"includePaymentTerms"`

	FieldVisibility FieldVisibility `json:"fieldVisibility"`
}

// CompanyInfo is the issuer.
type CompanyInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

// ClientInfo is the recipient.
type ClientInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// LineItem is one billable row. The row total is always derived.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// TaxDetails describes a single flat tax. Rate is a percentage, 10 means 10%.
type TaxDetails struct {
	TaxName string  `json:"taxName"`
	Rate    float64 `json:"rate"`
}

type BankDetails struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	BSB           string `json:"bsb,omitempty"`
	SwiftCode     string `json:"swiftCode,omitempty"`
	IBAN          string `json:"iban,omitempty"`
}

// FieldVisibility holds the per-field toggles applied inside included sections.
type FieldVisibility struct {
	CompanyEmail      bool `json:"companyEmail"`
	CompanyPhone      bool `json:"companyPhone"`
	CompanyAddress    bool `json:"companyAddress"`
	CompanyWebsite    bool `json:"companyWebsite"`
	ClientEmail       bool `json:"clientEmail"`
	ClientPhone       bool `json:"clientPhone"`
	ClientAddress     bool `json:"clientAddress"`
	DueDate           bool `json:"dueDate"`
	BankAccountName   bool `json:"bankAccountName"`
	BankAccountNumber bool `json:"bankAccountNumber"`
	BankName          bool `json:"bankName"`
	BankBSB           bool `json:"bankBSB"`
	BankSwiftCode     bool `json:"bankSwiftCode"`
	BankIBAN          bool `json:"bankIBAN"`
}

// DefaultFieldVisibility matches the form defaults: everything on except the
// international bank identifiers.
func DefaultFieldVisibility() FieldVisibility {
	return FieldVisibility{
		CompanyEmail:      true,
		CompanyPhone:      true,
		CompanyAddress:    true,
		CompanyWebsite:    true,
		ClientEmail:       true,
		ClientPhone:       true,
		ClientAddress:     true,
		DueDate:           true,
		BankAccountName:   true,
		BankAccountNumber: true,
		BankName:          true,
		BankBSB:           true,
		BankSwiftCode:     false,
		BankIBAN:          false,
	}
}
