package domain

import "strings"

// Field is one labelled optional value that passed its gates.
type Field struct {
	Label string
	Value string
}

func present(value string) bool {
	return strings.TrimSpace(value) != ""
}

func appendIf(fields []Field, visible bool, label, value string) []Field {
	if visible && present(value) {
		return append(fields, Field{Label: label, Value: value})
	}
	return fields
}

// CompanyFields returns the issuer contact lines to render, in display order.
func (d InvoiceDocument) CompanyFields() []Field {
	v := d.FieldVisibility
	var out []Field
	out = appendIf(out, v.CompanyEmail, "Email", d.Company.Email)
	out = appendIf(out, v.CompanyPhone, "Phone", d.Company.Phone)
	out = appendIf(out, v.CompanyAddress, "Address", d.Company.Address)
	out = appendIf(out, v.CompanyWebsite, "Website", d.Company.Website)
	return out
}

// ClientFields returns the recipient contact lines to render.
func (d InvoiceDocument) ClientFields() []Field {
	v := d.FieldVisibility
	var out []Field
	out = appendIf(out, v.ClientEmail, "Email", d.Client.Email)
	out = appendIf(out, v.ClientPhone, "Phone", d.Client.Phone)
	out = appendIf(out, v.ClientAddress, "Address", d.Client.Address)
	return out
}

// ShowPaymentDetails reports whether the payment details block is emitted.
// The block can render with zero lines when every sub-field is hidden.
func (d InvoiceDocument) ShowPaymentDetails() bool {
	return d.IncludeBankDetails && d.BankDetails != nil
}

// BankFields returns the payment detail lines, or nil when the block is off.
func (d InvoiceDocument) BankFields() []Field {
	if !d.ShowPaymentDetails() {
		return nil
	}
	v := d.FieldVisibility
	b := d.BankDetails
	var out []Field
	out = appendIf(out, v.BankAccountName, "Account Name", b.AccountName)
	out = appendIf(out, v.BankAccountNumber, "Account Number", b.AccountNumber)
	out = appendIf(out, v.BankName, "Bank Name", b.BankName)
	out = appendIf(out, v.BankBSB, "BSB", b.BSB)
	out = appendIf(out, v.BankSwiftCode, "SWIFT Code", b.SwiftCode)
	out = appendIf(out, v.BankIBAN, "IBAN", b.IBAN)
	return out
}

// VisibleInvoiceNumber returns the number when the include flag is on and it
// is non-empty.
func (d InvoiceDocument) VisibleInvoiceNumber() (string, bool) {
	if d.IncludeInvoiceNumber && present(d.InvoiceNumber) {
		return d.InvoiceNumber, true
	}
	return "", false
}

func (d InvoiceDocument) VisibleDueDate() (Date, bool) {
	if d.FieldVisibility.DueDate && d.DueDate != nil && !d.DueDate.IsZero() {
		return *d.DueDate, true
	}
	return Date{}, false
}

// ApplyTax is the single tax gate shared by totals and both renderers.
func (d InvoiceDocument) ApplyTax() bool {
	return d.IncludeTaxDetails && d.TaxDetails != nil
}

func (d InvoiceDocument) VisiblePaymentTerms() (string, bool) {
	if d.IncludePaymentTerms && present(d.PaymentTerms) {
		return d.PaymentTerms, true
	}
	return "", false
}

// VisibleNotes has no owning flag; presence alone decides.
func (d InvoiceDocument) VisibleNotes() (string, bool) {
	if present(d.Notes) {
		return d.Notes, true
	}
	return "", false
}
