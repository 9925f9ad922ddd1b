package layout

import (
	"fmt"
	"strings"
	"testing"
	"time"

	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
	"github.com/smallbiznis/invoicegen/internal/invoicetemplate/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styleOf(t *testing.T, id templatedomain.TemplateID) templatedomain.Style {
	t.Helper()
	style, ok := repository.Provide().FindByID(id)
	require.True(t, ok)
	return style
}

func minimalDoc(rows int) invoicedomain.InvoiceDocument {
	items := make([]invoicedomain.LineItem, rows)
	for i := range items {
		items[i] = invoicedomain.LineItem{Description: fmt.Sprintf("Item %d", i+1), Quantity: 1, UnitPrice: 10}
	}
	return invoicedomain.InvoiceDocument{
		Template:    templatedomain.TemplateProfessional,
		InvoiceDate: invoicedomain.NewDate(2024, time.March, 5),
		Company:     invoicedomain.CompanyInfo{Name: "Acme"},
		Client:      invoicedomain.ClientInfo{Name: "Globex"},
		LineItems:   items,
	}
}

func pageTexts(p Page) []string {
	var out []string
	for _, op := range p.Ops {
		if t, ok := op.(TextOp); ok {
			out = append(out, t.Text)
		}
	}
	return out
}

func findText(d *Document, text string) (TextOp, int, bool) {
	for i, p := range d.Pages {
		for _, op := range p.Ops {
			if t, ok := op.(TextOp); ok && t.Text == text {
				return t, i, true
			}
		}
	}
	return TextOp{}, -1, false
}

func TestScenarioDFortyRowsCapacityTwentyFive(t *testing.T) {
	// At this height the first page holds exactly 25 rows below the header.
	d := Build(minimalDoc(40), styleOf(t, templatedomain.TemplateProfessional), WithPageSize(A4Width, 283))

	require.Equal(t, 2, d.PageCount())
	rowPages := d.RowPages()
	require.Len(t, rowPages, 40)
	for i, page := range rowPages {
		if i < 25 {
			assert.Equal(t, 1, page, "row %d", i+1)
		} else {
			assert.Equal(t, 2, page, "row %d", i+1)
		}
	}
}

func TestRowsNeverStraddlePages(t *testing.T) {
	style := styleOf(t, templatedomain.TemplateProfessional)
	for _, n := range []int{0, 1, 26, 27, 28, 64, 65, 66, 120} {
		d := Build(minimalDoc(n), style)
		bottom := d.PageHeight - d.Margin

		next := 0
		for pi, p := range d.Pages {
			for _, row := range p.Rows {
				assert.Equal(t, next, row, "rows must be contiguous (n=%d page=%d)", n, pi+1)
				next++
			}
			for _, op := range p.Ops {
				if r, ok := op.(RectOp); ok && r.Y > 0 {
					assert.LessOrEqual(t, r.Y+r.H, bottom, "n=%d page=%d", n, pi+1)
				}
			}
		}
		assert.Equal(t, n, next)
	}
}

func TestA4RowCapacity(t *testing.T) {
	d := Build(minimalDoc(80), styleOf(t, templatedomain.TemplateProfessional))
	require.GreaterOrEqual(t, d.PageCount(), 3)
	assert.Len(t, d.Pages[0].Rows, 27)
	assert.Len(t, d.Pages[1].Rows, 38)
	assert.Len(t, d.Pages[2].Rows, 15)
}

func TestTableHeaderNotRepeated(t *testing.T) {
	d := Build(minimalDoc(40), styleOf(t, templatedomain.TemplateProfessional))
	require.Equal(t, 2, d.PageCount())
	assert.Contains(t, pageTexts(d.Pages[0]), "Description")
	assert.NotContains(t, pageTexts(d.Pages[1]), "Description")
}

func TestHeaderBandTemplates(t *testing.T) {
	d := Build(minimalDoc(1), styleOf(t, templatedomain.TemplateTech))
	first, ok := d.Pages[0].Ops[0].(RectOp)
	require.True(t, ok)
	assert.Equal(t, RectOp{X: 0, Y: 0, W: A4Width, H: 45, Fill: "#0d1117"}, first)

	name, _, ok := findText(d, "Acme")
	require.True(t, ok)
	assert.Equal(t, templatedomain.Color("#58a6ff"), name.Color)
	assert.Equal(t, 23.0, name.Y)

	sep := findLine(d.Pages[0], 0.5)
	assert.Equal(t, 55.0, sep.Y1)

	billTo, _, _ := findText(d, "BILL TO")
	assert.Equal(t, 65.0, billTo.Y)
}

func TestNoBandTemplates(t *testing.T) {
	d := Build(minimalDoc(1), styleOf(t, templatedomain.TemplateProfessional))
	for _, op := range d.Pages[0].Ops {
		if r, ok := op.(RectOp); ok {
			assert.NotEqual(t, 0.0, r.Y)
		}
	}
	name, _, _ := findText(d, "Acme")
	assert.Equal(t, templatedomain.Color("#1e40af"), name.Color)
	assert.Equal(t, 50.0, findLine(d.Pages[0], 0.5).Y1)
}

func findLine(p Page, width float64) LineOp {
	for _, op := range p.Ops {
		if l, ok := op.(LineOp); ok && l.Width == width {
			return l
		}
	}
	return LineOp{}
}

func TestHeaderMetaRightAligned(t *testing.T) {
	doc := invoicedomain.SampleInvoice(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	d := Build(doc, styleOf(t, templatedomain.TemplateProfessional))

	title, _, ok := findText(d, "INVOICE")
	require.True(t, ok)
	assert.Equal(t, AlignRight, title.Align)
	assert.Equal(t, 195.0, title.X)

	number, _, ok := findText(d, "Invoice #: INV-001")
	require.True(t, ok)
	assert.Equal(t, 31.0, number.Y)

	date, _, ok := findText(d, "Date: 1/20/2025")
	require.True(t, ok)
	assert.Equal(t, 35.0, date.Y)

	_, _, ok = findText(d, "Due Date: 2/19/2025")
	assert.True(t, ok)

	email, _, ok := findText(d, "Email: hello@sample.com")
	require.True(t, ok)
	assert.Equal(t, 29.0, email.Y)
	assert.Equal(t, AlignLeft, email.Align)
}

func TestScenarioATotals(t *testing.T) {
	doc := invoicedomain.SampleInvoice(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	d := Build(doc, styleOf(t, templatedomain.TemplateModern))
	texts := d.Texts()

	assert.Contains(t, texts, "$2,000.00")
	assert.Contains(t, texts, "GST (10%):")
	assert.Contains(t, texts, "$200.00")
	assert.Contains(t, texts, "$2,200.00")

	total, _, _ := findText(d, "$2,200.00")
	assert.Equal(t, StyleBold, total.Style)
	assert.Equal(t, 12.0, total.Size)
	assert.Equal(t, AlignRight, total.Align)
	assert.Equal(t, templatedomain.Color("#667eea"), total.Color)
}

func TestScenarioBNoTaxLine(t *testing.T) {
	doc := invoicedomain.SampleInvoice(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	doc.IncludeTaxDetails = false
	texts := Build(doc, styleOf(t, templatedomain.TemplateProfessional)).Texts()

	for _, s := range texts {
		assert.NotContains(t, s, "GST")
	}
	assert.NotContains(t, texts, "$2,200.00")
	assert.Contains(t, texts, "$2,000.00")
}

func TestScenarioCNoIBANLine(t *testing.T) {
	doc := invoicedomain.SampleInvoice(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	doc.BankDetails.IBAN = ""
	doc.FieldVisibility.BankIBAN = false
	texts := Build(doc, styleOf(t, templatedomain.TemplateProfessional)).Texts()

	assert.Contains(t, texts, "PAYMENT DETAILS")
	assert.Contains(t, texts, "Account Name: Sample Company Inc.")
	for _, s := range texts {
		assert.False(t, strings.HasPrefix(s, "IBAN"), s)
	}
}

func TestZebraRowsOnEvenIndexes(t *testing.T) {
	d := Build(minimalDoc(4), styleOf(t, templatedomain.TemplateProfessional))
	var zebra int
	for _, op := range d.Pages[0].Ops {
		if r, ok := op.(RectOp); ok && r.Fill == zebraFill {
			zebra++
			assert.Equal(t, DefaultRowH, r.H)
		}
	}
	assert.Equal(t, 2, zebra)
}

func TestDescriptionTruncated(t *testing.T) {
	doc := minimalDoc(1)
	doc.LineItems[0].Description = strings.Repeat("x", 60)
	texts := Build(doc, styleOf(t, templatedomain.TemplateProfessional)).Texts()
	assert.Contains(t, texts, strings.Repeat("x", 50)+"...")
}

func TestNotesAndTermsBounded(t *testing.T) {
	doc := minimalDoc(1)
	doc.IncludePaymentTerms = true
	doc.PaymentTerms = strings.Repeat("t", 300)
	doc.Notes = strings.Repeat("n", 300)
	d := Build(doc, styleOf(t, templatedomain.TemplateProfessional))

	var terms, notes string
	for _, s := range d.Texts() {
		switch {
		case strings.HasPrefix(s, "ttt"):
			terms = s
		case strings.HasPrefix(s, "nnn"):
			notes = s
		}
	}
	assert.True(t, strings.HasSuffix(terms, "..."))
	assert.True(t, strings.HasSuffix(notes, "..."))
	assert.Len(t, terms, maxChars(180-35-3, 9)+3)
	assert.Len(t, notes, maxChars(180-18-3, 9)+3)

	_, _, ok := findText(d, "Payment Terms:")
	assert.True(t, ok)
	_, _, ok = findText(d, "Notes:")
	assert.True(t, ok)
}

func TestTermsRequireIncludeFlag(t *testing.T) {
	doc := minimalDoc(1)
	doc.PaymentTerms = "Net 30"
	_, _, ok := findText(Build(doc, styleOf(t, templatedomain.TemplateProfessional)), "Payment Terms:")
	assert.False(t, ok)
}

func TestFooterPinnedToLastPage(t *testing.T) {
	d := Build(minimalDoc(40), styleOf(t, templatedomain.TemplateProfessional))
	require.Equal(t, 2, d.PageCount())

	footer, page, ok := findText(d, DefaultFooter)
	require.True(t, ok)
	assert.Equal(t, 1, page)
	assert.Equal(t, AlignCenter, footer.Align)
	assert.Equal(t, A4Width/2, footer.X)
	assert.Equal(t, A4Height-15, footer.Y)
	assert.NotContains(t, pageTexts(d.Pages[0]), DefaultFooter)
}

func TestCustomFooter(t *testing.T) {
	d := Build(minimalDoc(1), styleOf(t, templatedomain.TemplateProfessional), WithFooter("Merci"))
	_, _, ok := findText(d, "Merci")
	assert.True(t, ok)
}

func TestPaymentDetailsMovesWholeToNextPage(t *testing.T) {
	doc := invoicedomain.SampleInvoice(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	doc.LineItems = minimalDoc(25).LineItems
	d := Build(doc, styleOf(t, templatedomain.TemplateProfessional))

	heading, headingPage, ok := findText(d, "PAYMENT DETAILS")
	require.True(t, ok)
	_, lastLinePage, ok := findText(d, "SWIFT Code: SAMPAUS")
	require.True(t, ok)
	assert.Equal(t, headingPage, lastLinePage)
	assert.LessOrEqual(t, heading.Y+40, d.PageHeight-d.Margin)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	doc := minimalDoc(3)
	doc.LineItems[0].Description = strings.Repeat("y", 80)
	before := doc.LineItems[0].Description
	Build(doc, styleOf(t, templatedomain.TemplateProfessional))
	assert.Equal(t, before, doc.LineItems[0].Description)
}

func TestEveryTemplateLaysOut(t *testing.T) {
	doc := invoicedomain.SampleInvoice(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	for _, style := range repository.Provide().List() {
		d := Build(doc, style)
		assert.Equal(t, 1, d.PageCount(), style.ID)
		_, _, ok := findText(d, "INVOICE")
		assert.True(t, ok, style.ID)
	}
}
