package layout

import (
	"github.com/smallbiznis/invoicegen/internal/invoice/calc"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	"github.com/smallbiznis/invoicegen/internal/invoice/format"
	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
)

const (
	fontFamily = "helvetica"

	headerBandHeight = 45.0
	tableHeaderH     = 8.0
	maxDescription   = 50
	totalsWidth      = 60.0
	noteBoxHeight    = 12.0

	// ptToMM converts a font size to millimetres; average Helvetica glyphs
	// are about half an em wide.
	ptToMM       = 0.3528
	avgGlyphEm   = 0.5
	zebraFill    = templatedomain.Color("#f9fafb")
	ellipsis     = "..."
	footerOffset = 15.0
)

type engine struct {
	cfg    config
	style  templatedomain.Style
	doc    *Document
	y      float64
	totals calc.Totals
}

// Build lays out the invoice with the given style. It never fails: absent
// optional values are skipped.
func Build(doc invoicedomain.InvoiceDocument, style templatedomain.Style, opts ...Option) *Document {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &engine{
		cfg:   cfg,
		style: style,
		doc: &Document{
			PageWidth:  cfg.pageWidth,
			PageHeight: cfg.pageHeight,
			Margin:     cfg.margin,
			Pages:      []Page{{}},
		},
		y:      cfg.margin,
		totals: calc.ForDocument(doc),
	}

	e.header(doc)
	e.billTo(doc)
	e.table(doc)
	e.totalsBlock(doc)
	e.paymentDetails(doc)
	if terms, ok := doc.VisiblePaymentTerms(); ok {
		e.noteBox("Payment Terms:", terms, 35)
	}
	if notes, ok := doc.VisibleNotes(); ok {
		e.noteBox("Notes:", notes, 18)
	}
	e.footer()
	return e.doc
}

func (e *engine) contentWidth() float64 { return e.cfg.pageWidth - 2*e.cfg.margin }
func (e *engine) right() float64        { return e.cfg.pageWidth - e.cfg.margin }

func (e *engine) page() *Page { return &e.doc.Pages[len(e.doc.Pages)-1] }

func (e *engine) add(op Op) {
	p := e.page()
	p.Ops = append(p.Ops, op)
}

// ensure starts a new page when a block of height h would cross the bottom
// margin. It reports whether a break happened.
func (e *engine) ensure(h float64) bool {
	if e.y+h > e.cfg.pageHeight-e.cfg.margin {
		e.doc.Pages = append(e.doc.Pages, Page{})
		e.y = e.cfg.margin
		return true
	}
	return false
}

func (e *engine) text(x, y float64, s string, size float64, style FontStyle, color templatedomain.Color, align Align) {
	e.add(TextOp{X: x, Y: y, Text: s, Font: fontFamily, Size: size, Style: style, Color: color, Align: align})
}

func (e *engine) rect(x, y, w, h float64, fill templatedomain.Color) {
	e.add(RectOp{X: x, Y: y, W: w, H: h, Fill: fill})
}

func (e *engine) line(x1, y1, x2, y2, width float64, color templatedomain.Color) {
	e.add(LineOp{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: color})
}

func (e *engine) header(doc invoicedomain.InvoiceDocument) {
	p := e.style.Palette
	m := e.cfg.margin
	band := e.style.Decoration.HeaderBand
	if band {
		e.rect(0, 0, e.cfg.pageWidth, headerBandHeight, p.HeaderBg)
	}
	titleColor := e.style.HeaderTextColor()
	metaColor := e.style.HeaderMetaColor()

	e.text(m, e.y+8, doc.Company.Name, 18, StyleBold, titleColor, AlignLeft)
	companyY := e.y + 14
	for _, f := range doc.CompanyFields() {
		e.text(m, companyY, f.Label+": "+f.Value, 9, StyleNormal, metaColor, AlignLeft)
		companyY += 4
	}

	e.text(e.right(), e.y+8, "INVOICE", 24, StyleBold, titleColor, AlignRight)
	metaY := e.y + 16
	if number, ok := doc.VisibleInvoiceNumber(); ok {
		e.text(e.right(), metaY, "Invoice #: "+number, 9, StyleNormal, metaColor, AlignRight)
		metaY += 4
	}
	e.text(e.right(), metaY, "Date: "+format.Date(doc.InvoiceDate), 9, StyleNormal, metaColor, AlignRight)
	metaY += 4
	if due, ok := doc.VisibleDueDate(); ok {
		e.text(e.right(), metaY, "Due Date: "+format.Date(due), 9, StyleNormal, metaColor, AlignRight)
	}

	e.y = m + 35
	if band {
		e.y = m + 40
	}
	e.line(m, e.y, e.right(), e.y, 0.5, p.Border)
	e.y += 10
}

func (e *engine) billTo(doc invoicedomain.InvoiceDocument) {
	p := e.style.Palette
	m := e.cfg.margin

	e.text(m, e.y, "BILL TO", 10, StyleBold, p.Primary, AlignLeft)
	e.y += 6
	e.text(m, e.y, doc.Client.Name, 11, StyleBold, p.Text, AlignLeft)
	e.y += 5
	for _, f := range doc.ClientFields() {
		e.text(m, e.y, f.Value, 9, StyleNormal, p.LightText, AlignLeft)
		e.y += 4
	}
	e.y += 10
}

func (e *engine) columns() [4]float64 {
	w := e.contentWidth()
	return [4]float64{w * 0.5, w * 0.15, w * 0.15, w * 0.2}
}

func (e *engine) table(doc invoicedomain.InvoiceDocument) {
	p := e.style.Palette
	m := e.cfg.margin
	cols := e.columns()

	e.ensure(tableHeaderH + 2)
	e.rect(m, e.y, e.contentWidth(), tableHeaderH, p.TableHeaderBg)
	x := m + 2
	for i, label := range [4]string{"Description", "Qty", "Unit Price", "Total"} {
		e.text(x, e.y+5.5, label, 9, StyleBold, p.TableHeaderText, AlignLeft)
		x += cols[i]
	}
	e.y += tableHeaderH

	rowH := e.cfg.rowHeight
	for i, item := range doc.LineItems {
		e.ensure(rowH + 1)
		if i%2 == 0 {
			e.rect(m, e.y, e.contentWidth(), rowH, zebraFill)
		}
		baseline := e.y + rowH - 2
		cells := [4]string{
			truncate(item.Description, maxDescription),
			format.Quantity(item.Quantity),
			format.Currency(calc.FromFloat(item.UnitPrice)),
			format.Currency(calc.LineTotal(item)),
		}
		x = m + 2
		for c, cell := range cells {
			e.text(x, baseline, cell, 9, StyleNormal, p.Text, AlignLeft)
			x += cols[c]
		}
		page := e.page()
		page.Rows = append(page.Rows, i)
		e.y += rowH
	}

	e.line(m, e.y, e.right(), e.y, 0.3, p.Border)
	e.y += 10
}

func (e *engine) totalsBlock(doc invoicedomain.InvoiceDocument) {
	p := e.style.Palette
	e.ensure(30)
	labelX := e.right() - totalsWidth

	e.text(labelX, e.y, "Subtotal:", 10, StyleNormal, p.Text, AlignLeft)
	e.text(e.right(), e.y, format.Currency(e.totals.Subtotal), 10, StyleNormal, p.Text, AlignRight)
	e.y += 6
	if doc.ApplyTax() {
		e.text(labelX, e.y, format.TaxLabel(doc.TaxDetails)+":", 10, StyleNormal, p.Text, AlignLeft)
		e.text(e.right(), e.y, format.Currency(e.totals.TaxAmount), 10, StyleNormal, p.Text, AlignRight)
		e.y += 6
	}

	e.line(labelX-5, e.y, e.right(), e.y, 0.5, p.Primary)
	e.y += 4
	e.text(labelX, e.y, "Total:", 12, StyleBold, p.Primary, AlignLeft)
	e.text(e.right(), e.y, format.Currency(e.totals.Total), 12, StyleBold, p.Primary, AlignRight)
	e.y += 2
	e.line(labelX-5, e.y, e.right(), e.y, 0.5, p.Primary)
	e.y += 15
}

func (e *engine) paymentDetails(doc invoicedomain.InvoiceDocument) {
	if !doc.ShowPaymentDetails() {
		return
	}
	p := e.style.Palette
	m := e.cfg.margin

	e.ensure(40)
	e.text(m, e.y, "PAYMENT DETAILS", 10, StyleBold, p.Primary, AlignLeft)
	e.y += 6
	for _, f := range doc.BankFields() {
		e.text(m, e.y, f.Label+": "+f.Value, 9, StyleNormal, p.Text, AlignLeft)
		e.y += 4
	}
	e.y += 6
}

// noteBox paints a light band with a bold label and a single-line value
// starting valueOffset millimetres from the left margin.
func (e *engine) noteBox(label, value string, valueOffset float64) {
	p := e.style.Palette
	m := e.cfg.margin

	e.ensure(noteBoxHeight + 3)
	e.rect(m, e.y, e.contentWidth(), noteBoxHeight, zebraFill)
	e.text(m+3, e.y+5, label, 9, StyleBold, p.Text, AlignLeft)
	limit := maxChars(e.contentWidth()-valueOffset-3, 9)
	e.text(m+valueOffset, e.y+5, truncate(value, limit), 9, StyleNormal, p.LightText, AlignLeft)
	e.y += noteBoxHeight + 4
}

// footer is pinned to the last page regardless of where content ended.
func (e *engine) footer() {
	e.text(e.cfg.pageWidth/2, e.cfg.pageHeight-footerOffset, e.cfg.footer, 8, StyleNormal, e.style.Palette.LightText, AlignCenter)
}

// maxChars is the number of average glyphs of the given size that fit in width.
func maxChars(width, size float64) int {
	glyph := size * ptToMM * avgGlyphEm
	if glyph <= 0 || width <= 0 {
		return 0
	}
	return int(width / glyph)
}

// truncate keeps the first limit runes and appends an ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}
