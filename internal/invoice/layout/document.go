// Package layout places an invoice onto fixed-size pages as vector drawing
// operations. It does not produce PDF bytes; see internal/providers/pdf.
package layout

import templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"

// Align anchors a text run on its X coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// FontStyle follows the PDF core font style letters.
type FontStyle string

const (
	StyleNormal FontStyle = ""
	StyleBold   FontStyle = "B"
)

// Op is one drawing operation on a page. Coordinates are in millimetres
// from the top-left corner.
type Op interface {
	op()
}

// RectOp is a filled rectangle.
type RectOp struct {
	X, Y, W, H float64
	Fill       templatedomain.Color
}

// LineOp is a stroked straight line.
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          templatedomain.Color
}

// TextOp is a single line of text placed at a baseline.
type TextOp struct {
	X, Y  float64
	Text  string
	Font  string
	Size  float64
	Style FontStyle
	Color templatedomain.Color
	Align Align
}

func (RectOp) op() {}
func (LineOp) op() {}
func (TextOp) op() {}

// Page holds the operations of one page in paint order.
type Page struct {
	Ops []Op
	// Rows lists the line item indexes placed on this page.
	Rows []int
}

// Document is the finished layout of one invoice.
type Document struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	Pages      []Page
}

func (d *Document) PageCount() int { return len(d.Pages) }

// RowPages maps each line item index to the 1-based page it was placed on.
func (d *Document) RowPages() []int {
	total := 0
	for _, p := range d.Pages {
		total += len(p.Rows)
	}
	out := make([]int, total)
	for pageIdx, p := range d.Pages {
		for _, row := range p.Rows {
			if row >= 0 && row < total {
				out[row] = pageIdx + 1
			}
		}
	}
	return out
}

// Texts returns every text run in document order. Handy for assertions and
// plain-text extraction.
func (d *Document) Texts() []string {
	var out []string
	for _, p := range d.Pages {
		for _, op := range p.Ops {
			if t, ok := op.(TextOp); ok {
				out = append(out, t.Text)
			}
		}
	}
	return out
}
