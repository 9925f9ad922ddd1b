package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/smallbiznis/invoicegen/internal/invoice/layout"
	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
)

type Option func(*GofpdfProvider)

// WithCompression toggles stream compression. It is on by default.
func WithCompression(on bool) Option {
	return func(p *GofpdfProvider) { p.compress = on }
}

// GofpdfProvider replays layout operations onto gofpdf using the core
// Helvetica font, so no font files are needed at runtime.
type GofpdfProvider struct {
	compress bool
}

func New(opts ...Option) Provider {
	p := &GofpdfProvider{compress: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *GofpdfProvider) Render(ctx context.Context, doc *layout.Document, meta Metadata) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrRenderFailed)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: doc.PageWidth, Ht: doc.PageHeight},
	})
	pdf.SetMargins(doc.Margin, doc.Margin, doc.Margin)
	pdf.SetAutoPageBreak(false, doc.Margin)
	pdf.SetCompression(p.compress)
	applyMetadata(pdf, meta)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			switch o := op.(type) {
			case layout.RectOp:
				setFill(pdf, o.Fill)
				pdf.Rect(o.X, o.Y, o.W, o.H, "F")
			case layout.LineOp:
				setDraw(pdf, o.Color)
				pdf.SetLineWidth(o.Width)
				pdf.Line(o.X1, o.Y1, o.X2, o.Y2)
			case layout.TextOp:
				drawText(pdf, tr, o)
			}
		}
		if pdf.Err() {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

func applyMetadata(pdf *gofpdf.Fpdf, meta Metadata) {
	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	if meta.Subject != "" {
		pdf.SetSubject(meta.Subject, true)
	}
	if meta.Creator != "" {
		pdf.SetCreator(meta.Creator, true)
	}
	if !meta.CreatedAt.IsZero() {
		pdf.SetCreationDate(meta.CreatedAt)
	}
}

func drawText(pdf *gofpdf.Fpdf, tr func(string) string, o layout.TextOp) {
	pdf.SetFont(o.Font, string(o.Style), o.Size)
	r, g, b := o.Color.RGB()
	pdf.SetTextColor(r, g, b)

	text := tr(o.Text)
	x := o.X
	switch o.Align {
	case layout.AlignRight:
		x -= pdf.GetStringWidth(text)
	case layout.AlignCenter:
		x -= pdf.GetStringWidth(text) / 2
	}
	pdf.Text(x, o.Y, text)
}

func setFill(pdf *gofpdf.Fpdf, c templatedomain.Color) {
	r, g, b := c.RGB()
	pdf.SetFillColor(r, g, b)
}

func setDraw(pdf *gofpdf.Fpdf, c templatedomain.Color) {
	r, g, b := c.RGB()
	pdf.SetDrawColor(r, g, b)
}
