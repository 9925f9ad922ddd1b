package layout

const (
	A4Width       = 210.0
	A4Height      = 297.0
	DefaultMargin = 15.0
	DefaultRowH   = 7.0
	DefaultFooter = "Thank you for your business!"
)

// Option configures Build.
type Option func(*config)

type config struct {
	pageWidth  float64
	pageHeight float64
	margin     float64
	rowHeight  float64
	footer     string
}

func defaultConfig() config {
	return config{
		pageWidth:  A4Width,
		pageHeight: A4Height,
		margin:     DefaultMargin,
		rowHeight:  DefaultRowH,
		footer:     DefaultFooter,
	}
}

// WithPageSize sets a custom page size in millimetres. Non-positive values
// are ignored.
func WithPageSize(width, height float64) Option {
	return func(c *config) {
		if width > 0 && height > 0 {
			c.pageWidth = width
			c.pageHeight = height
		}
	}
}

// WithMargin sets the uniform page margin in millimetres.
func WithMargin(margin float64) Option {
	return func(c *config) {
		if margin >= 0 {
			c.margin = margin
		}
	}
}

// WithRowHeight sets the height of one line item row.
func WithRowHeight(h float64) Option {
	return func(c *config) {
		if h > 0 {
			c.rowHeight = h
		}
	}
}

// WithFooter replaces the closing line. Blank values keep the default.
func WithFooter(text string) Option {
	return func(c *config) {
		if text != "" {
			c.footer = text
		}
	}
}
