package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency renders an amount as US dollars with grouping and two decimals,
// e.g. $1,234.50 or -$20.00.
func Currency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + "$" + printer.Sprintf("%.2f", rounded.InexactFloat64())
}

// Quantity prints the shortest representation, 1 or 2.5.
func Quantity(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Rate prints a tax rate the same way as a quantity.
func Rate(value float64) string {
	return Quantity(value)
}

// Date renders a civil date as M/D/YYYY. The zero date renders empty.
func Date(d invoicedomain.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format("1/2/2006")
}

// TaxLabel renders "GST (10%)". A blank tax name falls back to "Tax".
func TaxLabel(tax *invoicedomain.TaxDetails) string {
	if tax == nil {
		return ""
	}
	name := strings.TrimSpace(tax.TaxName)
	if name == "" {
		name = "Tax"
	}
	return name + " (" + Rate(tax.Rate) + "%)"
}
