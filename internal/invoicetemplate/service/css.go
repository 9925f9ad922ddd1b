package service

import (
	"fmt"
	"regexp"
	"strings"

	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
)

var (
	hexColorPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	fontFamilyFilter = regexp.MustCompile(`^[A-Za-z0-9 ,'\-]+$`)
)

const (
	fallbackColor = "#111827"
	fallbackFont  = "Arial, sans-serif"
)

// buildStyleSheet turns a style into the stylesheet embedded by the HTML
// renderer. Colors are emitted verbatim from the palette.
func buildStyleSheet(style templatedomain.Style) string {
	p := style.Palette
	t := style.Typography
	d := style.Decoration

	pageBg := "#ffffff"
	if d.PageBg != "" {
		pageBg = sanitizeColor(d.PageBg)
	}
	baseSize := t.BaseFontSizePx
	if baseSize <= 0 {
		baseSize = 12
	}
	weight := t.HeadingWeight
	if weight <= 0 {
		weight = 700
	}

	var b strings.Builder
	b.WriteString("* { box-sizing: border-box; margin: 0; padding: 0; }\n")
	fmt.Fprintf(&b, "body { font-family: %s; font-size: %dpx; color: %s; background: %s; padding: 40px; line-height: 1.5; }\n",
		sanitizeFont(t.FontStack), baseSize, sanitizeColor(p.Text), pageBg)
	b.WriteString(".invoice { max-width: 800px; margin: 0 auto; }\n")

	fmt.Fprintf(&b, ".header { display: flex; justify-content: space-between; align-items: flex-start; padding: 24px; margin-bottom: 30px;%s%s }\n",
		headerBackground(style), headerRule(style))
	fmt.Fprintf(&b, ".company-info h1 { font-size: 26px; font-weight: %d; color: %s;%s }\n",
		weight, sanitizeColor(style.HeaderTextColor()), textTransform(t))
	fmt.Fprintf(&b, ".company-info p { font-size: 11px; color: %s; margin: 2px 0; }\n", sanitizeColor(style.HeaderMetaColor()))
	fmt.Fprintf(&b, ".invoice-title { text-align: right; }\n")
	fmt.Fprintf(&b, ".invoice-title h2 { font-size: 32px; font-weight: %d; color: %s; letter-spacing: %dpx;%s%s }\n",
		weight, sanitizeColor(style.HeaderTextColor()), t.TitleTracking, textTransform(t), fontStyle(t))
	fmt.Fprintf(&b, ".invoice-meta p { font-size: 11px; color: %s; margin: 2px 0; }\n", sanitizeColor(style.HeaderMetaColor()))

	b.WriteString(".section { margin-bottom: 24px; }\n")
	fmt.Fprintf(&b, ".section-title { font-size: 12px; font-weight: %d; color: %s; text-transform: uppercase; margin-bottom: 8px; }\n",
		weight, sanitizeColor(p.Primary))
	fmt.Fprintf(&b, ".client-name { font-weight: 700; color: %s; }\n", sanitizeColor(p.Text))
	fmt.Fprintf(&b, ".section p { color: %s; }\n", sanitizeColor(p.LightText))

	fmt.Fprintf(&b, "table.items { width: 100%%; border-collapse: collapse; margin-bottom: 24px;%s }\n", radius(d.RadiusPx))
	fmt.Fprintf(&b, "table.items th { background: %s; color: %s; padding: 10px; text-align: left; font-size: 11px; font-weight: %d; }\n",
		sanitizeColor(p.TableHeaderBg), sanitizeColor(p.TableHeaderText), weight)
	fmt.Fprintf(&b, "table.items td { padding: 10px; border-bottom: 1px solid %s; }\n", sanitizeColor(p.Border))
	if d.ZebraRows {
		b.WriteString("table.items tbody tr:nth-child(odd) { background: #f9fafb; }\n")
	}
	b.WriteString("table.items .num { text-align: right; }\n")

	b.WriteString(".totals { margin-left: auto; width: 280px; margin-bottom: 24px; }\n")
	b.WriteString(".totals-row { display: flex; justify-content: space-between; padding: 6px 0; }\n")
	fmt.Fprintf(&b, ".grand-total { font-size: 16px; font-weight: 700; color: %s; border-top: 2px solid %s; border-bottom: 2px solid %s; margin-top: 6px; }\n",
		sanitizeColor(p.Primary), sanitizeColor(p.Primary), sanitizeColor(p.Primary))

	fmt.Fprintf(&b, ".payment-details p { color: %s; margin: 2px 0; }\n", sanitizeColor(p.Text))
	notesBg := templatedomain.Color("#f9fafb")
	if d.NotesBg != "" {
		notesBg = d.NotesBg
	}
	fmt.Fprintf(&b, ".notes { background: %s; color: %s; padding: 12px; margin-bottom: 12px;%s }\n",
		sanitizeColor(notesBg), sanitizeColor(p.LightText), radius(d.RadiusPx))
	fmt.Fprintf(&b, ".notes strong { color: %s; }\n", sanitizeColor(p.Text))
	fmt.Fprintf(&b, ".footer { text-align: center; font-size: 10px; color: %s; margin-top: 40px; padding-top: 16px; border-top: 1px solid %s; }\n",
		sanitizeColor(p.LightText), sanitizeColor(p.Border))
	b.WriteString("@media print { body { padding: 0; } }\n")
	return b.String()
}

func headerBackground(style templatedomain.Style) string {
	if !style.Decoration.HeaderBand {
		return ""
	}
	return fmt.Sprintf(" background: %s;%s", sanitizeColor(style.Palette.HeaderBg), radius(style.Decoration.RadiusPx))
}

func headerRule(style templatedomain.Style) string {
	d := style.Decoration
	width := d.RuleWidthPx
	if width <= 0 {
		width = 1
	}
	color := sanitizeColor(style.Palette.Border)
	if d.HeaderBand {
		color = sanitizeColor(style.Palette.Accent)
	}
	switch d.HeaderRule {
	case templatedomain.RuleSolid, templatedomain.RuleDouble, templatedomain.RuleDashed:
		return fmt.Sprintf(" border-bottom: %dpx %s %s;", width, d.HeaderRule, color)
	default:
		return ""
	}
}

func textTransform(t templatedomain.Typography) string {
	if t.Uppercase {
		return " text-transform: uppercase;"
	}
	return ""
}

func fontStyle(t templatedomain.Typography) string {
	if t.Italic {
		return " font-style: italic;"
	}
	return ""
}

func radius(px int) string {
	if px <= 0 {
		return ""
	}
	return fmt.Sprintf(" border-radius: %dpx;", px)
}

func sanitizeColor(value templatedomain.Color) string {
	trimmed := strings.TrimSpace(string(value))
	if hexColorPattern.MatchString(trimmed) {
		return strings.ToLower(trimmed)
	}
	return fallbackColor
}

func sanitizeFont(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !fontFamilyFilter.MatchString(trimmed) {
		return fallbackFont
	}
	return trimmed
}
