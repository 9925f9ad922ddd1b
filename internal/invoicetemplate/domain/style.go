// Package domain contains the visual style model shared by the HTML renderer
// and the PDF layout engine.
package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TemplateID identifies one of the fixed invoice visual styles.
type TemplateID string

const (
	TemplateProfessional  TemplateID = "professional"
	TemplateModern        TemplateID = "modern"
	TemplateClassic       TemplateID = "classic"
	TemplateMinimal       TemplateID = "minimal"
	TemplateBold          TemplateID = "bold"
	TemplateElegant       TemplateID = "elegant"
	TemplateCorporate     TemplateID = "corporate"
	TemplateCreative      TemplateID = "creative"
	TemplateSimple        TemplateID = "simple"
	TemplateTech          TemplateID = "tech"
	TemplateLuxury        TemplateID = "luxury"
	TemplateStartup       TemplateID = "startup"
	TemplateRetro         TemplateID = "retro"
	TemplateNeon          TemplateID = "neon"
	TemplatePastel        TemplateID = "pastel"
	TemplateOcean         TemplateID = "ocean"
	TemplateForest        TemplateID = "forest"
	TemplateSunset        TemplateID = "sunset"
	TemplateMidnight      TemplateID = "midnight"
	TemplateCandy         TemplateID = "candy"
	TemplateIndustrial    TemplateID = "industrial"
	TemplateVintage       TemplateID = "vintage"
	TemplateFuturistic    TemplateID = "futuristic"
	TemplateMinimalistPro TemplateID = "minimalist-pro"
	TemplateColorful      TemplateID = "colorful"
	TemplateMonochrome    TemplateID = "monochrome"
	TemplateGradient      TemplateID = "gradient"
	TemplateGeometric     TemplateID = "geometric"
	TemplateOrganic       TemplateID = "organic"
	TemplateSwiss         TemplateID = "swiss"

	// DefaultTemplate is used whenever a requested template is unknown.
	DefaultTemplate = TemplateProfessional
)

var allTemplates = []TemplateID{
	TemplateProfessional,
	TemplateModern,
	TemplateClassic,
	TemplateMinimal,
	TemplateBold,
	TemplateElegant,
	TemplateCorporate,
	TemplateCreative,
	TemplateSimple,
	TemplateTech,
	TemplateLuxury,
	TemplateStartup,
	TemplateRetro,
	TemplateNeon,
	TemplatePastel,
	TemplateOcean,
	TemplateForest,
	TemplateSunset,
	TemplateMidnight,
	TemplateCandy,
	TemplateIndustrial,
	TemplateVintage,
	TemplateFuturistic,
	TemplateMinimalistPro,
	TemplateColorful,
	TemplateMonochrome,
	TemplateGradient,
	TemplateGeometric,
	TemplateOrganic,
	TemplateSwiss,
}

// AllTemplates returns every template id in catalog order.
func AllTemplates() []TemplateID {
	out := make([]TemplateID, len(allTemplates))
	copy(out, allTemplates)
	return out
}

// ParseTemplateID normalizes raw and reports whether it names a known template.
func ParseTemplateID(raw string) (TemplateID, bool) {
	id := TemplateID(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range allTemplates {
		if known == id {
			return id, true
		}
	}
	return id, false
}

// Valid reports whether id is part of the closed template set.
func (id TemplateID) Valid() bool {
	_, ok := ParseTemplateID(string(id))
	return ok
}

func (id TemplateID) String() string { return string(id) }

// Color is a #rrggbb hex color.
type Color string

// RGB decodes the color. Malformed values decode to black.
func (c Color) RGB() (r, g, b int) {
	hex := strings.TrimPrefix(strings.TrimSpace(string(c)), "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func (c Color) String() string { return strings.ToLower(string(c)) }

// Palette is the canonical color record of a template. Both renderers read
// their colors from here.
type Palette struct {
	Primary         Color `json:"primary"`
	Secondary       Color `json:"secondary"`
	HeaderBg        Color `json:"headerBg"`
	HeaderText      Color `json:"headerText"`
	TableHeaderBg   Color `json:"tableHeaderBg"`
	TableHeaderText Color `json:"tableHeaderText"`
	Text            Color `json:"text"`
	LightText       Color `json:"lightText"`
	Border          Color `json:"border"`
	Accent          Color `json:"accent"`
}

// RuleStyle is the decorative line under the header block.
type RuleStyle string

const (
	RuleNone   RuleStyle = "none"
	RuleSolid  RuleStyle = "solid"
	RuleDouble RuleStyle = "double"
	RuleDashed RuleStyle = "dashed"
)

// Typography carries the font cues of a template.
type Typography struct {
	FontStack      string `json:"fontStack"`
	HeadingWeight  int    `json:"headingWeight"`
	TitleTracking  int    `json:"titleTracking"`
	Italic         bool   `json:"italic"`
	Uppercase      bool   `json:"uppercase"`
	BaseFontSizePx int    `json:"baseFontSizePx"`
}

// Decoration carries layout-level visual traits.
type Decoration struct {
	// HeaderBand paints a full width filled band behind the header block.
	HeaderBand  bool      `json:"headerBand"`
	HeaderRule  RuleStyle `json:"headerRule"`
	RuleWidthPx int       `json:"ruleWidthPx"`
	RadiusPx    int       `json:"radiusPx"`
	PageBg      Color     `json:"pageBg,omitempty"`
	ZebraRows   bool      `json:"zebraRows"`
	NotesBg     Color     `json:"notesBg"`
}

// Style is the resolved visual configuration of one template.
type Style struct {
	ID          TemplateID `json:"id"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Palette     Palette    `json:"palette"`
	Typography  Typography `json:"typography"`
	Decoration  Decoration `json:"decoration"`
}

// HeaderTextColor is the text color used inside the header block.
func (s Style) HeaderTextColor() Color {
	if s.Decoration.HeaderBand {
		return s.Palette.HeaderText
	}
	return s.Palette.Primary
}

// HeaderMetaColor is the color of the secondary header lines.
func (s Style) HeaderMetaColor() Color {
	if s.Decoration.HeaderBand {
		return s.Palette.HeaderText
	}
	return s.Palette.LightText
}

// UnmarshalJSON accepts any string; unknown values are kept verbatim and
// resolved to the default style at render time.
func (id *TemplateID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("template id: %w", err)
	}
	parsed, _ := ParseTemplateID(raw)
	*id = parsed
	return nil
}
