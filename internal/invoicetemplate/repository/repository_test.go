package repository

import (
	"regexp"
	"testing"

	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestCatalogCoversEveryTemplate(t *testing.T) {
	r := Provide()
	list := r.List()
	require.Len(t, list, len(templatedomain.AllTemplates()))

	for i, id := range templatedomain.AllTemplates() {
		assert.Equal(t, id, list[i].ID)
		style, ok := r.FindByID(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, style.Label)
		assert.NotEmpty(t, style.Description)
		assert.NotEmpty(t, style.Typography.FontStack)
	}
}

func TestCatalogColorsAreHex(t *testing.T) {
	for _, style := range Provide().List() {
		p := style.Palette
		for _, c := range []templatedomain.Color{
			p.Primary, p.Secondary, p.HeaderBg, p.HeaderText, p.TableHeaderBg,
			p.TableHeaderText, p.Text, p.LightText, p.Border, p.Accent,
		} {
			assert.Regexp(t, hexColor, string(c), style.ID)
		}
	}
}

func TestHeaderBandSubset(t *testing.T) {
	banded := map[templatedomain.TemplateID]bool{}
	for _, style := range Provide().List() {
		if style.Decoration.HeaderBand {
			banded[style.ID] = true
		}
	}
	assert.Len(t, banded, 22)
	for _, id := range []templatedomain.TemplateID{
		templatedomain.TemplateProfessional,
		templatedomain.TemplateClassic,
		templatedomain.TemplateMinimal,
		templatedomain.TemplateElegant,
		templatedomain.TemplateCreative,
		templatedomain.TemplateSimple,
		templatedomain.TemplateMinimalistPro,
		templatedomain.TemplateSwiss,
	} {
		assert.False(t, banded[id], id)
	}
}

func TestFindDefault(t *testing.T) {
	r := Provide()
	assert.Equal(t, templatedomain.TemplateProfessional, r.FindDefault().ID)

	_, ok := r.FindByID("nope")
	assert.False(t, ok)
}

func TestListReturnsCopy(t *testing.T) {
	r := Provide()
	list := r.List()
	list[0].Label = "changed"
	assert.Equal(t, "Professional", r.List()[0].Label)
}
