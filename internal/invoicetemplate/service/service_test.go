package service

import (
	"strings"
	"testing"

	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
	"github.com/smallbiznis/invoicegen/internal/invoicetemplate/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestService(log *zap.Logger) templatedomain.Service {
	return NewService(Params{Log: log, Repo: repository.Provide()})
}

func TestResolveKnownTemplate(t *testing.T) {
	svc := newTestService(zap.NewNop())
	style := svc.Resolve(templatedomain.TemplateTech)
	assert.Equal(t, templatedomain.TemplateTech, style.ID)
	assert.Equal(t, templatedomain.Color("#0d1117"), style.Palette.HeaderBg)
}

func TestResolveNormalizesCase(t *testing.T) {
	svc := newTestService(zap.NewNop())
	assert.Equal(t, templatedomain.TemplateNeon, svc.Resolve(" NEON ").ID)
}

func TestResolveUnknownFallsBackWithWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	svc := newTestService(zap.New(core))

	style := svc.Resolve("does-not-exist")
	assert.Equal(t, svc.Resolve(templatedomain.TemplateProfessional), style)

	entries := logs.FilterMessage("unknown invoice template, using default").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "does-not-exist", entries[0].ContextMap()["template"])
}

func TestLookup(t *testing.T) {
	svc := newTestService(zap.NewNop())
	_, ok := svc.Lookup("does-not-exist")
	assert.False(t, ok)

	style, ok := svc.Lookup(templatedomain.TemplateSwiss)
	require.True(t, ok)
	assert.Equal(t, "Swiss", style.Label)
}

func TestCatalogOrder(t *testing.T) {
	svc := newTestService(zap.NewNop())
	catalog := svc.Catalog()
	require.Len(t, catalog, 30)
	assert.Equal(t, templatedomain.TemplateProfessional, catalog[0].ID)
	assert.Equal(t, templatedomain.TemplateSwiss, catalog[29].ID)
}

func TestStyleSheetUsesPaletteColors(t *testing.T) {
	svc := newTestService(zap.NewNop())
	for _, style := range svc.Catalog() {
		css := svc.StyleSheet(style)
		assert.Contains(t, css, string(style.Palette.TableHeaderBg), style.ID)
		assert.Contains(t, css, string(style.Palette.TableHeaderText), style.ID)
		assert.Contains(t, css, string(style.Palette.Primary), style.ID)
		if style.Decoration.HeaderBand {
			assert.Contains(t, css, "background: "+string(style.Palette.HeaderBg), style.ID)
		}
	}
}

func TestStyleSheetDeterministic(t *testing.T) {
	svc := newTestService(zap.NewNop())
	style := svc.Resolve(templatedomain.TemplateClassic)
	assert.Equal(t, svc.StyleSheet(style), svc.StyleSheet(style))
	assert.Contains(t, svc.StyleSheet(style), "double")
	assert.Contains(t, svc.StyleSheet(style), "Georgia")
}

func TestStyleSheetSanitizesInput(t *testing.T) {
	style := templatedomain.Style{
		Palette:    templatedomain.Palette{Primary: "red;}</style><script>"},
		Typography: templatedomain.Typography{FontStack: "x;}</style>"},
	}
	css := buildStyleSheet(style)
	assert.False(t, strings.Contains(css, "<script>"))
	assert.False(t, strings.Contains(css, "</style>"))
	assert.Contains(t, css, fallbackColor)
	assert.Contains(t, css, fallbackFont)
}
