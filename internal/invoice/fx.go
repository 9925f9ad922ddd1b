package invoice

import (
	"github.com/smallbiznis/invoicegen/internal/config"
	"github.com/smallbiznis/invoicegen/internal/invoice/render"
	"github.com/smallbiznis/invoicegen/internal/invoice/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("invoice.service",
	fx.Provide(provideRenderer),
	fx.Provide(provideEmailTemplates),
	fx.Provide(service.NewService),
)

func provideRenderer(cfg config.Config) render.Renderer {
	return render.NewRenderer(render.WithFooter(cfg.InvoiceFooter))
}

func provideEmailTemplates(cfg config.Config, log *zap.Logger) (*config.EmailTemplateHolder, error) {
	return config.NewEmailTemplateHolder(cfg.EmailTemplatesPath, log)
}
