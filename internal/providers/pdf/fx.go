package pdf

import (
	"github.com/smallbiznis/invoicegen/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("providers.pdf",
	fx.Provide(NewFromConfig),
)

// NewFromConfig builds the gofpdf provider with the configured stream compression.
func NewFromConfig(cfg config.Config) Provider {
	return New(WithCompression(cfg.PDFCompress))
}
