package providers

import (
	"github.com/smallbiznis/invoicegen/internal/providers/email"
	"github.com/smallbiznis/invoicegen/internal/providers/pdf"
	"go.uber.org/fx"
)

var Module = fx.Module("providers",
	email.Module,
	pdf.Module,
)
