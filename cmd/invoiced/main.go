package main

import (
	"github.com/smallbiznis/invoicegen/internal/clock"
	"github.com/smallbiznis/invoicegen/internal/config"
	"github.com/smallbiznis/invoicegen/internal/observability"
	"github.com/smallbiznis/invoicegen/internal/server"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		observability.Module,
		clock.Module,

		// HTTP surface; pulls in providers, templates and the invoice service.
		server.Module,
	)
	app.Run()
}
