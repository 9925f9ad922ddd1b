package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/smallbiznis/invoicegen/internal/clock"
	"github.com/smallbiznis/invoicegen/internal/config"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	"github.com/smallbiznis/invoicegen/internal/invoice/render"
	invoiceservice "github.com/smallbiznis/invoicegen/internal/invoice/service"
	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
	templaterepo "github.com/smallbiznis/invoicegen/internal/invoicetemplate/repository"
	templateservice "github.com/smallbiznis/invoicegen/internal/invoicetemplate/service"
	"github.com/smallbiznis/invoicegen/internal/logger"
	"github.com/smallbiznis/invoicegen/internal/providers/email"
	"github.com/smallbiznis/invoicegen/internal/providers/pdf"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const depsKey = "deps"

type deps struct {
	log       *zap.Logger
	cfg       config.Config
	clock     clock.Clock
	templates templatedomain.Service
	invoices  invoicedomain.Service
}

// setupDeps wires the same components the HTTP service uses, without fx.
func setupDeps(c *cli.Context) error {
	log, err := logger.New(c.String("log-level"), c.Bool("log-json"))
	if err != nil {
		return err
	}
	cfg := config.Load()
	clk := clock.New()

	holder, err := config.NewEmailTemplateHolder(cfg.EmailTemplatesPath, log)
	if err != nil {
		return err
	}

	templates := templateservice.NewService(templateservice.Params{
		Log:  log,
		Repo: templaterepo.Provide(),
	})
	invoices := invoiceservice.NewService(invoiceservice.ServiceParam{
		Log:            log,
		Config:         cfg,
		Templates:      templates,
		Renderer:       render.NewRenderer(render.WithFooter(cfg.InvoiceFooter)),
		PDF:            pdf.NewFromConfig(cfg),
		Email:          email.NewFromConfig(cfg, log),
		EmailTemplates: holder,
		Clock:          clk,
	})

	c.App.Metadata = map[string]any{depsKey: &deps{
		log:       log,
		cfg:       cfg,
		clock:     clk,
		templates: templates,
		invoices:  invoices,
	}}
	return nil
}

func depsFrom(c *cli.Context) *deps {
	return c.App.Metadata[depsKey].(*deps)
}

// readDocument loads a document from path, or stdin when path is "-".
func readDocument(path string, template string) (invoicedomain.InvoiceDocument, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return invoicedomain.InvoiceDocument{}, err
		}
		defer f.Close()
		r = f
	}
	doc, err := invoicedomain.DecodeDocument(r)
	if err != nil {
		return invoicedomain.InvoiceDocument{}, fmt.Errorf("%s: %w", path, err)
	}
	if template != "" {
		doc.Template, _ = templatedomain.ParseTemplateID(template)
	}
	return doc, nil
}

// writeOutput writes data to path, or stdout when path is "-".
func writeOutput(c *cli.Context, path string, data []byte) error {
	if path == "-" {
		_, err := c.App.Writer.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func ctxOf(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}
