package service

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/smallbiznis/invoicegen/internal/clock"
	"github.com/smallbiznis/invoicegen/internal/config"
	"github.com/smallbiznis/invoicegen/internal/invoice/calc"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	invoiceformat "github.com/smallbiznis/invoicegen/internal/invoice/format"
	"github.com/smallbiznis/invoicegen/internal/invoice/layout"
	"github.com/smallbiznis/invoicegen/internal/invoice/render"
	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
	"github.com/smallbiznis/invoicegen/internal/observability/logger"
	"github.com/smallbiznis/invoicegen/internal/observability/metrics"
	"github.com/smallbiznis/invoicegen/internal/providers/email"
	"github.com/smallbiznis/invoicegen/internal/providers/pdf"
	"github.com/smallbiznis/invoicegen/internal/ratelimit"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const pdfCreator = "invoicegen"

type ServiceParam struct {
	fx.In

	Log            *zap.Logger
	Config         config.Config
	Templates      templatedomain.Service
	Renderer       render.Renderer
	PDF            pdf.Provider
	Email          email.Provider
	EmailTemplates *config.EmailTemplateHolder
	Clock          clock.Clock              `optional:"true"`
	Metrics        *metrics.Metrics         `optional:"true"`
	Pipeline       *metrics.PipelineMetrics `optional:"true"`
	LayoutOptions  []layout.Option          `optional:"true"`
	Limiter        ratelimit.Limiter        `optional:"true"`
}

type Service struct {
	log *zap.Logger

	templates      templatedomain.Service
	renderer       render.Renderer
	pdf            pdf.Provider
	email          email.Provider
	emailTemplates *config.EmailTemplateHolder
	clock          clock.Clock
	metrics        *metrics.Metrics
	pipeline       *metrics.PipelineMetrics
	validate       *validator.Validate
	tracer         trace.Tracer
	layoutOpts     []layout.Option
	limiter        ratelimit.Limiter
}

func NewService(p ServiceParam) invoicedomain.Service {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	clk := p.Clock
	if clk == nil {
		clk = clock.New()
	}
	holder := p.EmailTemplates
	if holder == nil {
		holder = config.NewStaticEmailTemplateHolder(config.DefaultEmailTemplates())
	}

	layoutOpts := []layout.Option{layout.WithFooter(p.Config.InvoiceFooter)}
	layoutOpts = append(layoutOpts, p.LayoutOptions...)

	return &Service{
		log:            log.Named("invoice.service"),
		templates:      p.Templates,
		renderer:       p.Renderer,
		pdf:            p.PDF,
		email:          p.Email,
		emailTemplates: holder,
		clock:          clk,
		metrics:        p.Metrics,
		pipeline:       p.Pipeline,
		limiter:        p.Limiter,
		validate:       newValidator(),
		tracer:         otel.Tracer("invoicegen/invoice"),
		layoutOpts:     layoutOpts,
	}
}

func (s *Service) RenderHTML(ctx context.Context, doc invoicedomain.InvoiceDocument) (string, error) {
	ctx, span := s.startSpan(ctx, "invoice.RenderHTML", doc)
	defer span.End()

	html, err := s.renderHTML(ctx, doc)
	if err != nil {
		s.fail(ctx, span, metrics.StageHTML, err)
		return "", err
	}
	return html, nil
}

func (s *Service) renderHTML(ctx context.Context, doc invoicedomain.InvoiceDocument) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	start := time.Now()
	defer func() { s.pipeline.ObserveStage(metrics.StageHTML, time.Since(start)) }()

	style := s.templates.Resolve(doc.Template)
	html, err := s.renderer.RenderHTML(render.RenderInput{
		Document:   doc,
		Style:      style,
		StyleSheet: s.templates.StyleSheet(style),
		Totals:     calc.ForDocument(doc),
	})
	if err != nil {
		return "", err
	}
	s.pipeline.ObserveLineItems(len(doc.LineItems))
	s.metrics.RecordRender(ctx, "html", style.ID.String())
	return html, nil
}

func (s *Service) RenderPDF(ctx context.Context, doc invoicedomain.InvoiceDocument) (invoicedomain.PDFResult, error) {
	ctx, span := s.startSpan(ctx, "invoice.RenderPDF", doc)
	defer span.End()

	result, err := s.renderPDF(ctx, doc)
	if err != nil {
		s.fail(ctx, span, metrics.StagePDF, err)
		return invoicedomain.PDFResult{}, err
	}
	span.SetAttributes(attribute.Int("invoice.pages", result.Pages))
	return result, nil
}

func (s *Service) renderPDF(ctx context.Context, doc invoicedomain.InvoiceDocument) (invoicedomain.PDFResult, error) {
	if err := ctx.Err(); err != nil {
		return invoicedomain.PDFResult{}, err
	}
	style := s.templates.Resolve(doc.Template)

	start := time.Now()
	laidOut := layout.Build(doc, style, s.layoutOpts...)
	s.pipeline.ObserveStage(metrics.StageLayout, time.Since(start))

	now := s.clock.Now()
	start = time.Now()
	data, err := s.pdf.Render(ctx, laidOut, pdf.Metadata{
		Title:     pdfTitle(doc),
		Author:    strings.TrimSpace(doc.Company.Name),
		Subject:   "Invoice",
		Creator:   pdfCreator,
		CreatedAt: now,
	})
	s.pipeline.ObserveStage(metrics.StagePDF, time.Since(start))
	if err != nil {
		if ctx.Err() != nil {
			return invoicedomain.PDFResult{}, ctx.Err()
		}
		return invoicedomain.PDFResult{}, fmt.Errorf("%w: %v", invoicedomain.ErrRenderFailed, err)
	}

	pages := laidOut.PageCount()
	s.pipeline.ObservePages(pages)
	s.pipeline.ObserveLineItems(len(doc.LineItems))
	s.metrics.RecordRender(ctx, "pdf", style.ID.String())
	s.metrics.RecordPDFPages(ctx, style.ID.String(), pages)

	logger.WithDocument(s.log, doc.InvoiceNumber, style.ID.String()).Debug("invoice pdf generated",
		zap.Int("pages", pages),
		zap.Int("bytes", len(data)),
	)

	return invoicedomain.PDFResult{
		Bytes:    data,
		Filename: invoiceformat.Filename(doc.Company.Name, doc.InvoiceNumber, now),
		Pages:    pages,
	}, nil
}

func (s *Service) ExportBase64(ctx context.Context, doc invoicedomain.InvoiceDocument) (invoicedomain.Base64Export, error) {
	ctx, span := s.startSpan(ctx, "invoice.ExportBase64", doc)
	defer span.End()

	result, err := s.renderPDF(ctx, doc)
	if err != nil {
		s.fail(ctx, span, metrics.StagePDF, err)
		return invoicedomain.Base64Export{}, err
	}
	return invoicedomain.Base64Export{
		Filename: result.Filename,
		DataURI:  invoiceformat.DataURI(result.Bytes),
		Pages:    result.Pages,
	}, nil
}

func (s *Service) Preview(ctx context.Context, id templatedomain.TemplateID) (string, error) {
	style, ok := s.templates.Lookup(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", invoicedomain.ErrTemplateNotFound, id)
	}
	doc := invoicedomain.SampleInvoice(s.clock.Now())
	doc.Template = style.ID
	return s.RenderHTML(ctx, doc)
}

func (s *Service) startSpan(ctx context.Context, name string, doc invoicedomain.InvoiceDocument) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("invoice.template", doc.Template.String()),
		attribute.Int("invoice.line_items", len(doc.LineItems)),
	))
}

func (s *Service) fail(ctx context.Context, span trace.Span, stage string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, metrics.ClassifyReason(err))
	s.pipeline.IncStageError(stage, err)
	s.metrics.RecordRenderFailure(ctx, stage, metrics.ClassifyReason(err))
	logger.WithContext(ctx, s.log).Error("invoice generation failed",
		zap.String("stage", stage),
		zap.Error(err),
	)
}

// newValidator reports field errors under their JSON keys.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func pdfTitle(doc invoicedomain.InvoiceDocument) string {
	if number := strings.TrimSpace(doc.InvoiceNumber); number != "" {
		return "Invoice " + number
	}
	return "Invoice"
}
