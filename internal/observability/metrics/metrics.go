package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	documentsRendered metric.Int64Counter
	renderFailures    metric.Int64Counter
	pdfPages          metric.Int64Histogram
	emailsSent        metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "invoicegen"
	}
	meter := provider.Meter(name)

	documentsRendered, err := meter.Int64Counter("invoicegen_documents_rendered_total")
	if err != nil {
		return nil, err
	}
	renderFailures, err := meter.Int64Counter("invoicegen_render_failures_total")
	if err != nil {
		return nil, err
	}
	pdfPages, err := meter.Int64Histogram("invoicegen_pdf_pages",
		metric.WithExplicitBucketBoundaries(1, 2, 3, 5, 10, 25))
	if err != nil {
		return nil, err
	}
	emailsSent, err := meter.Int64Counter("invoicegen_emails_sent_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		documentsRendered: documentsRendered,
		renderFailures:    renderFailures,
		pdfPages:          pdfPages,
		emailsSent:        emailsSent,
	}, nil
}

// RecordRender counts one rendered document.
func (m *Metrics) RecordRender(ctx context.Context, format, template string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("format", strings.TrimSpace(format)),
		attribute.String("template", strings.TrimSpace(template)),
	)
	m.documentsRendered.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordRenderFailure counts a failed render.
func (m *Metrics) RecordRenderFailure(ctx context.Context, format, reason string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("format", strings.TrimSpace(format)),
		attribute.String("reason", strings.TrimSpace(reason)),
	)
	m.renderFailures.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordPDFPages records the page count of a generated PDF.
func (m *Metrics) RecordPDFPages(ctx context.Context, template string, pages int) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("template", strings.TrimSpace(template)))
	m.pdfPages.Record(ctx, int64(pages), metric.WithAttributes(attrs...))
}

// RecordEmailSend counts a delivery attempt by outcome.
func (m *Metrics) RecordEmailSend(ctx context.Context, provider, status string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("provider", strings.TrimSpace(provider)),
		attribute.String("status", strings.TrimSpace(status)),
	)
	m.emailsSent.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"format":      {},
	"template":    {},
	"endpoint":    {},
	"status_code": {},
	"status":      {},
	"provider":    {},
	"reason":      {},
}

// FilterAttributes strips disallowed labels to keep metrics low-cardinality.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
