package metrics

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
)

const (
	StageHTML   = "html"
	StageLayout = "layout"
	StagePDF    = "pdf"
	StageEmail  = "email"
)

const (
	ReasonDeadlineExceeded = "deadline_exceeded"
	ReasonCanceled         = "canceled"
	ReasonInvalidInput     = "invalid_input"
	ReasonRender           = "render"
	ReasonDelivery         = "delivery"
	ReasonRateLimited      = "rate_limited"
	ReasonUnknown          = "unknown"
)

// PipelineMetrics captures document generation health for Prometheus scrapes.
type PipelineMetrics struct {
	stageDuration *prometheus.HistogramVec
	stageErrors   *prometheus.CounterVec
	pages         prometheus.Observer
	lineItems     prometheus.Observer
	deliveries    *prometheus.CounterVec

	durationObserver map[string]prometheus.Observer
}

var (
	pipelineMetricsOnce sync.Once
	pipelineMetrics     *PipelineMetrics
)

// Pipeline returns the process-wide pipeline metrics registered on the default registry.
func Pipeline() *PipelineMetrics {
	return PipelineWithConfig(Config{})
}

// PipelineWithConfig is Pipeline with explicit const labels.
func PipelineWithConfig(cfg Config) *PipelineMetrics {
	pipelineMetricsOnce.Do(func() {
		pipelineMetrics = NewPipelineMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return pipelineMetrics
}

// NewPipelineMetrics registers the collectors on registerer.
func NewPipelineMetrics(registerer prometheus.Registerer, cfg Config) *PipelineMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "invoicegen"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	stageDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "invoicegen_stage_duration_seconds",
		Help:        "Time spent in each document generation stage.",
		Buckets:     []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		ConstLabels: constLabels,
	}, []string{"stage"})
	stageErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "invoicegen_stage_errors_total",
		Help:        "Document generation errors by stage and low-cardinality reason.",
		ConstLabels: constLabels,
	}, []string{"stage", "reason"})
	pages := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:        "invoicegen_pdf_page_count",
		Help:        "Pages per generated PDF.",
		Buckets:     []float64{1, 2, 3, 4, 5, 10, 20},
		ConstLabels: constLabels,
	})
	lineItems := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:        "invoicegen_line_items",
		Help:        "Line items per rendered document.",
		Buckets:     []float64{1, 5, 10, 25, 50, 100, 250},
		ConstLabels: constLabels,
	})
	deliveries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "invoicegen_email_deliveries_total",
		Help:        "Invoice email deliveries by outcome.",
		ConstLabels: constLabels,
	}, []string{"outcome"})

	registerer.MustRegister(stageDuration, stageErrors, pages, lineItems, deliveries)

	durationObserver := map[string]prometheus.Observer{}
	for _, stage := range []string{StageHTML, StageLayout, StagePDF, StageEmail} {
		durationObserver[stage] = stageDuration.WithLabelValues(stage)
	}

	return &PipelineMetrics{
		stageDuration:    stageDuration,
		stageErrors:      stageErrors,
		pages:            pages,
		lineItems:        lineItems,
		deliveries:       deliveries,
		durationObserver: durationObserver,
	}
}

// ObserveStage records the latency of one generation stage.
func (m *PipelineMetrics) ObserveStage(stage string, duration time.Duration) {
	if m == nil {
		return
	}
	if observer, ok := m.durationObserver[stage]; ok {
		observer.Observe(duration.Seconds())
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// IncStageError counts a failure in stage, classified by err.
func (m *PipelineMetrics) IncStageError(stage string, err error) {
	if m == nil || err == nil {
		return
	}
	m.stageErrors.WithLabelValues(stage, ClassifyReason(err)).Inc()
}

// ObservePages records the page count of a PDF.
func (m *PipelineMetrics) ObservePages(pages int) {
	if m == nil || pages <= 0 {
		return
	}
	m.pages.Observe(float64(pages))
}

// ObserveLineItems records the number of line items in a rendered document.
func (m *PipelineMetrics) ObserveLineItems(count int) {
	if m == nil {
		return
	}
	m.lineItems.Observe(float64(count))
}

// IncDelivery counts an email delivery outcome.
func (m *PipelineMetrics) IncDelivery(err error) {
	if m == nil {
		return
	}
	outcome := "sent"
	if err != nil {
		outcome = ClassifyReason(err)
	}
	m.deliveries.WithLabelValues(outcome).Inc()
}

// ClassifyReason maps an error to a bounded label value.
func ClassifyReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonDeadlineExceeded
	case errors.Is(err, context.Canceled):
		return ReasonCanceled
	case errors.Is(err, invoicedomain.ErrInvalidDocument),
		errors.Is(err, invoicedomain.ErrInvalidSendRequest),
		errors.Is(err, invoicedomain.ErrInvalidAttachment),
		errors.Is(err, invoicedomain.ErrEmailTemplateNotFound):
		return ReasonInvalidInput
	case errors.Is(err, invoicedomain.ErrRenderFailed):
		return ReasonRender
	case errors.Is(err, invoicedomain.ErrDeliveryFailed):
		return ReasonDelivery
	case errors.Is(err, invoicedomain.ErrRateLimited):
		return ReasonRateLimited
	default:
		return ReasonUnknown
	}
}
