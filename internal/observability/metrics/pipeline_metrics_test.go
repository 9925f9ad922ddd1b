package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
)

func TestClassifyReason(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "deadline", err: context.DeadlineExceeded, want: ReasonDeadlineExceeded},
		{name: "canceled", err: context.Canceled, want: ReasonCanceled},
		{name: "invalid_send", err: fmt.Errorf("%w: recipient", invoicedomain.ErrInvalidSendRequest), want: ReasonInvalidInput},
		{name: "render", err: fmt.Errorf("%w: template", invoicedomain.ErrRenderFailed), want: ReasonRender},
		{name: "delivery", err: invoicedomain.ErrDeliveryFailed, want: ReasonDelivery},
		{name: "unknown", err: errors.New("boom"), want: ReasonUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyReason(tc.err); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestPipelineMetricsCounters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewPipelineMetrics(registry, Config{ServiceName: "invoicegen", Environment: "test"})

	m.IncStageError(StagePDF, invoicedomain.ErrRenderFailed)
	m.IncStageError(StagePDF, invoicedomain.ErrRenderFailed)
	m.IncStageError(StagePDF, nil)
	m.IncDelivery(nil)
	m.IncDelivery(invoicedomain.ErrDeliveryFailed)
	m.ObserveStage(StageLayout, 5*time.Millisecond)
	m.ObservePages(2)

	if got := testutil.ToFloat64(m.stageErrors.WithLabelValues(StagePDF, ReasonRender)); got != 2 {
		t.Fatalf("expected 2 render errors, got %v", got)
	}
	if got := testutil.ToFloat64(m.deliveries.WithLabelValues("sent")); got != 1 {
		t.Fatalf("expected 1 sent delivery, got %v", got)
	}
	if got := testutil.ToFloat64(m.deliveries.WithLabelValues(ReasonDelivery)); got != 1 {
		t.Fatalf("expected 1 failed delivery, got %v", got)
	}
	if got := testutil.CollectAndCount(m.stageDuration); got != len(m.durationObserver) {
		t.Fatalf("expected %d duration series, got %d", len(m.durationObserver), got)
	}
}

func TestHTTPMetricsObserve(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newHTTPMetrics(registry, Config{})

	m.Observe("POST", "/api/invoices/pdf", 200, 40*time.Millisecond)
	m.Observe("GET", "", 404, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/invoices/pdf", "200")); got != 1 {
		t.Fatalf("expected 1 request, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Fatalf("expected unmatched route to be bucketed, got %v", got)
	}
}
