package e2e

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/invoicegen/internal/clock"
	"github.com/smallbiznis/invoicegen/internal/config"
	"github.com/smallbiznis/invoicegen/internal/invoice"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	"github.com/smallbiznis/invoicegen/internal/invoicetemplate"
	"github.com/smallbiznis/invoicegen/internal/observability"
	"github.com/smallbiznis/invoicegen/internal/providers"
	"github.com/smallbiznis/invoicegen/internal/ratelimit"
	"github.com/smallbiznis/invoicegen/internal/server"
	"go.uber.org/fx"
)

type testEnv struct {
	app     *fx.App
	server  *server.Server
	baseURL string
	httpSrv *httptest.Server
}

var env *testEnv

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	setDefaultEnv()

	var err error
	env, err = startEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to start test environment:", err)
		os.Exit(1)
	}

	code := m.Run()
	env.shutdown()
	os.Exit(code)
}

func TestE2E_HealthCheck(t *testing.T) {
	resp, err := http.Get(env.baseURL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
}

func TestE2E_MetricsExposed(t *testing.T) {
	resp, body := doJSON(t, http.MethodPost, env.baseURL+"/api/invoices/pdf", sampleDocument(t, 3))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for pdf, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = doJSON(t, http.MethodGet, env.baseURL+"/metrics", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for metrics, got %d", resp.StatusCode)
	}
	for _, name := range []string{"invoicegen_http_requests_total", "invoicegen_pdf_page_count"} {
		if !strings.Contains(string(body), name) {
			t.Fatalf("expected %s in metrics output", name)
		}
	}
}

func TestE2E_PaginatedPDF(t *testing.T) {
	resp, body := doJSON(t, http.MethodPost, env.baseURL+"/api/invoices/pdf/base64", sampleDocument(t, 60))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.StatusCode, string(body))
	}

	var export invoicedomain.Base64Export
	if err := json.Unmarshal(body, &export); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if export.Pages < 2 {
		t.Fatalf("expected multi-page pdf, got %d pages", export.Pages)
	}
	if !strings.HasPrefix(export.Filename, "invoice-sample-company-inc-") {
		t.Fatalf("unexpected filename %q", export.Filename)
	}
}

func TestE2E_DraftAndSend(t *testing.T) {
	doc := json.RawMessage(sampleDocument(t, 2))
	resp, body := doJSON(t, http.MethodPost, env.baseURL+"/api/invoices/email/draft", map[string]any{
		"document":   doc,
		"templateId": "reminder",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for draft, got %d: %s", resp.StatusCode, string(body))
	}
	var draft invoicedomain.EmailDraft
	if err := json.Unmarshal(body, &draft); err != nil {
		t.Fatalf("decode draft: %v", err)
	}

	// SMTP is not configured in tests, so delivery goes through the no-op provider.
	resp, body = doJSON(t, http.MethodPost, env.baseURL+"/api/send-invoice", map[string]any{
		"recipientEmail": "client@example.com",
		"pdfBase64":      base64.StdEncoding.EncodeToString([]byte("%PDF-1.3")),
		"subject":        draft.Subject,
		"body":           draft.Body,
		"companyName":    "Sample Company Inc.",
		"invoiceNumber":  "INV-001",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for send, got %d: %s", resp.StatusCode, string(body))
	}
	var result invoicedomain.SendResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode send result: %v", err)
	}
	if !result.Success || result.MessageID == "" {
		t.Fatalf("expected successful send, got %+v", result)
	}
}

func startEnv() (*testEnv, error) {
	var srv *server.Server

	app := fx.New(
		fx.NopLogger,
		config.Module,
		observability.Module,
		clock.Module,
		providers.Module,
		ratelimit.Module,
		invoicetemplate.Module,
		invoice.Module,
		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Populate(&srv),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return nil, err
	}

	httpSrv := httptest.NewServer(srv.Engine())
	return &testEnv{
		app:     app,
		server:  srv,
		baseURL: httpSrv.URL,
		httpSrv: httpSrv,
	}, nil
}

func (e *testEnv) shutdown() {
	if e == nil {
		return
	}
	if e.httpSrv != nil {
		e.httpSrv.Close()
	}
	if e.app != nil {
		_ = e.app.Stop(context.Background())
	}
}

func setDefaultEnv() {
	setEnvIfEmpty("ENVIRONMENT", "test")
	setEnvIfEmpty("LOG_LEVEL", "error")
	_ = os.Setenv("SMTP_HOST", "")
	_ = os.Setenv("OTEL_ENABLED", "false")
}

func setEnvIfEmpty(key, value string) {
	if strings.TrimSpace(os.Getenv(key)) != "" {
		return
	}
	_ = os.Setenv(key, value)
}

func sampleDocument(t *testing.T, rows int) []byte {
	t.Helper()
	doc := invoicedomain.SampleInvoice(time.Now())
	doc.LineItems = nil
	for i := 0; i < rows; i++ {
		doc.LineItems = append(doc.LineItems, invoicedomain.LineItem{
			Description: fmt.Sprintf("Item %d", i+1),
			Quantity:    1,
			UnitPrice:   10,
		})
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("encode document: %v", err)
	}
	return raw
}

func doJSON(t *testing.T, method, reqURL string, payload any) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	switch p := payload.(type) {
	case nil:
	case []byte:
		body = bytes.NewReader(p)
	default:
		raw, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("encode json: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, reqURL, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := (&http.Client{Timeout: 15 * time.Second}).Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}
