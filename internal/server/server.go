package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/invoicegen/internal/config"
	"github.com/smallbiznis/invoicegen/internal/invoice"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	"github.com/smallbiznis/invoicegen/internal/invoicetemplate"
	invoicetemplatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
	"github.com/smallbiznis/invoicegen/internal/observability"
	obsmiddleware "github.com/smallbiznis/invoicegen/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/invoicegen/internal/observability/metrics"
	obstracing "github.com/smallbiznis/invoicegen/internal/observability/tracing"
	"github.com/smallbiznis/invoicegen/internal/providers"
	"github.com/smallbiznis/invoicegen/internal/ratelimit"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// maxDocumentBytes caps JSON request bodies. A send request carries the
// base64 PDF, so the limit is generous.
const maxDocumentBytes = 20 << 20

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	providers.Module,
	ratelimit.Module,
	invoicetemplate.Module,
	invoice.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine             *gin.Engine
	cfg                config.Config
	invoiceSvc         invoicedomain.Service
	invoiceTemplateSvc invoicetemplatedomain.Service
}

type ServerParams struct {
	fx.In

	Gin                *gin.Engine
	Cfg                config.Config
	InvoiceSvc         invoicedomain.Service
	InvoiceTemplateSvc invoicetemplatedomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:             p.Gin,
		cfg:                p.Cfg,
		invoiceSvc:         p.InvoiceSvc,
		invoiceTemplateSvc: p.InvoiceTemplateSvc,
	}

	svc.registerAPIRoutes()
	svc.registerFallback()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", BodyLimit(maxDocumentBytes), NoStore())

	templates := api.Group("/templates")
	{
		templates.GET("", s.ListInvoiceTemplates)
		templates.GET("/:id/preview", s.PreviewInvoiceTemplate)
	}

	invoices := api.Group("/invoices")
	{
		invoices.POST("/html", s.RenderInvoiceHTML)
		invoices.POST("/pdf", s.RenderInvoicePDF)
		invoices.POST("/pdf/base64", s.ExportInvoiceBase64)
		invoices.POST("/email/draft", s.ComposeInvoiceEmail)
	}

	api.POST("/send-invoice", s.SendInvoice)
}

func (s *Server) registerFallback() {
	s.engine.NoRoute(func(c *gin.Context) {
		AbortWithError(c, ErrNotFound)
	})
}
