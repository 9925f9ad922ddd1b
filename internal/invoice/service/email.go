package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/smallbiznis/invoicegen/internal/invoice/calc"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	invoiceformat "github.com/smallbiznis/invoicegen/internal/invoice/format"
	"github.com/smallbiznis/invoicegen/internal/observability/logger"
	"github.com/smallbiznis/invoicegen/internal/observability/metrics"
	"github.com/smallbiznis/invoicegen/internal/providers/email"
	"github.com/smallbiznis/invoicegen/internal/ratelimit"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const defaultEmailTemplate = "professional"

// Raw HTML in the message body is escaped; only markdown is rendered.
var bodyMarkdown = goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))

func (s *Service) ComposeEmail(ctx context.Context, doc invoicedomain.InvoiceDocument, templateID string) (invoicedomain.EmailDraft, error) {
	_, span := s.tracer.Start(ctx, "invoice.ComposeEmail")
	defer span.End()

	id := strings.TrimSpace(templateID)
	if id == "" {
		id = defaultEmailTemplate
	}
	span.SetAttributes(attribute.String("email.template", id))

	tpl, ok := s.emailTemplates.Find(id)
	if !ok {
		err := fmt.Errorf("%w: %s", invoicedomain.ErrEmailTemplateNotFound, id)
		span.SetStatus(codes.Error, metrics.ReasonInvalidInput)
		return invoicedomain.EmailDraft{}, err
	}

	placeholders := invoiceformat.PlaceholdersFor(doc, calc.ForDocument(doc).Total)
	return invoicedomain.EmailDraft{
		TemplateID: tpl.ID,
		Subject:    invoiceformat.ExpandPlaceholders(tpl.Subject, placeholders),
		Body:       invoiceformat.ExpandPlaceholders(tpl.Body, placeholders),
	}, nil
}

func (s *Service) SendInvoice(ctx context.Context, req invoicedomain.SendRequest) (invoicedomain.SendResult, error) {
	ctx, span := s.tracer.Start(ctx, "invoice.SendInvoice")
	defer span.End()

	result, err := s.sendInvoice(ctx, req)
	s.pipeline.IncDelivery(err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, metrics.ClassifyReason(err))
		s.pipeline.IncStageError(metrics.StageEmail, err)
		s.metrics.RecordEmailSend(ctx, "smtp", metrics.ClassifyReason(err))
		logger.WithContext(ctx, s.log).Warn("invoice email not sent",
			zap.String("invoice_number", req.InvoiceNumber),
			zap.Error(err),
		)
		return invoicedomain.SendResult{}, err
	}
	s.metrics.RecordEmailSend(ctx, "smtp", "sent")
	logger.WithContext(ctx, s.log).Info("invoice email sent",
		zap.String("invoice_number", req.InvoiceNumber),
		zap.String("message_id", result.MessageID),
	)
	return result, nil
}

func (s *Service) sendInvoice(ctx context.Context, req invoicedomain.SendRequest) (invoicedomain.SendResult, error) {
	req.RecipientEmail = strings.TrimSpace(req.RecipientEmail)
	if err := s.validate.StructCtx(ctx, req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return invoicedomain.SendResult{}, fmt.Errorf("%w: %w", invoicedomain.ErrInvalidSendRequest, fieldErrs)
		}
		return invoicedomain.SendResult{}, fmt.Errorf("%w: %v", invoicedomain.ErrInvalidSendRequest, err)
	}

	attachment, err := invoiceformat.DecodeDataURI(req.PDFBase64)
	if err != nil {
		return invoicedomain.SendResult{}, fmt.Errorf("%w: %v", invoicedomain.ErrInvalidAttachment, err)
	}

	release, err := s.reserveSend(ctx, req)
	if err != nil {
		return invoicedomain.SendResult{}, err
	}
	defer release(context.WithoutCancel(ctx))

	htmlBody, err := markdownToHTML(req.Body)
	if err != nil {
		return invoicedomain.SendResult{}, fmt.Errorf("%w: %v", invoicedomain.ErrInvalidSendRequest, err)
	}

	filename := invoiceformat.Filename(req.CompanyName, req.InvoiceNumber, s.clock.Now())
	start := time.Now()
	messageID, err := s.email.Send(ctx, email.Message{
		To:       []string{req.RecipientEmail},
		Subject:  req.Subject,
		TextBody: req.Body,
		HTMLBody: htmlBody,
		Attachments: []email.Attachment{{
			Filename:    filename,
			ContentType: "application/pdf",
			Data:        attachment,
		}},
	})
	s.pipeline.ObserveStage(metrics.StageEmail, time.Since(start))
	if err != nil {
		return invoicedomain.SendResult{}, fmt.Errorf("%w: %w", invoicedomain.ErrDeliveryFailed, err)
	}

	return invoicedomain.SendResult{
		Success:   true,
		MessageID: messageID,
		Filename:  filename,
	}, nil
}

func markdownToHTML(body string) (string, error) {
	var buf bytes.Buffer
	if err := bodyMarkdown.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// reserveSend applies the per-recipient budget and the duplicate send lock.
// Limiter outages are logged and the send proceeds.
func (s *Service) reserveSend(ctx context.Context, req invoicedomain.SendRequest) (func(context.Context), error) {
	noop := func(context.Context) {}
	if s.limiter == nil {
		return noop, nil
	}

	res, err := s.limiter.Allow(ctx, req.RecipientEmail)
	if err != nil {
		logger.WithContext(ctx, s.log).Warn("send rate limit unavailable", zap.Error(err))
		return noop, nil
	}
	if !res.Allowed {
		return noop, &invoicedomain.RateLimitError{
			RetryAfter: res.RetryAfter,
			Reason:     "recipient send budget exhausted",
		}
	}

	release, err := s.limiter.Lock(ctx, req.RecipientEmail, req.InvoiceNumber)
	switch {
	case errors.Is(err, ratelimit.ErrLocked):
		return noop, &invoicedomain.RateLimitError{Reason: "invoice send already in progress"}
	case err != nil:
		logger.WithContext(ctx, s.log).Warn("send lock unavailable", zap.Error(err))
		return noop, nil
	}
	return release, nil
}
