package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
)

type emailDraftRequest struct {
	Document   json.RawMessage `json:"document"`
	TemplateID string          `json:"templateId"`
}

// bindDocument decodes the request body as an invoice document and records
// the requested template for request logging.
func bindDocument(c *gin.Context) (invoicedomain.InvoiceDocument, bool) {
	doc, err := invoicedomain.DecodeDocument(c.Request.Body)
	if err != nil {
		AbortWithError(c, err)
		return invoicedomain.InvoiceDocument{}, false
	}
	c.Set("template", doc.Template.String())
	return doc, true
}

func (s *Server) RenderInvoiceHTML(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}

	html, err := s.invoiceSvc.RenderHTML(c.Request.Context(), doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) RenderInvoicePDF(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}

	result, err := s.invoiceSvc.RenderPDF(c.Request.Context(), doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": result.Filename}))
	c.Header("X-Page-Count", strconv.Itoa(result.Pages))
	c.Data(http.StatusOK, "application/pdf", result.Bytes)
}

func (s *Server) ExportInvoiceBase64(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}

	export, err := s.invoiceSvc.ExportBase64(c.Request.Context(), doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, export)
}

func (s *Server) ComposeInvoiceEmail(c *gin.Context) {
	var req emailDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Document) == 0 {
		AbortWithError(c, invalidRequestError())
		return
	}

	doc, err := invoicedomain.DecodeDocument(bytes.NewReader(req.Document))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	draft, err := s.invoiceSvc.ComposeEmail(c.Request.Context(), doc, req.TemplateID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (s *Server) SendInvoice(c *gin.Context) {
	var req invoicedomain.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.invoiceSvc.SendInvoice(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, fmt.Errorf("send invoice %q: %w", req.InvoiceNumber, err))
		return
	}

	c.JSON(http.StatusOK, result)
}
