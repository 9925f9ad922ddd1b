package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
)

type templateSummary struct {
	ID          templatedomain.TemplateID `json:"id"`
	Label       string                    `json:"label"`
	Description string                    `json:"description"`
	Palette     templatedomain.Palette    `json:"palette"`
}

func (s *Server) ListInvoiceTemplates(c *gin.Context) {
	catalog := s.invoiceTemplateSvc.Catalog()
	resp := make([]templateSummary, 0, len(catalog))
	for _, style := range catalog {
		resp = append(resp, templateSummary{
			ID:          style.ID,
			Label:       style.Label,
			Description: style.Description,
			Palette:     style.Palette,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) PreviewInvoiceTemplate(c *gin.Context) {
	id := templatedomain.TemplateID(strings.TrimSpace(c.Param("id")))
	c.Set("template", id.String())

	html, err := s.invoiceSvc.Preview(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
