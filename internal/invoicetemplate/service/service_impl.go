package service

import (
	templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo templatedomain.Repository
}

type Service struct {
	log  *zap.Logger
	repo templatedomain.Repository
}

func NewService(p Params) templatedomain.Service {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		log:  log.Named("invoicetemplate.service"),
		repo: p.Repo,
	}
}

func (s *Service) Resolve(id templatedomain.TemplateID) templatedomain.Style {
	if style, ok := s.Lookup(id); ok {
		return style
	}
	s.log.Warn("unknown invoice template, using default",
		zap.String("template", string(id)),
		zap.String("default", string(templatedomain.DefaultTemplate)),
	)
	return s.repo.FindDefault()
}

func (s *Service) Lookup(id templatedomain.TemplateID) (templatedomain.Style, bool) {
	parsed, ok := templatedomain.ParseTemplateID(string(id))
	if !ok {
		return templatedomain.Style{}, false
	}
	return s.repo.FindByID(parsed)
}

func (s *Service) Catalog() []templatedomain.Style {
	return s.repo.List()
}

func (s *Service) StyleSheet(style templatedomain.Style) string {
	return buildStyleSheet(style)
}
