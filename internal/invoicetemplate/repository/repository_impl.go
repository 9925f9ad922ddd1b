package repository

import templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"

type repo struct {
	byID map[templatedomain.TemplateID]templatedomain.Style
}

func Provide() templatedomain.Repository {
	byID := make(map[templatedomain.TemplateID]templatedomain.Style, len(catalog))
	for _, style := range catalog {
		byID[style.ID] = style
	}
	return &repo{byID: byID}
}

func (r *repo) FindByID(id templatedomain.TemplateID) (templatedomain.Style, bool) {
	style, ok := r.byID[id]
	return style, ok
}

func (r *repo) FindDefault() templatedomain.Style {
	return r.byID[templatedomain.DefaultTemplate]
}

func (r *repo) List() []templatedomain.Style {
	out := make([]templatedomain.Style, len(catalog))
	copy(out, catalog)
	return out
}
