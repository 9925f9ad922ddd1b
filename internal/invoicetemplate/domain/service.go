package domain

// Repository is the read-only store of template styles.
type Repository interface {
	FindByID(id TemplateID) (Style, bool)
	FindDefault() Style
	List() []Style
}

// Service resolves template identifiers to styles.
type Service interface {
	// Resolve never fails; unknown ids resolve to DefaultTemplate.
	Resolve(id TemplateID) Style
	Lookup(id TemplateID) (Style, bool)
	Catalog() []Style
	// StyleSheet returns the complete CSS used by the HTML renderer for style.
	StyleSheet(style Style) string
}
