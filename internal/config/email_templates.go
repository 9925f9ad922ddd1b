package config

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EmailTemplate is a reusable subject/body pair with {placeholder} tokens.
type EmailTemplate struct {
	ID      string `mapstructure:"id" json:"id"`
	Name    string `mapstructure:"name" json:"name"`
	Subject string `mapstructure:"subject" json:"subject"`
	Body    string `mapstructure:"body" json:"body"`
}

func DefaultEmailTemplates() []EmailTemplate {
	return []EmailTemplate{
		{
			ID:      "professional",
			Name:    "Professional",
			Subject: "Invoice {invoiceNumber} from {companyName}",
			Body: "Dear {clientName},\n\n" +
				"Please find attached invoice {invoiceNumber} dated {invoiceDate} for {totalAmount}.\n\n" +
				"Payment is due by {dueDate}.\n\n" +
				"Kind regards,\n{companyName}",
		},
		{
			ID:      "friendly",
			Name:    "Friendly",
			Subject: "Your invoice from {companyName}",
			Body: "Hi {clientName},\n\n" +
				"Thanks for working with us! Invoice {invoiceNumber} for {totalAmount} is attached.\n\n" +
				"It would be great to have it settled by {dueDate}.\n\n" +
				"Cheers,\n{companyName}",
		},
		{
			ID:      "reminder",
			Name:    "Payment Reminder",
			Subject: "Reminder: invoice {invoiceNumber} is due",
			Body: "Hello {clientName},\n\n" +
				"This is a friendly reminder that invoice {invoiceNumber} for {totalAmount} is due on {dueDate}.\n\n" +
				"If you have already paid, please disregard this message.\n\n" +
				"Regards,\n{companyName}",
		},
		{
			ID:      "formal",
			Name:    "Formal",
			Subject: "Invoice {invoiceNumber} - {companyName}",
			Body: "Dear {clientName},\n\n" +
				"We hereby submit invoice {invoiceNumber}, issued on {invoiceDate}, in the amount of {totalAmount}.\n\n" +
				"Kindly remit payment no later than {dueDate} using the details provided on the invoice.\n\n" +
				"Yours faithfully,\n{companyName}",
		},
	}
}

// EmailTemplateHolder keeps the current template set and swaps it when the
// backing file changes.
type EmailTemplateHolder struct {
	current atomic.Value // holds []EmailTemplate
}

// NewEmailTemplateHolder reads email_templates.yml from dir (or the usual
// locations when dir is empty). A missing file yields the built-in defaults.
func NewEmailTemplateHolder(dir string, log *zap.Logger) (*EmailTemplateHolder, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("email-templates")

	v := viper.New()
	v.SetConfigName("email_templates")
	v.SetConfigType("yml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("/etc/invoicegen")
	v.AddConfigPath(".")

	holder := &EmailTemplateHolder{}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		holder.current.Store(DefaultEmailTemplates())
		return holder, nil
	}

	templates, err := decodeEmailTemplates(v)
	if err != nil {
		return nil, err
	}
	holder.current.Store(templates)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		updated, err := decodeEmailTemplates(v)
		if err != nil {
			log.Warn("email templates reload ignored", zap.Error(err))
			return
		}
		holder.current.Store(updated)
		log.Info("email templates reloaded", zap.String("file", e.Name))
	})

	return holder, nil
}

// NewStaticEmailTemplateHolder serves a fixed set, mainly for tests.
func NewStaticEmailTemplateHolder(templates []EmailTemplate) *EmailTemplateHolder {
	holder := &EmailTemplateHolder{}
	holder.current.Store(templates)
	return holder
}

func (h *EmailTemplateHolder) List() []EmailTemplate {
	current := h.current.Load().([]EmailTemplate)
	out := make([]EmailTemplate, len(current))
	copy(out, current)
	return out
}

func (h *EmailTemplateHolder) Find(id string) (EmailTemplate, bool) {
	id = strings.TrimSpace(id)
	for _, tpl := range h.current.Load().([]EmailTemplate) {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return EmailTemplate{}, false
}

func decodeEmailTemplates(v *viper.Viper) ([]EmailTemplate, error) {
	var templates []EmailTemplate
	if err := v.UnmarshalKey("templates", &templates); err != nil {
		return nil, err
	}
	if err := validateEmailTemplates(templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func validateEmailTemplates(templates []EmailTemplate) error {
	if len(templates) == 0 {
		return errors.New("templates cannot be empty")
	}
	seen := make(map[string]struct{}, len(templates))
	for i, tpl := range templates {
		if strings.TrimSpace(tpl.ID) == "" {
			return fmt.Errorf("templates[%d].id is required", i)
		}
		if _, dup := seen[tpl.ID]; dup {
			return fmt.Errorf("duplicate template id %q", tpl.ID)
		}
		seen[tpl.ID] = struct{}{}
		if strings.TrimSpace(tpl.Subject) == "" || strings.TrimSpace(tpl.Body) == "" {
			return fmt.Errorf("template %q needs a subject and a body", tpl.ID)
		}
	}
	return nil
}
