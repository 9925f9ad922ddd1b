package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	HTTPAddr string

	OTLPEndpoint string

	Email     EmailConfig
	RateLimit RateLimitConfig

	// EmailTemplatesPath is a directory searched for email_templates.yml.
	EmailTemplatesPath string
	// InvoiceFooter overrides the closing line of rendered invoices.
	InvoiceFooter string
	PDFCompress   bool
}

type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// RateLimitConfig throttles outgoing invoice email per recipient. Buckets
// and send locks live in redis so every replica shares them.
type RateLimitConfig struct {
	Enabled       bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// SendRate is the refill rate in sends per second for one recipient.
	SendRate  float64
	SendBurst int
	// SendLockTTL bounds how long a send of the same invoice to the same
	// recipient blocks a duplicate.
	SendLockTTL time.Duration
}

// Enabled reports whether enough SMTP settings exist to deliver mail.
func (c EmailConfig) Enabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		AppName:      getenv("APP_SERVICE", "invoicegen"),
		AppVersion:   getenv("APP_VERSION", "0.1.0"),
		Environment:  getenv("ENVIRONMENT", "development"),
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		OTLPEndpoint: getenv("OTLP_ENDPOINT", ""),
		Email: EmailConfig{
			SMTPHost:     strings.TrimSpace(getenv("SMTP_HOST", "")),
			SMTPPort:     getenvInt("SMTP_PORT", 587),
			SMTPUsername: strings.TrimSpace(getenv("SMTP_USERNAME", "")),
			SMTPPassword: getenv("SMTP_PASSWORD", ""),
			SMTPFrom:     strings.TrimSpace(getenv("SMTP_FROM", "")),
		},
		RateLimit: RateLimitConfig{
			Enabled:       getenvBool("RATE_LIMIT_ENABLED", false),
			RedisAddr:     strings.TrimSpace(getenv("REDIS_ADDR", "")),
			RedisPassword: getenv("REDIS_PASSWORD", ""),
			RedisDB:       getenvInt("REDIS_DB", 0),
			SendRate:      getenvFloat("SEND_INVOICE_RATE", 1.0/60),
			SendBurst:     getenvInt("SEND_INVOICE_BURST", 5),
			SendLockTTL:   time.Duration(getenvInt("SEND_INVOICE_LOCK_TTL_SECONDS", 60)) * time.Second,
		},
		EmailTemplatesPath: strings.TrimSpace(getenv("EMAIL_TEMPLATES_PATH", "")),
		InvoiceFooter:      getenv("INVOICE_FOOTER", ""),
		PDFCompress:        getenvBool("PDF_COMPRESS", true),
	}

	return cfg
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}
