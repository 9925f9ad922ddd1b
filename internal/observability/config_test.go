package observability

import (
	"testing"

	"github.com/smallbiznis/invoicegen/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEPLOYMENT_ENV", "")
	t.Setenv("OTEL_ENABLED", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg := LoadConfig(config.Config{Environment: "development"})
	require.Equal(t, "invoicegen", cfg.ServiceName)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.OtelEnabled)
	require.True(t, cfg.Debug())
}

func TestLoadConfigEnablesOtelWithEndpoint(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")

	cfg := LoadConfig(config.Config{AppName: "invoicegen", Environment: "production"})
	require.True(t, cfg.OtelEnabled)
	require.Equal(t, "collector:4317", cfg.OtelExporterEndpoint)
	require.False(t, cfg.Debug())
}
