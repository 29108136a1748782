package support

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("loads defaults", func(t *testing.T) {
		cfg, err := LoadConfig(NewViper())
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "console", cfg.LogFormat)
		assert.Equal(t, "none", cfg.TraceExporter)
		assert.Equal(t, ":9080", cfg.Listen)
		assert.Equal(t, 20.0, cfg.RateLimit)
		assert.Equal(t, 40, cfg.RateBurst)
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("COUNTER_LISTEN", ":8088")
		t.Setenv("COUNTER_LOG_FORMAT", "json")
		t.Setenv("COUNTER_RATE_LIMIT", "0")

		cfg, err := LoadConfig(NewViper())
		require.NoError(t, err)

		assert.Equal(t, ":8088", cfg.Listen)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, 0.0, cfg.RateLimit)
	})

	t.Run("reads otlp headers from the environment", func(t *testing.T) {
		t.Setenv("COUNTER_OTLP_HEADERS", "x-api-key=secret, tenant=counter")

		cfg, err := LoadConfig(NewViper())
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"x-api-key": "secret", "tenant": "counter"}, cfg.OTLPHeaders)
	})

	t.Run("defaults to no otlp headers", func(t *testing.T) {
		cfg, err := LoadConfig(NewViper())
		require.NoError(t, err)

		assert.Empty(t, cfg.OTLPHeaders)
	})

	t.Run("rejects malformed otlp headers", func(t *testing.T) {
		t.Setenv("COUNTER_OTLP_HEADERS", "x-api-key")

		_, err := LoadConfig(NewViper())
		assert.Error(t, err)
	})

	t.Run("rejects unknown exporters", func(t *testing.T) {
		v := NewViper()
		v.Set("trace-exporter", "zipkin")

		_, err := LoadConfig(v)
		assert.Error(t, err)
	})

	t.Run("rejects an empty burst while limiting", func(t *testing.T) {
		cfg := Config{LogFormat: "json", TraceExporter: "none", RateLimit: 1, RateBurst: 0}
		assert.Error(t, cfg.Validate())
	})
}

func TestLogger(t *testing.T) {
	t.Run("writes json at the configured level", func(t *testing.T) {
		var out bytes.Buffer
		logger, err := NewLogger(Config{LogLevel: "warn", LogFormat: "json"}, &out)
		require.NoError(t, err)

		logger.Info().Msg("hidden")
		logger.Warn().Str("command", "counter:increment").Msg("shown")

		assert.NotContains(t, out.String(), "hidden")
		assert.Contains(t, out.String(), `"command":"counter:increment"`)
		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		_, err := NewLogger(Config{LogLevel: "loud", LogFormat: "json"}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestTelemetry(t *testing.T) {
	logger := zerolog.Nop()

	tracing, cleanup, err := Telemetry(context.Background(), Config{TraceExporter: "none"}, &logger)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "none", tracing.Exporter)
	assert.NotNil(t, tracing.Provider)
}

func TestParseHeaders(t *testing.T) {
	headers, err := ParseHeaders("a=1,,b = two=2 ")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "two=2"}, headers)

	_, err = ParseHeaders("=1")
	assert.Error(t, err)
}
