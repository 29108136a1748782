package support

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/weegigs/wee-counter-go/we"
)

type Tracing struct {
	Exporter string
	Provider oteltrace.TracerProvider
}

// Telemetry installs the global tracer provider for the configured exporter. With
// the "none" exporter the default no-op provider stays in place.
func Telemetry(ctx context.Context, cfg Config, logger *zerolog.Logger) (*Tracing, func(), error) {
	var exporter trace.SpanExporter
	var err error

	switch cfg.TraceExporter {
	case "", "none":
		return &Tracing{Exporter: "none", Provider: otel.GetTracerProvider()}, func() {}, nil
	case "stdout":
		exporter, err = we.ConsoleExporter()
	case "otlp":
		exporter, err = we.OTLPExporter(ctx, cfg.OTLPEndpoint, cfg.OTLPHeaders, cfg.OTLPInsecure)
	case "jaeger":
		exporter, err = we.JaegerExporter(cfg.JaegerEndpoint)
	default:
		err = errors.Errorf("unsupported trace exporter %q", cfg.TraceExporter)
	}

	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create trace exporter")
	}

	provider := trace.NewTracerProvider(trace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)

	cleanup := func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("failed to flush traces")
		}
	}

	return &Tracing{Exporter: cfg.TraceExporter, Provider: provider}, cleanup, nil
}
