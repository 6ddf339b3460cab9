package support

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"google.golang.org/grpc/credentials"
)

const telemetryShutdownTimeout = 5 * time.Second

func consoleExporter() (trace.SpanExporter, error) {
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

func otlpExporter(ctx context.Context, config Config) (trace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(config.OTLPEndpoint)}
	if config.OTLPInsecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	} else {
		opts = append(opts, otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")))
	}

	return otlptrace.New(ctx, otlptracegrpc.NewClient(opts...))
}

func jaegerExporter(config Config) (trace.SpanExporter, error) {
	return jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(config.JaegerEndpoint)))
}

func spanExporter(ctx context.Context, config Config) (trace.SpanExporter, error) {
	switch config.TelemetryExporter {
	case ConsoleExporter:
		return consoleExporter()
	case OTLPExporter:
		return otlpExporter(ctx, config)
	case JaegerExporter:
		return jaegerExporter(config)
	default:
		return nil, nil
	}
}

// TracerProvider builds the service tracer provider and, when an exporter is
// configured, installs it as the global provider. With NoExporter the global no-op
// provider stays in place. The cleanup flushes pending spans.
func TracerProvider(ctx context.Context, config Config) (*trace.TracerProvider, func(), error) {
	exporter, err := spanExporter(ctx, config)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create %s exporter", config.TelemetryExporter)
	}

	opts := []trace.TracerProviderOption{
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(ServiceName),
			semconv.DeploymentEnvironmentKey.String(string(config.Environment)),
		)),
	}
	if exporter != nil {
		opts = append(opts, trace.WithBatcher(exporter))
	}

	provider := trace.NewTracerProvider(opts...)
	if exporter != nil {
		otel.SetTracerProvider(provider)
	}

	return provider, func() {
		ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()

		if err := provider.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to flush telemetry")
		}
	}, nil
}
