package wehttp

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// WithTelemetry wraps h in a server span. A nil provider uses the global one.
func WithTelemetry(h http.Handler, name string, provider trace.TracerProvider) http.Handler {
	if provider == nil {
		return otelhttp.NewHandler(h, name)
	}

	return otelhttp.NewHandler(h, name, otelhttp.WithTracerProvider(provider))
}
