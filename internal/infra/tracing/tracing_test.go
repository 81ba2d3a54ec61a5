package tracing_test

import (
	"context"
	"testing"

	"github.com/briannelson22/openweather/internal/infra/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func TestSetup(t *testing.T) {
	t.Run("should install a provider without an exporter", func(t *testing.T) {
		shutdown, err := tracing.Setup("weather-report", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer shutdown(context.Background())

		_, span := otel.Tracer("test").Start(context.Background(), "span")
		defer span.End()
		if !span.SpanContext().IsValid() {
			t.Error("expected a recording span context")
		}
		if _, ok := otel.GetTextMapPropagator().(propagation.TraceContext); !ok {
			t.Errorf("expected TraceContext propagator, got %T", otel.GetTextMapPropagator())
		}
	})
	t.Run("should reject a malformed zipkin endpoint", func(t *testing.T) {
		if _, err := tracing.Setup("weather-report", "://bad"); err == nil {
			t.Error("expected error, got nil")
		}
	})
}
