package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Tracer returns the tracer used by services. When tracing is disabled the
// noop provider keeps every span a zero-cost stub.
func Tracer(enabled bool, name string) trace.Tracer {
	if !enabled {
		return noop.NewTracerProvider().Tracer(name)
	}
	return otel.GetTracerProvider().Tracer(name)
}
