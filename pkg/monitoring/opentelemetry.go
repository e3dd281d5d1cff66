package monitoring

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// OpenTelemetry manages the tracer provider lifecycle for the service.
type OpenTelemetry struct {
	serviceName  string
	environment  string
	otlpEndpoint string

	tp *sdktrace.TracerProvider
}

func NewOpenTelemetry(serviceName, environment, otlpEndpoint string) *OpenTelemetry {
	return &OpenTelemetry{
		serviceName:  serviceName,
		environment:  environment,
		otlpEndpoint: otlpEndpoint,
	}
}

func (m *OpenTelemetry) Start(ctx context.Context) {
	opts := []otlptracehttp.Option{otlptracehttp.WithInsecure()}
	if m.otlpEndpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(m.otlpEndpoint))
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return
	}

	res, _ := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(m.serviceName),
			semconv.DeploymentEnvironment(m.environment),
		),
	)

	m.tp = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(m.tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

func (m *OpenTelemetry) Stop(ctx context.Context) {
	if m.tp == nil {
		return
	}

	_ = m.tp.Shutdown(ctx)
}
