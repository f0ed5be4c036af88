// Package tracing wires OpenTelemetry for the Nuclino MCP server: exporter
// setup from the environment and span helpers for tool calls and API round trips.
package tracing

import (
	"context"
	"fmt"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"
)

// ServiceName identifies spans from this server.
const ServiceName = "nuclino-mcp-server"

// Environment variables read by ConfigFromEnv.
const (
	EnvEnabled     = "OTEL_ENABLED"
	EnvEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	EnvEnvironment = "OTEL_ENVIRONMENT"
	EnvSampleRate  = "OTEL_TRACES_SAMPLER_ARG"
)

// Config holds tracing configuration
type Config struct {
	ServiceVersion string
	Environment    string
	Enabled        bool

	// OTLPEndpoint selects the OTLP/HTTP exporter; empty means pretty-printed stdout.
	OTLPEndpoint string
	Insecure     bool

	// SampleRate is the fraction of root traces kept, 0 to 1.
	SampleRate float64
}

// ConfigFromEnv reads tracing settings. Tracing is on when OTEL_ENABLED is
// "true" or an OTLP endpoint is configured.
func ConfigFromEnv(serviceVersion string) (Config, error) {
	cfg := Config{
		ServiceVersion: serviceVersion,
		Environment:    os.Getenv(EnvEnvironment),
		OTLPEndpoint:   os.Getenv(EnvEndpoint),
		Insecure:       os.Getenv(EnvInsecure) == "true",
		SampleRate:     1.0,
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	cfg.Enabled = os.Getenv(EnvEnabled) == "true" || cfg.OTLPEndpoint != ""

	if s := os.Getenv(EnvSampleRate); s != "" {
		rate, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvSampleRate, s, err)
		}
		cfg.SampleRate = rate
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the sample rate range.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.SampleRate, validation.Min(0.0), validation.Max(1.0)),
	)
}

// Setup installs the global tracer provider and propagator and returns its
// shutdown function. When tracing is disabled nothing is installed.
func Setup(ctx context.Context, config Config) (func(context.Context) error, error) {
	if !config.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("deployment.environment", config.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	exporter, err := newExporter(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(config.SampleRate))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, config Config) (sdktrace.SpanExporter, error) {
	if config.OTLPEndpoint == "" {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(config.OTLPEndpoint)}
	if config.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func tracer() trace.Tracer {
	return otel.Tracer(ServiceName)
}

// StartSpan starts an internal span.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer().Start(ctx, name, opts...)
}

// StartAPISpan starts a client span for one Nuclino API round trip. Route is
// the templated path, e.g. "/v0/items/{id}", so span names stay low-cardinality.
func StartAPISpan(ctx context.Context, method, route string) (context.Context, trace.Span) {
	return tracer().Start(ctx, method+" "+route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("nuclino.api.route", route),
		),
	)
}

// AddToolAttributes tags a span with the MCP tool being served.
func AddToolAttributes(span trace.Span, toolName, category string) {
	span.SetAttributes(
		attribute.String("mcp.tool.name", toolName),
		attribute.String("mcp.tool.category", category),
	)
}

// AddPageAttributes tags a span with the page a call resolved to.
func AddPageAttributes(span trace.Span, pageID, kind string) {
	if pageID != "" {
		span.SetAttributes(attribute.String("nuclino.page.id", pageID))
	}
	if kind != "" {
		span.SetAttributes(attribute.String("nuclino.page.kind", kind))
	}
}

// RecordError records err on the span and marks it failed. A nil err is ignored.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
