// Package telemetry sets up the OpenTelemetry tracer and meter providers of
// the board service, exporting to stdout in development and OTLP/HTTP
// elsewhere, and registers the service's instruments.
//
//	tp, err := telemetry.InitTracer(ctx, "board-service", telemetry.ExporterStdout, "")
//	mp, err := telemetry.InitMeter(ctx, "board-service", telemetry.ExporterStdout, "")
//	metrics, err := telemetry.NewMetrics(mp, "board-service")
//	metrics.RecordMutation(ctx, "kanban", "move", nil)
//
// Every Record method is a no-op on a nil *Metrics, which is what callers
// hold when telemetry is disabled.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Result attribute values. ResultCircuitOpen marks outbound calls the
// breaker rejected.
const (
	ResultSuccess     = "success"
	ResultError       = "error"
	ResultDropped     = "dropped"
	ResultCircuitOpen = "circuit_open"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrBoard       = attribute.Key("board.name")
	AttrOperation   = attribute.Key("board.operation")
)

var errEmptyEndpoint = errors.New("otlp exporter requires an endpoint")

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	BoardMutationTotal    metric.Int64Counter
	BoardSyncTotal        metric.Int64Counter
	BoardSyncDuration     metric.Float64Histogram
}

// RecordMutation counts one board store operation. Safe to call on a nil
// receiver.
func (m *Metrics) RecordMutation(ctx context.Context, board, operation string, err error) {
	if m == nil {
		return
	}
	m.BoardMutationTotal.Add(ctx, 1, metric.WithAttributes(
		AttrBoard.String(board),
		AttrOperation.String(operation),
		AttrResult.String(resultOf(err)),
	))
}

// RecordSync records one sync worker save, or a dropped snapshot when result
// is ResultDropped. Safe to call on a nil receiver.
func (m *Metrics) RecordSync(ctx context.Context, board, result string, seconds float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(AttrBoard.String(board), AttrResult.String(result))
	m.BoardSyncTotal.Add(ctx, 1, attrs)
	if result != ResultDropped {
		m.BoardSyncDuration.Record(ctx, seconds, attrs)
	}
}

// RecordServerRequest counts one inbound API request. Statuses of 400 and
// above count as errors. board is empty for routes outside a board. Safe to
// call on a nil receiver.
func (m *Metrics) RecordServerRequest(ctx context.Context, method, route, board string, status int, seconds float64) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if status >= 400 {
		result = ResultError
	}
	kvs := []attribute.KeyValue{
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatus.Int(status),
		AttrResult.String(result),
	}
	if board != "" {
		kvs = append(kvs, AttrBoard.String(board))
	}
	attrs := metric.WithAttributes(kvs...)
	m.ServerRequestDuration.Record(ctx, seconds, attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}

// RecordClientRequest counts one outbound call to service. status is 0 when
// no response arrived. Safe to call on a nil receiver.
func (m *Metrics) RecordClientRequest(ctx context.Context, service, operation, method string, status int, result string, seconds float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPStatus.Int(status),
		AttrPeerService.String(service),
		AttrOperation.String(operation),
		AttrResult.String(result),
	)
	m.ClientRequestDuration.Record(ctx, seconds, attrs)
	m.ClientRequestTotal.Add(ctx, 1, attrs)
}

func resultOf(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

// InitTracer creates and registers a global TracerProvider.
//
// The exporter parameter selects the span exporter: ExporterOTLP uses
// OTLP/HTTP with the given endpoint and ExporterStdout a pretty-printed
// stdout exporter for development. Any other value is an error.
//
// The returned TracerProvider must be shut down when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider.
//
// The exporter parameter selects the metric exporter: ExporterOTLP uses
// OTLP/HTTP with the given endpoint and ExporterStdout a stdout exporter for
// development. Any other value is an error.
//
// The returned MeterProvider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics registers the service instruments on a meter named after the
// service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	r := registrar{meter: mp.Meter(serviceName)}
	m := &Metrics{
		ServerRequestDuration: r.histogram("http.server.request.duration", "Duration of board API requests"),
		ServerRequestTotal:    r.counter("http.server.request.total", "Board API requests served", "{request}"),
		ClientRequestDuration: r.histogram("http.client.request.duration", "Duration of project API calls"),
		ClientRequestTotal:    r.counter("http.client.request.total", "Project API calls made", "{request}"),
		BoardMutationTotal:    r.counter("board.mutation.total", "Board store operations", "{operation}"),
		BoardSyncTotal:        r.counter("board.sync.total", "Board snapshots saved or dropped", "{snapshot}"),
		BoardSyncDuration:     r.histogram("board.sync.duration", "Duration of board snapshot saves"),
	}
	if err := errors.Join(r.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// registrar creates instruments on one meter and keeps the first error per
// instrument.
type registrar struct {
	meter metric.Meter
	errs  []error
}

func (r *registrar) histogram(name, desc string) metric.Float64Histogram {
	h, err := r.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

func (r *registrar) counter(name, desc, unit string) metric.Int64Counter {
	c, err := r.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		host, insecure, err := otlpTarget(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	}
	return nil, fmt.Errorf("unsupported trace exporter %q", exporter)
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdoutmetric.New()
	case ExporterOTLP:
		host, insecure, err := otlpTarget(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	}
	return nil, fmt.Errorf("unsupported metric exporter %q", exporter)
}

// otlpTarget turns a collector endpoint such as "http://otel-collector:4318"
// into the host:port the OTLP exporters dial. Anything but an https URL is
// sent in plaintext; a bare "host:port" is used as is.
func otlpTarget(endpoint string) (host string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, errEmptyEndpoint
	}
	u, perr := url.Parse(endpoint)
	if perr != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}
