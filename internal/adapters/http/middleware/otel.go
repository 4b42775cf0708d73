package middleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-board-service/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/go-board-service/internal/adapters/http"

// OpenTelemetry opens a server span per request, continuing any W3C trace
// context in the headers, and records the server request metrics. metrics
// may be nil.
//
// Once routing has run the span is renamed "METHOD pattern", for example
// "POST /api/v1/boards/{board}/moves", and carries the board name.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.url", r.URL.String()),
				),
			)
			defer span.End()

			rw := newResponseWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			pattern, board := routeInfo(r)
			endServerSpan(span, r.Method, pattern, board, rw.statusCode)
			metrics.RecordServerRequest(ctx, r.Method, pattern, board, rw.statusCode, time.Since(start).Seconds())
		})
	}
}

// endServerSpan names the span after the route and marks 5xx responses as
// errors. A 4xx is the caller's fault and leaves the span status unset.
func endServerSpan(span trace.Span, method, pattern, board string, status int) {
	span.SetName(method + " " + pattern)
	span.SetAttributes(
		telemetry.AttrHTTPRoute.String(pattern),
		attribute.Int("http.status_code", status),
	)
	if board != "" {
		span.SetAttributes(telemetry.AttrBoard.String(board))
	}
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
}
