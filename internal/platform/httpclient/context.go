package httpclient

import (
	"context"
	"net/http"
)

// Keys for the values the client reads from a request context.
type (
	requestIDKey     struct{}
	correlationIDKey struct{}
	operationKey     struct{}
)

// WithRequestID sets the X-Request-ID forwarded on outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID sets the X-Correlation-ID forwarded on outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// WithOperation labels outbound calls made with ctx, e.g. "UpdateTask". The
// label names the span and is recorded on retry logs and metrics.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey{}, op)
}

func operationFrom(ctx context.Context) string {
	op, _ := ctx.Value(operationKey{}).(string)
	return op
}

// forwardIDs copies the request and correlation IDs in ctx onto h.
func forwardIDs(ctx context.Context, h http.Header) {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		h.Set("X-Request-ID", id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		h.Set("X-Correlation-ID", id)
	}
}
