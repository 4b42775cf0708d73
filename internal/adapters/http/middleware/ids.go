package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-board-service/internal/platform/httpclient"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	// maxIDLength bounds inbound request and correlation IDs.
	maxIDLength = 128
)

// Context keys are private to this package. httpclient keeps its own keys,
// which the With* helpers populate alongside these.
type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id in ctx for handlers and for the X-Request-ID
// header of outbound project store calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request ID, or "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID stores id in ctx for handlers and for the
// X-Correlation-ID header of outbound project store calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID, or "" when none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID reuses a well-formed X-Request-ID header and otherwise assigns a
// new UUID. The ID goes into the context and the response header.
func RequestID() func(http.Handler) http.Handler {
	return propagateID(headerRequestID, WithRequestID, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID reuses a well-formed X-Correlation-ID header and otherwise
// falls back to the request ID, so it must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return propagateID(headerCorrelationID, WithCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

func propagateID(
	header string,
	store func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !validID(id) {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}

// validID accepts 1 to maxIDLength bytes of printable ASCII without spaces.
// IDs are echoed into logs and outbound headers; anything else is replaced.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := range len(id) {
		if c := id[i]; c <= ' ' || c > '~' {
			return false
		}
	}
	return true
}
