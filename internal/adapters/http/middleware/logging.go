package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-board-service/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion events.
// It creates a child logger enriched with the request ID and correlation ID
// from context, stores it via logging.WithLogger for downstream use, and
// logs completion with method, path, route pattern, board, status, response
// size and duration. At DEBUG it also logs the request headers.
//
// Completion is logged at ERROR for 5xx responses, WARN for 4xx and INFO
// otherwise.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.LogAttrs(ctx, slog.LevelDebug, "request headers", headerAttrs(r.Header)...)
			}

			rw := newResponseWriter(w)
			req := r.WithContext(ctx)
			next.ServeHTTP(rw, req)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			}
			pattern, boardName := routeInfo(req)
			if pattern != r.URL.Path {
				attrs = append(attrs, slog.String("route", pattern))
			}
			if boardName != "" {
				attrs = append(attrs, slog.String("board", boardName))
			}

			child.LogAttrs(ctx, levelFor(rw.statusCode), "request completed", attrs...)
		})
	}
}

// headerAttrs renders h sorted by name, one attribute per header with its
// values joined by commas. Credential headers listed in
// logging.SensitiveHeaders log as "[REDACTED]".
func headerAttrs(h http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(h))
	for _, name := range slices.Sorted(maps.Keys(h)) {
		v := strings.Join(h[name], ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			v = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(name, v))
	}
	return attrs
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
