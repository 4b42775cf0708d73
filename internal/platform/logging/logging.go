// Package logging builds the service's slog logger and carries the
// per-request logger through context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Errors are logged with the operation, the board and entity ID where there
// is one, and the full chain under "error":
//
//	logger.ErrorContext(ctx, "board sync failed",
//	    slog.String("operation", "Save"),
//	    slog.String("board", name),
//	    slog.Any("error", err),
//	)
//
// Inside a request the logging middleware has already added request_id and
// correlation_id to the context logger.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// New creates the service logger. level is any value slog.Level accepts
// ("debug", "INFO", "warn+2"); anything else falls back to info. format
// "text" selects the text handler and every other value JSON. Debug and
// lower levels add source locations. Sensitive attributes are redacted.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := Lookup(ctx); ok {
		return logger
	}
	return slog.Default()
}

// Lookup returns the logger stored in ctx, if any.
func Lookup(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(contextKey{}).(*slog.Logger)
	return logger, ok && logger != nil
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
