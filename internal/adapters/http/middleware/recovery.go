package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-board-service/internal/adapters/http/dto"
)

// errPanic is what the client sees; the panic value and stack only go to
// the log.
var errPanic = errors.New("handler panic")

// Recovery turns a handler panic into a 500 problem response and an ERROR
// log with the stack, route and board. When the handler had already started
// the response only the log is written. http.ErrAbortHandler is re-panicked
// so net/http can drop the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				pattern, boardName := routeInfo(r)
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("route", pattern),
					slog.String("board", boardName),
					slog.String("request_id", RequestIDFromContext(r.Context())),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
