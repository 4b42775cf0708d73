package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-board-service/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler runs on its own goroutine
// against a buffered writer with a context carrying the deadline. If it
// finishes in time the buffer is copied out; otherwise whatever it buffered
// is discarded, a 504 problem response is written and later writes fail with
// http.ErrHandlerTimeout. A handler panic is re-raised on the serving
// goroutine for Recovery.
//
// A board mutation that completes after its deadline still takes effect; only
// the response is lost.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.copyTo(w)
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				dto.WriteErrorResponse(w, r, ctx.Err())
			}
		})
	}
}

// timeoutWriter buffers a response until Timeout decides whether to send it.
type timeoutWriter struct {
	mu       sync.Mutex
	header   http.Header
	body     bytes.Buffer
	status   int
	timedOut bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if tw.status == 0 {
		tw.status = http.StatusOK
	}
	return tw.body.Write(b)
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.status != 0 {
		return
	}
	tw.status = code
}

// copyTo sends the buffered response. tw.mu must be held.
func (tw *timeoutWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), tw.header)
	if tw.status != 0 {
		w.WriteHeader(tw.status)
	}
	if tw.body.Len() > 0 {
		_, _ = w.Write(tw.body.Bytes())
	}
}
