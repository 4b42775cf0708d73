package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/go-board-service/internal/platform/config"
	"github.com/jsamuelsen11/go-board-service/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// retryPolicy decides whether and when a failed attempt is sent again.
//
// Creates (POST) are not idempotent: they are only replayed when the store
// cannot have acted on them, that is when the connection was never
// established or the store answered 429 or 503.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts:     cfg.MaxAttempts,
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		multiplier:      cfg.Multiplier,
	}
}

// backoff is the exponential delay before retry number attempt (1 is the
// first retry), capped at maxInterval and then jittered.
func (p retryPolicy) backoff(attempt int) time.Duration {
	d := min(float64(p.initialInterval)*math.Pow(p.multiplier, float64(attempt-1)), float64(p.maxInterval))
	d += d * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// delay is the wait before retry number attempt. A Retry-After hint from the
// store wins when it is longer than the backoff, up to maxInterval.
func (p retryPolicy) delay(attempt int, hint time.Duration) time.Duration {
	return max(p.backoff(attempt), min(hint, p.maxInterval))
}

// retryErr reports whether a transport error is worth another attempt.
// Cancellation and deadlines never are. Idempotent requests retry on any
// other error; the rest only when dialing failed.
func (p retryPolicy) retryErr(method string, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case idempotent(method):
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// retryStatus reports whether a response status is worth another attempt.
// 429 and 503 mean the request was refused and are always retried; other
// server errors only for idempotent methods.
func (p retryPolicy) retryStatus(method string, status int) bool {
	switch {
	case status == http.StatusTooManyRequests, status == http.StatusServiceUnavailable:
		return true
	case status >= http.StatusInternalServerError:
		return idempotent(method)
	default:
		return false
	}
}

// idempotent reports whether replaying method cannot duplicate a document.
// The store's PATCH replaces whole fields, so it is safe to repeat.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return true
	default:
		return false
	}
}

// retryAfter parses a Retry-After header given either as delay seconds or
// as an HTTP date. It returns zero when the header is absent or malformed.
func retryAfter(h http.Header, now time.Time) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

// replayable holds a request body read into memory so every attempt sends
// the same bytes.
type replayable []byte

func bufferBody(req *http.Request) (replayable, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func (b replayable) rewind(req *http.Request) {
	if b == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(b))
	req.ContentLength = int64(len(b))
}

// discard drains and closes a response that will be retried so its
// connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// send runs the attempts for req. The last response is stored in *resp
// instead of returned, which keeps the bodyclose linter quiet; the caller
// closes it. When retries run out on a retryable status *resp is set and
// the error describes the status.
func (c *Client) send(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	body, err := bufferBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := range c.retry.maxAttempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, hint, lastErr); err != nil {
				return err
			}
		}
		body.rewind(req)

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !c.retry.retryErr(req.Method, err) {
				return err
			}
			lastErr, hint = err, 0
			continue
		}

		if !c.retry.retryStatus(req.Method, r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		hint = retryAfter(r.Header, time.Now())
		if attempt == c.retry.maxAttempts-1 {
			*resp = r
			return lastErr
		}
		discard(r)
	}

	return lastErr
}

// pause logs the coming retry and waits out its delay or ctx.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, hint time.Duration, lastErr error) error {
	d := c.retry.delay(attempt, hint)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", operationFrom(ctx)),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", d),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
