// Package httpclient is the outbound HTTP client the board service uses to
// reach the project document store. Each call passes, in order, through
//
//	circuit breaker → rate limiter → header injection → span → retry → transport
//
// and is counted in the outbound request metrics.
//
//	client := httpclient.New(&cfg.Client, "project-api", metrics, logger)
//	ctx = httpclient.WithOperation(ctx, "ListTasks")
//	resp, err := client.Do(ctx, req)
//
// Request and correlation IDs placed in the context by the inbound
// middleware are forwarded as X-Request-ID and X-Correlation-ID.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-board-service/internal/platform/config"
	"github.com/jsamuelsen11/go-board-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-board-service/internal/ports"
)

// Client is safe for concurrent use; remote boards share one per process.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	retry       retryPolicy
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a Client for the service named serviceName, which labels the
// breaker, spans and metrics. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		retry:       newRetryPolicy(cfg.Retry),
		metrics:     metrics,
		logger:      logger,
	}
	c.breaker = newBreaker(serviceName, cfg.CircuitBreaker, logger)
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// newBreaker trips after MaxFailures consecutive failures. A caller giving
// up is not a store failure.
func newBreaker(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do sends req. A response with a status that is not retried is returned
// with a nil error. When retries run out on a retryable status both resp and
// err are set. On a breaker rejection, rate limit wait failure or transport
// error resp is nil. The caller closes any non-nil resp.Body.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}
		forwardIDs(ctx, req.Header)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		err := c.send(spanCtx, req.WithContext(spanCtx), &resp)
		endSpan(span, resp, err)
		return struct{}{}, err
	})

	c.recordMetrics(ctx, req.Method, start, resp, err)
	return resp, err
}

// BaseURL is the store root that request paths are appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name is the service name given to New, e.g. "project-api".
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reports the downstream service from the circuit breaker state
// without making a network call. A closed breaker is healthy. A half-open
// breaker wraps ports.ErrDegraded so readiness stays up while the breaker
// probes. An open breaker is a plain failure.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: %w (circuit breaker half-open)", c.serviceName, ports.ErrDegraded)
	default:
		return fmt.Errorf("%s: circuit breaker %s", c.serviceName, state)
	}
}

// startSpan opens the client span and writes the trace context into req's
// headers. The span is "project-api ListTasks" when an operation is set and
// "HTTP GET project-api" otherwise.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	name := "HTTP " + req.Method + " " + c.serviceName
	attrs := []attribute.KeyValue{
		telemetry.AttrHTTPMethod.String(req.Method),
		attribute.String("http.url", req.URL.String()),
		telemetry.AttrPeerService.String(c.serviceName),
	}
	if op := operationFrom(ctx); op != "" {
		name = c.serviceName + " " + op
		attrs = append(attrs, telemetry.AttrOperation.String(op))
	}

	ctx, span := otel.GetTracerProvider().Tracer("httpclient").Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

// endSpan records the response outcome on the span.
func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics runs outside the breaker so rejected calls are counted too.
// A call with no response, or a 4xx or 5xx one, is an error.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	status, result := 0, telemetry.ResultError
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = telemetry.ResultSuccess
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = telemetry.ResultCircuitOpen
	}
	c.metrics.RecordClientRequest(ctx, c.serviceName, operationFrom(ctx), method, status, result, time.Since(start).Seconds())
}

// toUint32 clamps v into [0, MaxUint32].
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
