package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
	"github.com/jsamuelsen11/go-board-service/internal/platform/httpclient"
)

// Requester speaks JSON to the project document store over an
// httpclient.Client and turns store failures into domain errors.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester wraps client. logger receives one line per failed call.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// HealthCheck reports the circuit breaker state of the underlying client.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

// Do sends method path with in as the JSON body, when non-nil, and decodes a
// 2xx response into out, when non-nil. The store takes a body on every
// method, DELETE included.
//
// Non-2xx answers go through TranslateHTTPError. A request that never got an
// answer, including one refused by an open breaker, wraps
// domain.ErrUnavailable.
func (r *Requester) Do(ctx context.Context, method, path string, in, out any) error {
	req, err := r.newRequest(ctx, method, path, in)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				r.logger.WarnContext(ctx, "closing store response", slog.Any("error", cerr))
			}
		}()
	}

	attrs := []slog.Attr{slog.String("method", method), slog.String("path", path)}
	switch {
	case resp != nil && !is2xx(resp.StatusCode):
		// Retries exhausted on a status still leave the last response.
		r.logger.LogAttrs(ctx, slog.LevelError, "store rejected request",
			append(attrs, slog.Int("status", resp.StatusCode))...)
		return TranslateHTTPError(resp)
	case err != nil:
		r.logger.LogAttrs(ctx, slog.LevelError, "store request failed", append(attrs, slog.Any("error", err))...)
		return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrUnavailable, err)
	case out == nil:
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (r *Requester) newRequest(ctx context.Context, method, path string, in any) (*http.Request, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	var body io.Reader = http.NoBody
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func is2xx(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
