package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"
)

var testPolicy = retryPolicy{
	maxAttempts:     3,
	initialInterval: 100 * time.Millisecond,
	maxInterval:     500 * time.Millisecond,
	multiplier:      2.0,
}

// within reports whether d lies in base ± jitterFraction.
func within(d, base time.Duration) bool {
	lo := time.Duration(float64(base) * (1 - jitterFraction))
	hi := time.Duration(float64(base) * (1 + jitterFraction))
	return d >= lo && d <= hi
}

func TestRetryPolicy_Backoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 100 * time.Millisecond},
		{attempt: 2, base: 200 * time.Millisecond},
		{attempt: 3, base: 400 * time.Millisecond},
		{attempt: 4, base: 500 * time.Millisecond}, // capped
		{attempt: 10, base: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt %d", tt.attempt), func(t *testing.T) {
			t.Parallel()

			// Sample repeatedly to cover the jitter range.
			for range 200 {
				if d := testPolicy.backoff(tt.attempt); !within(d, tt.base) {
					t.Fatalf("backoff(%d) = %v, want %v ±%.0f%%", tt.attempt, d, tt.base, jitterFraction*100)
				}
			}
		})
	}
}

func TestRetryPolicy_Delay(t *testing.T) {
	t.Parallel()

	t.Run("longer hint wins", func(t *testing.T) {
		t.Parallel()
		if d := testPolicy.delay(1, 400*time.Millisecond); d != 400*time.Millisecond {
			t.Errorf("delay() = %v, want the 400ms hint", d)
		}
	})

	t.Run("hint is capped", func(t *testing.T) {
		t.Parallel()
		if d := testPolicy.delay(1, time.Minute); d != testPolicy.maxInterval {
			t.Errorf("delay() = %v, want maxInterval %v", d, testPolicy.maxInterval)
		}
	})

	t.Run("no hint uses backoff", func(t *testing.T) {
		t.Parallel()
		if d := testPolicy.delay(1, 0); !within(d, 100*time.Millisecond) {
			t.Errorf("delay() = %v, want about 100ms", d)
		}
	})
}

func TestRetryPolicy_RetryErr(t *testing.T) {
	t.Parallel()

	dialErr := &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	readErr := &net.OpError{Op: "read", Err: errors.New("connection reset")}

	tests := []struct {
		name   string
		method string
		err    error
		want   bool
	}{
		{name: "nil", method: http.MethodGet, err: nil, want: false},
		{name: "canceled", method: http.MethodGet, err: context.Canceled, want: false},
		{name: "deadline", method: http.MethodGet, err: context.DeadlineExceeded, want: false},
		{name: "wrapped canceled", method: http.MethodGet, err: fmt.Errorf("do: %w", context.Canceled), want: false},
		{name: "list projects dial error", method: http.MethodGet, err: dialErr, want: true},
		{name: "update task read error", method: http.MethodPatch, err: readErr, want: true},
		{name: "delete task eof", method: http.MethodDelete, err: io.ErrUnexpectedEOF, want: true},
		{name: "create task dial error", method: http.MethodPost, err: dialErr, want: true},
		{name: "create task read error", method: http.MethodPost, err: readErr, want: false},
		{name: "create project eof", method: http.MethodPost, err: io.ErrUnexpectedEOF, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := testPolicy.retryErr(tt.method, tt.err); got != tt.want {
				t.Errorf("retryErr(%s, %v) = %v, want %v", tt.method, tt.err, got, tt.want)
			}
		})
	}
}

func TestRetryPolicy_RetryStatus(t *testing.T) {
	t.Parallel()

	retried := map[string][]int{
		http.MethodGet:    {429, 500, 502, 503, 504},
		http.MethodPatch:  {429, 500, 503},
		http.MethodDelete: {429, 502, 503},
		http.MethodPost:   {429, 503},
	}
	kept := map[string][]int{
		http.MethodGet:    {200, 304, 400, 404},
		http.MethodPatch:  {200, 409},
		http.MethodDelete: {204, 404},
		http.MethodPost:   {201, 400, 500, 502, 504},
	}

	for method, statuses := range retried {
		for _, s := range statuses {
			if !testPolicy.retryStatus(method, s) {
				t.Errorf("retryStatus(%s, %d) = false, want true", method, s)
			}
		}
	}
	for method, statuses := range kept {
		for _, s := range statuses {
			if testPolicy.retryStatus(method, s) {
				t.Errorf("retryStatus(%s, %d) = true, want false", method, s)
			}
		}
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "absent", value: "", want: 0},
		{name: "seconds", value: "3", want: 3 * time.Second},
		{name: "negative seconds", value: "-4", want: 0},
		{name: "http date", value: now.Add(90 * time.Second).Format(http.TimeFormat), want: 90 * time.Second},
		{name: "date in the past", value: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
		{name: "garbage", value: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := http.Header{}
			if tt.value != "" {
				h.Set("Retry-After", tt.value)
			}
			if got := retryAfter(h, now); got != tt.want {
				t.Errorf("retryAfter(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestReplayable(t *testing.T) {
	t.Parallel()

	req, err := http.NewRequest(http.MethodPatch, "http://store.local/task/t1", strings.NewReader(`{"content":"x"}`))
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	body, err := bufferBody(req)
	if err != nil {
		t.Fatalf("bufferBody() error = %v", err)
	}
	for i := range 2 {
		body.rewind(req)
		got, _ := io.ReadAll(req.Body)
		if string(got) != `{"content":"x"}` {
			t.Errorf("attempt %d body = %q", i+1, got)
		}
		if req.ContentLength != int64(len(got)) {
			t.Errorf("ContentLength = %d, want %d", req.ContentLength, len(got))
		}
	}

	empty, err := http.NewRequest(http.MethodGet, "http://store.local/project", http.NoBody)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	if b, _ := bufferBody(empty); b != nil {
		t.Errorf("bufferBody(NoBody) = %q, want nil", b)
	}
}
