// Package health provides a thread-safe health check registry for tracking
// the health of downstream dependencies and board stores. The registry is
// used by the readiness endpoint to determine whether the service can accept
// traffic.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-board-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Defaults for CheckAll.
const (
	DefaultCheckTimeout = 2 * time.Second
	maxConcurrentChecks = 8
)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness probe.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual health check. Non-positive values
// keep the default.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components. The slice is copied
// under a read lock so checks run without holding the lock.
//
// Checks run concurrently, at most maxConcurrentChecks at a time, each with
// its own timeout. When two checkers share a name the one registered last
// wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))

	var g errgroup.Group
	g.SetLimit(maxConcurrentChecks)
	for i, c := range checkers {
		g.Go(func() error {
			errs[i] = r.check(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: health check: %w", c.Name(), ctx.Err())
	}
}
