package ports

import (
	"context"
	"errors"
)

// ErrDegraded marks a health check failure that leaves the service able to
// serve requests, such as a downstream probing recovery. Checkers wrap it so
// readiness can tell a degraded dependency from a failed one.
var ErrDegraded = errors.New("degraded")

// HealthChecker reports the health of one component: a board's persistence
// backend or the project API.
type HealthChecker interface {
	// Name identifies the component in readiness output,
	// e.g. "project-api" or "board-kanban".
	Name() string

	// HealthCheck returns nil when healthy. Implementations must honour ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one result per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
