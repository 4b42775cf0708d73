package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/go-board-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusFailing  = "failing"
	statusNotReady = "not_ready"
)

// checkResult is one entry of the readiness "checks" object.
type checkResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
	boards   ports.BoardRegistry
}

// NewHealthHandler creates a HealthHandler. boards may be nil, in which case
// liveness does not list the hosted boards.
func NewHealthHandler(registry ports.HealthRegistry, boards ports.BoardRegistry) *HealthHandler {
	return &HealthHandler{registry: registry, boards: boards}
}

// Liveness handles GET /health/live. It always returns 200.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{"status": statusOK}
	if h.boards != nil {
		resp["boards"] = h.boards.Names()
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// Readiness handles GET /health/ready. Board mutations are served from
// memory, so a check wrapping ports.ErrDegraded keeps the service ready and
// only marks it degraded. Any other failure returns 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]checkResult, len(results))
	var degraded, failing bool
	for name, err := range results {
		switch {
		case err == nil:
			checks[name] = checkResult{Status: statusOK}
		case errors.Is(err, ports.ErrDegraded):
			degraded = true
			checks[name] = checkResult{Status: statusDegraded, Error: err.Error()}
		default:
			failing = true
			checks[name] = checkResult{Status: statusFailing, Error: err.Error()}
		}
	}

	status, code := statusReady, http.StatusOK
	switch {
	case failing:
		status, code = statusNotReady, http.StatusServiceUnavailable
	case degraded:
		status = statusDegraded
	}

	writeJSON(w, r, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
