package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/twinboard/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	optional map[string]bool
}

// NewHealthHandler creates a HealthHandler. Checks named in optional are
// reported but cannot make the service unready; a failing optional check
// turns the status to "degraded". The level repository is optional: the
// loop keeps rendering whether or not imports work.
func NewHealthHandler(registry ports.HealthRegistry, optional ...string) *HealthHandler {
	opt := make(map[string]bool, len(optional))
	for _, name := range optional {
		opt[name] = true
	}
	return &HealthHandler{registry: registry, optional: opt}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 503 if any required check
// fails and 200 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	status := statusReady
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			checks[name] = statusOK
			continue
		}
		checks[name] = err.Error()
		switch {
		case !h.optional[name]:
			status = statusNotReady
			code = http.StatusServiceUnavailable
		case status == statusReady:
			status = statusDegraded
		}
	}

	writeJSON(w, r, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
