// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/twinboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/twinboard/internal/adapters/http/handlers"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Stage  *handlers.StageHandler
	Level  *handlers.LevelHandler
	Loop   *handlers.LoopHandler
	Health *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown routes and
// methods answer with problem+json like every other error.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusMethodNotAllowed, r.Method+" is not allowed on "+r.URL.Path)
	})

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/stages/validate", h.Stage.Validate)
		r.Post("/stages/validate-batch", h.Stage.ValidateBatch)
		r.Post("/stages/convert", h.Stage.Convert)

		r.Get("/levels", h.Level.List)
		// chi matches the static segment ahead of {name} for PUT; GET
		// /levels/current reaches Get, which rejects the reserved name.
		r.Put("/levels/current", h.Level.Select)
		r.Get("/levels/{name}", h.Level.Get)
		r.Post("/levels/{name}/import", h.Level.Import)

		r.Get("/loop", h.Loop.Status)
		r.Get("/frame", h.Loop.Frame)
	})

	return r
}
