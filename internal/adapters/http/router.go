// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-board-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-board-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-board-service/internal/domain"
)

// NewRouter mounts the health probes and the board API on a chi mux.
// Middleware wraps every route, outermost first. Unknown paths answer with a
// not-found problem.
func NewRouter(
	boardHandler *handlers.BoardHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, fmt.Errorf("no route for %s: %w", r.URL.Path, domain.ErrNotFound))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/boards", boardHandler.ListBoards)

		r.Route("/boards/{"+handlers.BoardParam+"}", func(r chi.Router) {
			r.Get("/", boardHandler.GetBoard)

			// Structure.
			r.Post("/stages", boardHandler.AddStage)
			r.Post("/columns", boardHandler.AddColumn)
			r.Patch("/entities/{id}", boardHandler.RenameEntity)
			r.Delete("/entities/{id}", boardHandler.DeleteEntity)

			// Cards.
			r.Post("/columns/{columnId}/cards", boardHandler.AddCard)
			r.Patch("/cards/{cardId}", boardHandler.UpdateCard)
			r.Post("/cards/{cardId}/toggle", boardHandler.ToggleCard)

			r.Post("/moves", boardHandler.Move)
		})
	})

	return r
}
