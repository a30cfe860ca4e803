// Package httpapi assembles the chi router.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"eventstudio/internal/http/handlers"
	"eventstudio/internal/infra"
	"eventstudio/internal/middleware"
)

// NewRouter wires middleware and the versioned API routes.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.AllowedOrigins),
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.Health)
		r.Get("/models/status", app.ModelsStatus)
		r.Get("/history", app.HistoryHandler)

		// Generation endpoints are the expensive ones; only they sit behind
		// the per-client limit.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
			r.Post("/generate-email", app.GenerateEmail)
			r.Post("/generate-poster", app.GeneratePoster)
			r.Post("/generate-invitation", app.GenerateInvitation)
		})
	})

	return r
}
