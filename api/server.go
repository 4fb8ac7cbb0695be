/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/sessions/*       Session lifecycle and per-session commands
  /metrics              Prometheus scrape endpoint

SECURITY NOTE:
  No authentication middleware. Sessions are only as private as their
  uuid. Fine for a local simulation, not for shared deployments.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", h.ListSessions)
			r.Post("/", h.CreateSession)

			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", h.CloseSession)
				r.Get("/state", h.GetState)

				r.Post("/bake", h.StartBake)
				r.Post("/upgrades/{uid}", h.BuyUpgrade)
				r.Post("/flour", h.BuyFlour)
				r.Post("/invest", h.FeedInvestment)
				r.Post("/missions/{action}", h.CompleteMission)
				r.Post("/day", h.AdvanceDay)
				r.Post("/impulse", h.Impulse)

				r.Route("/credit", func(r chi.Router) {
					r.Get("/", h.GetCredit)
					r.Post("/borrow", h.Borrow)
					r.Post("/pay", h.PaySupplier)
					r.Post("/loan", h.TakeLoan)
					r.Post("/fund", h.SaveToFund)
				})
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
