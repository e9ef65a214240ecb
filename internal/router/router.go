package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quotedesk/quotedesk/internal/middleware/metrics"
	"github.com/quotedesk/quotedesk/internal/setup"
)

// New wires every route. Admin-only routes stack AdminOnly on top of the
// group-level ordering guarantee of the auth middleware: authentication
// is always checked before the role.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(chimw.Compress(5))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(authMw.NeedAuth()).Get("/me", h.Me)
	})

	r.Route("/quotations", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())
			r.Post("/", h.CreateQuotation)
			r.Get("/my-quotations", h.MyQuotations)
			r.Get("/{id}", h.GetQuotation)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMw.AdminOnly())
			r.Get("/", h.AllQuotations)
			r.Patch("/{id}/status", h.UpdateQuotationStatus)
			r.Delete("/{id}", h.DeleteQuotation)
		})
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Use(authMw.AdminOnly())
		r.Get("/stats", h.DashboardStats)
	})

	return r
}
