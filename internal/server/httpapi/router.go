package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the handlers onto the route tree. Only change-password
// requires a bearer token; login and the reset flow must stay reachable
// without one.
func NewRouter(h *Handler, jwtSecret []byte) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/forgot-password", h.ForgotPassword)
			r.Post("/reset-password", h.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(RequireAuth(jwtSecret))
				r.Post("/change-password", h.ChangePassword)
			})
		})

		r.Post("/users", h.CreateUser)
	})

	return r
}
