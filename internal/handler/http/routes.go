package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/login-by-party", h.loginByParty)
		r.Post("/api/auth/register", h.register)
		r.Get("/api/auth/verify", h.verifyEmail)
		r.Get("/api/auth/check-email", h.checkEmail)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/user/me", h.me)
	})

	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return router
}
