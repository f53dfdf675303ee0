package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/bizzy/pkg/app"
	"github.com/ghuser/bizzy/pkg/httpx"
	"github.com/ghuser/bizzy/services/account/application/handlers"
	appsvcs "github.com/ghuser/bizzy/services/account/application/services"
)

// PublicRoutes registers the unauthenticated auth endpoints.
func PublicRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	r.Route("/auth", func(r chi.Router) {
		r.Use(httpx.CredentialRateLimit())
		r.Post("/register", handlers.NewRegisterHandler(svcs).Execute)
		r.Post("/login", handlers.NewLoginHandler(svcs, a.SessionStore).Execute)
	})
}

// Routes registers the account endpoints that require a session.
func Routes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	r.Post("/auth/logout", handlers.NewLogoutHandler(a.SessionStore).Execute)
	r.Route("/profile", func(r chi.Router) {
		r.Get("/", handlers.NewGetProfileHandler(svcs).Execute)
		r.Put("/", handlers.NewUpdateProfileHandler(svcs).Execute)
	})
}
