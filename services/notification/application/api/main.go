package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/bizzy/services/notification/application/handlers"
	appsvcs "github.com/ghuser/bizzy/services/notification/application/services"
)

// Routes registers notification endpoints on the provided chi router.
func Routes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", handlers.NewListHandler(svcs).Execute)
		r.Get("/stream", handlers.NewStreamHandler(svcs).Execute)
		r.Post("/{id}/read", handlers.NewMarkReadHandler(svcs).Execute)
	})
}
