package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/bizzy/services/document/application/handlers"
	appsvcs "github.com/ghuser/bizzy/services/document/application/services"
)

// Routes registers document endpoints on the provided chi router.
func Routes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/documents", func(r chi.Router) {
		r.Get("/", handlers.NewListHandler(svcs).Execute)
		r.Post("/", handlers.NewUploadHandler(svcs).Execute)
		r.Get("/{id}/content", handlers.NewContentHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteHandler(svcs).Execute)
	})
}
