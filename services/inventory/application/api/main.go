package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/bizzy/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/bizzy/services/inventory/application/services"
)

// Routes registers inventory endpoints on the provided chi router.
func Routes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
		r.Post("/", handlers.NewCreateItemHandler(svcs).Execute)
		r.Get("/next-code", handlers.NewNextCodeHandler(svcs).Execute)
		r.Get("/low-stock", handlers.NewLowStockHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewUpdateItemHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
	})
}
