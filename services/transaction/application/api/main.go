package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/bizzy/services/transaction/application/handlers"
	appsvcs "github.com/ghuser/bizzy/services/transaction/application/services"
)

// Routes registers transaction endpoints on the provided chi router.
func Routes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", handlers.NewListTransactionsHandler(svcs).Execute)
		r.Post("/", handlers.NewCreateTransactionHandler(svcs).Execute)
		r.Get("/types", handlers.NewTypesHandler(svcs).Execute)
		r.Get("/summary", handlers.NewSummaryHandler(svcs).Execute)
		r.Get("/trend", handlers.NewTrendHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetTransactionHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewUpdateTransactionHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteTransactionHandler(svcs).Execute)
	})
}
