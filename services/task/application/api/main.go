package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/bizzy/services/task/application/handlers"
	appsvcs "github.com/ghuser/bizzy/services/task/application/services"
)

// Routes registers task endpoints on the provided chi router.
func Routes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", handlers.NewListTasksHandler(svcs).Execute)
		r.Post("/", handlers.NewCreateTaskHandler(svcs).Execute)
		r.Get("/next-code", handlers.NewNextCodeHandler(svcs).Execute)
		r.Get("/summary", handlers.NewSummaryHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetTaskHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewUpdateTaskHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteTaskHandler(svcs).Execute)
	})
}
