package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/bizzy/services/assistant/application/handlers"
	appsvcs "github.com/ghuser/bizzy/services/assistant/application/services"
)

// Routes registers assistant endpoints on the provided chi router.
func Routes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/assistant", func(r chi.Router) {
		r.Get("/messages", handlers.NewHistoryHandler(svcs).Execute)
		r.Post("/messages", handlers.NewAskHandler(svcs).Execute)
		r.Post("/attachments", handlers.NewAttachHandler(svcs).Execute)
		r.Get("/recommendation", handlers.NewRecommendationHandler(svcs).Execute)
	})
}
