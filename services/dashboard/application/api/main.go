package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/bizzy/services/dashboard/application/handlers"
	appsvcs "github.com/ghuser/bizzy/services/dashboard/application/services"
)

// Routes registers the dashboard endpoint on the provided chi router.
func Routes(r chi.Router, svcs *appsvcs.Services) {
	r.Get("/dashboard", handlers.NewDashboardHandler(svcs).Execute)
}
