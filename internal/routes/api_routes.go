package routes

import (
	"github.com/go-chi/chi/v5"

	"jamii-hub/mtaani/internal/api"
	"jamii-hub/mtaani/internal/middleware"
)

// RegisterAPIRoutes registers all /api routes. The identity gate wraps
// the whole group: it authenticates POSTs and lets GETs through
// untouched.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, handlers *api.Handlers) {
	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Use(middleware.IdentityGate(deps.Verifier, deps.Services.Provisioning))

		apiRouter.Post("/auth/register", handlers.Register())

		apiRouter.Get("/events", handlers.ListEvents())
		apiRouter.Get("/events/{id}", handlers.GetEvent())
		apiRouter.Post("/events", handlers.CreateEvent())

		apiRouter.Post("/tickets", handlers.PurchaseTicket())
		apiRouter.Get("/tickets/event/{eventId}", handlers.ListTicketsByEvent())
		apiRouter.Get("/tickets/user/{userId}", handlers.ListTicketsByUser())

		apiRouter.Get("/harambees", handlers.ListHarambees())
		apiRouter.Get("/harambees/{id}", handlers.GetHarambee())
		apiRouter.Get("/harambees/{id}/contributions", handlers.ListHarambeeContributions())
		apiRouter.Post("/harambees", handlers.CreateHarambee())

		apiRouter.Post("/contributions", handlers.CreateContribution())
		apiRouter.Get("/contributions/user/{userId}", handlers.ListUserContributions())

		apiRouter.Get("/rentals", handlers.ListRentals())
		apiRouter.Get("/rentals/{id}", handlers.GetRental())
		apiRouter.Post("/rentals", handlers.CreateRental())

		apiRouter.Get("/alerts", handlers.ListAlerts())
		apiRouter.Get("/alerts/{id}", handlers.GetAlert())
		apiRouter.Get("/alerts/{alertId}/comments", handlers.ListAlertComments())
		apiRouter.Post("/alerts", handlers.CreateAlert())

		apiRouter.Post("/comments", handlers.CreateComment())
	})
}
