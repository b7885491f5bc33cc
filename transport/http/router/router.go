package router

import (
	"tavola/internal/handlers/auth"
	"tavola/internal/handlers/availability"
	"tavola/internal/handlers/catalog"
	"tavola/internal/handlers/floorplan"
	"tavola/internal/handlers/reservation"
	"tavola/internal/handlers/slot"
	"tavola/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Slot         slot.Handler
	Catalog      catalog.Handler
	Availability availability.Handler
	Reservation  reservation.Handler
	FloorPlan    floorplan.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Slot.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.FloorPlan.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
