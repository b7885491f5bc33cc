//go:build wireinject
// +build wireinject

package di

import (
	"tavola/config"
	"tavola/infras/jwt"
	"tavola/infras/kafka"
	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/infras/redis"
	"tavola/infras/s3"
	"tavola/permissions"
	"tavola/shared/cache"
	"tavola/transport/http"
	"tavola/transport/http/middleware"
	"tavola/transport/http/router"

	ledgerRepository "tavola/internal/domains/ledger/repository"
	ledgerService "tavola/internal/domains/ledger/service"

	catalogRepository "tavola/internal/domains/catalog/repository"
	catalogService "tavola/internal/domains/catalog/service"

	assignmentRepository "tavola/internal/domains/assignment/repository"
	assignmentService "tavola/internal/domains/assignment/service"

	reservationRepository "tavola/internal/domains/reservation/repository"
	reservationService "tavola/internal/domains/reservation/service"

	floorplanRepository "tavola/internal/domains/floorplan/repository"
	floorplanService "tavola/internal/domains/floorplan/service"

	authService "tavola/internal/domains/auth/service"
	userRepository "tavola/internal/domains/user/repository"
	userService "tavola/internal/domains/user/service"

	authHandler "tavola/internal/handlers/auth"
	availabilityHandler "tavola/internal/handlers/availability"
	catalogHandler "tavola/internal/handlers/catalog"
	floorplanHandler "tavola/internal/handlers/floorplan"
	reservationHandler "tavola/internal/handlers/reservation"
	slotHandler "tavola/internal/handlers/slot"
	userHandler "tavola/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

// provideCoverCounter hands the ledger its recount source. Kept as an
// explicit provider so the ledger package never imports the reservation
// store.
func provideCoverCounter(repo reservationRepository.Reservation) ledgerService.CoverCounter {
	return repo
}

var ledgerDomain = wire.NewSet(
	ledgerRepository.New,
	provideCoverCounter,
	ledgerService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewArea,
	catalogRepository.NewTable,
	catalogRepository.NewGroup,
	catalogRepository.NewMember,
	catalogService.New,
)

var assignmentDomain = wire.NewSet(
	assignmentRepository.New,
	assignmentService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.NewScheduleChecker,
	reservationService.New,
)

var floorplanDomain = wire.NewSet(
	floorplanRepository.New,
	floorplanService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var domains = wire.NewSet(
	ledgerDomain,
	catalogDomain,
	assignmentDomain,
	reservationDomain,
	floorplanDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	slotHandler.New,
	catalogHandler.New,
	availabilityHandler.New,
	reservationHandler.New,
	floorplanHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
