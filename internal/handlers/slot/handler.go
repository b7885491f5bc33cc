package slot

import (
	"net/http"

	"tavola/infras/otel"
	"tavola/internal/domains/ledger/model/dto"
	"tavola/internal/domains/ledger/service"
	"tavola/shared/constant"
	"tavola/shared/validator"
	"tavola/transport/http/middleware"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booker
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Booker, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/slots", func(routerGroup chi.Router) {
		routerGroup.Get("/status", handler.GetSlotStatus)
		routerGroup.With(handler.middleware.Auth, handler.middleware.RBAC).Post("/sync", handler.SyncSlot)
	})
}

// GetSlotStatus returns the capacity ledger row for one slot.
// @Summary Get slot capacity status
// @Description Retrieve total, booked and remaining capacity for a (date, slot) pair.
// @Tags Slot
// @Produce json
// @Param date query string true "Slot date (YYYY-MM-DD)"
// @Param slot query string true "Slot ID (e.g. pranzo, cena)"
// @Success 200 {object} response.Data[dto.SlotStatusResponse] "Slot status"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/slots/status [get]
func (handler *Handler) GetSlotStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlotStatus")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	slotID := r.URL.Query().Get(constant.RequestParamSlot)

	status, err := handler.service.Status(ctx, date, slotID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slot status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}

// SyncSlot recomputes a slot's ledger row from the reservation store.
// @Summary Repair a slot's capacity ledger
// @Description Recount booked covers and rewrite the ledger row. Admin only.
// @Tags Slot
// @Accept json
// @Produce json
// @Param request body dto.SyncRequest true "Sync Request"
// @Success 200 {object} response.Data[dto.SlotStatusResponse] "Repaired slot status"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/slots/sync [post]
// @Security BearerAuth
func (handler *Handler) SyncSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncSlot")
	defer scope.End()

	req := dto.SyncRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	status, err := handler.service.Sync(ctx, req.Date, req.SlotID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sync slot")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Slot ledger synced by user " + user)

	response.WithJSON(w, http.StatusOK, status)
}
