package availability

import (
	"net/http"
	"strconv"

	"tavola/infras/otel"
	"tavola/internal/domains/assignment/model/dto"
	"tavola/internal/domains/assignment/service"
	"tavola/shared/constant"
	"tavola/shared/failure"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Planner
	otel    otel.Otel
}

func New(service service.Planner, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/tables", handler.GetAvailableTables)
		routerGroup.Get("/plan", handler.GetPlan)
	})
}

// GetAvailableTables lists the free tables for a slot.
// @Summary Get available tables
// @Description Active tables not held by any assignment in the given slot.
// @Tags Availability
// @Produce json
// @Param date query string true "Slot date (YYYY-MM-DD)"
// @Param time query string true "Service time (HH:MM)"
// @Param slot query string true "Slot ID"
// @Success 200 {object} response.Data[dto.AvailableTablesResponse] "Available tables"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/tables [get]
func (handler *Handler) GetAvailableTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableTables")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	slotTime := r.URL.Query().Get(constant.RequestParamTime)
	slotID := r.URL.Query().Get(constant.RequestParamSlot)

	tables, err := handler.service.AvailableTables(ctx, date, slotTime, slotID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available tables")

		response.WithError(w, err)

		return
	}

	res := dto.AvailableTablesResponse{}
	res.FromModels(date, slotTime, slotID, tables)

	response.WithJSON(w, http.StatusOK, res)
}

// GetPlan previews the seating the planner would pick, without committing.
// @Summary Preview a table plan
// @Description Deterministic single-table or joined-table proposal for a party size.
// @Tags Availability
// @Produce json
// @Param date query string true "Slot date (YYYY-MM-DD)"
// @Param time query string true "Service time (HH:MM)"
// @Param slot query string true "Slot ID"
// @Param people query int true "Party size"
// @Success 200 {object} response.Data[dto.PlanResponse] "Proposed plan"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error "No plan exists"
// @Failure 500 {object} response.Error
// @Router /v1/availability/plan [get]
func (handler *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlan")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	slotTime := r.URL.Query().Get(constant.RequestParamTime)
	slotID := r.URL.Query().Get(constant.RequestParamSlot)

	people, err := strconv.Atoi(r.URL.Query().Get(constant.RequestParamPeople))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("people must be a positive integer"))

		return
	}

	plan, err := handler.service.Plan(ctx, people, date, slotTime, slotID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to plan tables")

		response.WithError(w, failure.FromReservationError(err))

		return
	}

	res := dto.PlanResponse{}
	res.FromModel(plan)

	response.WithJSON(w, http.StatusOK, res)
}
