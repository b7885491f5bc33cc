package floorplan

import (
	"net/http"

	"tavola/infras/otel"
	"tavola/internal/domains/floorplan/model"
	"tavola/internal/domains/floorplan/model/dto"
	"tavola/internal/domains/floorplan/service"
	"tavola/shared/constant"
	gDto "tavola/shared/dto"
	"tavola/shared/validator"
	"tavola/transport/http/middleware"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.FloorPlan
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.FloorPlan, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/floorplans", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFloorPlans)
		routerGroup.Get("/{id}", handler.GetFloorPlanByID)

		admin := routerGroup.With(handler.middleware.Auth, handler.middleware.RBAC)
		admin.Post("/", handler.CreateFloorPlan)
		admin.Patch("/{id}", handler.UpdateFloorPlan)
		admin.Delete("/{id}", handler.DeleteFloorPlan)
		admin.Post("/upload", handler.UploadImage)
	})
}

// GetFloorPlans retrieves floor plans.
// @Summary Get all floor plans
// @Tags FloorPlan
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param area_id query string false "Filter by area ID"
// @Success 200 {object} response.Data[dto.GetFloorPlansResponse] "List of floor plans"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/floorplans [get]
func (handler *Handler) GetFloorPlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFloorPlans")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if areaID := r.URL.Query().Get(constant.RequestParamArea); areaID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAreaID,
			Operator: gDto.FilterOperatorEq,
			Value:    areaID,
			Table:    model.TableName,
		})
	}

	plans, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get floor plans")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, plans)
}

// GetFloorPlanByID retrieves one floor plan.
// @Summary Get a floor plan by ID
// @Tags FloorPlan
// @Produce json
// @Param id path string true "Floor Plan ID"
// @Success 200 {object} response.Data[dto.FloorPlanResponse] "Floor plan details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/floorplans/{id} [get]
func (handler *Handler) GetFloorPlanByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFloorPlanByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	plan, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get floor plan")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, plan)
}

// CreateFloorPlan attaches a layout image to an area.
// @Summary Create a new floor plan
// @Tags FloorPlan
// @Accept json
// @Produce json
// @Param request body dto.CreateFloorPlanRequest true "Create Floor Plan Request"
// @Success 201 {object} response.Message "Floor plan created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/floorplans [post]
// @Security BearerAuth
func (handler *Handler) CreateFloorPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFloorPlan")
	defer scope.End()

	req := dto.CreateFloorPlanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create floor plan")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Floor plan created successfully")
}

// UpdateFloorPlan updates a floor plan.
// @Summary Update a floor plan
// @Tags FloorPlan
// @Accept json
// @Produce json
// @Param id path string true "Floor Plan ID"
// @Param request body dto.UpdateFloorPlanRequest true "Update Floor Plan Request"
// @Success 200 {object} response.Message "Floor plan updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/floorplans/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateFloorPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFloorPlan")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateFloorPlanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update floor plan")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Floor plan updated successfully")
}

// DeleteFloorPlan removes a floor plan and its stored image.
// @Summary Delete a floor plan
// @Tags FloorPlan
// @Produce json
// @Param id path string true "Floor Plan ID"
// @Success 200 {object} response.Message "Floor plan deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/floorplans/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFloorPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFloorPlan")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete floor plan")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Floor plan deleted successfully")
}

// UploadImage handles layout image upload to S3.
// @Summary Upload a floor plan image
// @Tags FloorPlan
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 200 {object} dto.UploadImageResponse "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/floorplans/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	res, err := handler.service.UploadImage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Floor plan image uploaded by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
