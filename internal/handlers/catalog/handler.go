package catalog

import (
	"net/http"
	"strconv"

	"tavola/infras/otel"
	"tavola/internal/domains/catalog/model"
	"tavola/internal/domains/catalog/model/dto"
	"tavola/internal/domains/catalog/service"
	"tavola/shared/constant"
	gDto "tavola/shared/dto"
	"tavola/shared/validator"
	"tavola/transport/http/middleware"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Catalog
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Catalog, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/catalog", func(routerGroup chi.Router) {
		routerGroup.Get("/areas", handler.GetAreas)
		routerGroup.Get("/areas/{id}/tables", handler.GetAreaTables)
		routerGroup.Get("/areas/{id}/groups", handler.GetAreaGroups)
		routerGroup.Get("/tables", handler.GetTables)
		routerGroup.Get("/groups", handler.GetGroups)

		admin := routerGroup.With(handler.middleware.Auth, handler.middleware.RBAC)
		admin.Post("/areas", handler.CreateArea)
		admin.Patch("/areas/{id}", handler.UpdateArea)
		admin.Post("/tables", handler.CreateTable)
		admin.Patch("/tables/{id}", handler.UpdateTable)
		admin.Post("/groups", handler.CreateGroup)
		admin.Delete("/groups/{id}", handler.DeleteGroup)
	})
}

func activeBoolFilter(r *http.Request, field, table string, filters []any) []any {
	raw := r.URL.Query().Get(constant.RequestParamActive)
	if raw == "" {
		return filters
	}

	active, err := strconv.ParseBool(raw)
	if err != nil {
		return filters
	}

	return append(filters, gDto.Filter{
		Field:    field,
		Operator: gDto.FilterOperatorEq,
		Value:    active,
		Table:    table,
	})
}

// GetAreas retrieves dining areas.
// @Summary Get all areas
// @Description Retrieve dining areas with optional filtering and pagination.
// @Tags Catalog
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetAreasResponse] "List of areas"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/areas [get]
func (handler *Handler) GetAreas(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAreas")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  activeBoolFilter(r, model.AreaFieldActive, model.AreaTableName, []any{}),
	}

	areas, err := handler.service.GetAreas(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get areas")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, areas)
}

// GetAreaTables lists the active tables inside one area.
// @Summary Get active tables in an area
// @Tags Catalog
// @Produce json
// @Param id path string true "Area ID"
// @Success 200 {object} response.Data[dto.AreaTablesResponse] "Active tables in the area"
// @Failure 500 {object} response.Error
// @Router /v1/catalog/areas/{id}/tables [get]
func (handler *Handler) GetAreaTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAreaTables")
	defer scope.End()

	areaID := chi.URLParam(r, constant.RequestParamID)

	tables, err := handler.service.TablesInArea(ctx, areaID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tables in area")

		response.WithError(w, err)

		return
	}

	res := dto.AreaTablesResponse{}
	res.FromModels(areaID, tables)

	response.WithJSON(w, http.StatusOK, res)
}

// GetAreaGroups lists the active joinable table groups inside one area.
// @Summary Get active table groups in an area
// @Tags Catalog
// @Produce json
// @Param id path string true "Area ID"
// @Success 200 {object} response.Data[dto.AreaGroupsResponse] "Active table groups in the area"
// @Failure 500 {object} response.Error
// @Router /v1/catalog/areas/{id}/groups [get]
func (handler *Handler) GetAreaGroups(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAreaGroups")
	defer scope.End()

	areaID := chi.URLParam(r, constant.RequestParamID)

	groups, err := handler.service.GroupsInArea(ctx, areaID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get table groups in area")

		response.WithError(w, err)

		return
	}

	res := dto.AreaGroupsResponse{}
	res.FromModels(areaID, groups)

	response.WithJSON(w, http.StatusOK, res)
}

// CreateArea creates a dining area.
// @Summary Create a new area
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateAreaRequest true "Create Area Request"
// @Success 201 {object} response.Message "Area created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/areas [post]
// @Security BearerAuth
func (handler *Handler) CreateArea(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateArea")
	defer scope.End()

	req := dto.CreateAreaRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateArea(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create area")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Area created successfully")
}

// UpdateArea updates a dining area.
// @Summary Update an area
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Area ID"
// @Param request body dto.UpdateAreaRequest true "Update Area Request"
// @Success 200 {object} response.Message "Area updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/areas/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateArea(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateArea")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateAreaRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateArea(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update area")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Area updated successfully")
}

// GetTables retrieves dining tables.
// @Summary Get all tables
// @Description Retrieve dining tables with optional filtering and pagination.
// @Tags Catalog
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param area_id query string false "Filter by area ID"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetTablesResponse] "List of tables"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/tables [get]
func (handler *Handler) GetTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTables")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filters := activeBoolFilter(r, model.TableFieldActive, model.TableTableName, []any{})

	if areaID := r.URL.Query().Get(constant.RequestParamArea); areaID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.TableFieldAreaID,
			Operator: gDto.FilterOperatorEq,
			Value:    areaID,
			Table:    model.TableTableName,
		})
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}

	tables, err := handler.service.GetTables(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tables)
}

// CreateTable creates a dining table.
// @Summary Create a new table
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateTableRequest true "Create Table Request"
// @Success 201 {object} response.Message "Table created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/tables [post]
// @Security BearerAuth
func (handler *Handler) CreateTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTable")
	defer scope.End()

	req := dto.CreateTableRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateTable(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create table")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Table created successfully")
}

// UpdateTable updates a dining table.
// @Summary Update a table
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Param request body dto.UpdateTableRequest true "Update Table Request"
// @Success 200 {object} response.Message "Table updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/tables/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateTableRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateTable(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update table")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Table updated successfully")
}

// GetGroups retrieves joinable table groups with their member tables.
// @Summary Get all table groups
// @Tags Catalog
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param area_id query string false "Filter by area ID"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetGroupsResponse] "List of table groups"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/groups [get]
func (handler *Handler) GetGroups(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGroups")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filters := activeBoolFilter(r, model.GroupFieldActive, model.GroupTableName, []any{})

	if areaID := r.URL.Query().Get(constant.RequestParamArea); areaID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.GroupFieldAreaID,
			Operator: gDto.FilterOperatorEq,
			Value:    areaID,
			Table:    model.GroupTableName,
		})
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}

	groups, err := handler.service.GetGroups(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get table groups")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, groups)
}

// CreateGroup creates a joinable table group with ordered members.
// @Summary Create a new table group
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateGroupRequest true "Create Group Request"
// @Success 201 {object} response.Message "Table group created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/groups [post]
// @Security BearerAuth
func (handler *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGroup")
	defer scope.End()

	req := dto.CreateGroupRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateGroup(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create table group")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Table group created successfully")
}

// DeleteGroup removes a table group and its membership rows.
// @Summary Delete a table group
// @Tags Catalog
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} response.Message "Table group deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/groups/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGroup")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteGroup(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete table group")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Table group deleted successfully")
}
