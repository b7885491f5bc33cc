package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tavola/config"
	"tavola/infras/otel"
	"tavola/internal/domains/catalog/model"
	"tavola/internal/domains/catalog/model/dto"
	"tavola/internal/domains/catalog/repository"
	"tavola/shared"
	"tavola/shared/cache"
	"tavola/shared/constant"
	gDto "tavola/shared/dto"
	"tavola/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheActiveTables = "catalog:tables:active"
	cacheActiveGroups = "catalog:groups:active"
	cacheGroupTables  = "catalog:group:tables"
	cacheGetAreas     = "catalog:areas:gets"
	cacheGetTables    = "catalog:tables:gets"
	cacheGetGroups    = "catalog:groups:gets"
)

// Catalog serves the table/area reference data. Reads are cheap and cached;
// the only writers are administrative edits, which invalidate on the same
// path.
type Catalog interface {
	AllActiveTables(ctx context.Context) ([]model.Table, error)
	TablesInArea(ctx context.Context, areaID string) ([]model.Table, error)
	ActiveGroups(ctx context.Context) ([]model.TableGroup, error)
	GroupsInArea(ctx context.Context, areaID string) ([]model.TableGroup, error)
	TablesInGroup(ctx context.Context, groupID string) ([]model.Table, error)

	CreateArea(ctx context.Context, req dto.CreateAreaRequest) error
	GetAreas(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAreasResponse, error)
	UpdateArea(ctx context.Context, req dto.UpdateAreaRequest, id string) error

	CreateTable(ctx context.Context, req dto.CreateTableRequest) error
	GetTables(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTablesResponse, error)
	UpdateTable(ctx context.Context, req dto.UpdateTableRequest, id string) error

	CreateGroup(ctx context.Context, req dto.CreateGroupRequest) error
	GetGroups(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGroupsResponse, error)
	DeleteGroup(ctx context.Context, id string) error
}

type serviceImpl struct {
	areaRepo   repository.Area
	tableRepo  repository.Table
	groupRepo  repository.Group
	memberRepo repository.Member
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	areaRepo repository.Area,
	tableRepo repository.Table,
	groupRepo repository.Group,
	memberRepo repository.Member,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Catalog {
	return &serviceImpl{
		areaRepo:   areaRepo,
		tableRepo:  tableRepo,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func activeFilter(field, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: field, Operator: gDto.FilterOperatorEq, Value: true, Table: table},
		},
	}
}

func (s *serviceImpl) AllActiveTables(ctx context.Context) (res []model.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AllActiveTables")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Get(ctx, cacheActiveTables, &res); err == nil {
		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.TableFieldName, SortDir: gDto.SortDirAsc}

	res, err = s.tableRepo.GetAll(ctx, params, activeFilter(model.TableFieldActive, model.TableTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get active tables")

		return nil, fmt.Errorf("failed to get active tables: %w", err)
	}

	s.saveToCache(ctx, cacheActiveTables, res)

	return res, nil
}

func (s *serviceImpl) TablesInArea(ctx context.Context, areaID string) (res []model.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TablesInArea")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.TableFieldAreaID, Operator: gDto.FilterOperatorEq, Value: areaID, Table: model.TableTableName},
			gDto.Filter{Field: model.TableFieldActive, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableTableName},
		},
	}

	params := gDto.QueryParams{SortBy: model.TableFieldName, SortDir: gDto.SortDirAsc}

	res, err = s.tableRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("area_id", areaID).Msg("failed to get tables in area")

		return nil, fmt.Errorf("failed to get tables in area: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) ActiveGroups(ctx context.Context) (res []model.TableGroup, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ActiveGroups")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Get(ctx, cacheActiveGroups, &res); err == nil {
		return res, nil
	}

	// Ordered by owning area, then name: the planner walks areas in a
	// fixed sequence, which keeps joined plans deterministic.
	params := gDto.QueryParams{SortBy: model.GroupFieldAreaID + ", name", SortDir: gDto.SortDirAsc}

	res, err = s.groupRepo.GetAll(ctx, params, activeFilter(model.GroupFieldActive, model.GroupTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get active table groups")

		return nil, fmt.Errorf("failed to get active table groups: %w", err)
	}

	s.saveToCache(ctx, cacheActiveGroups, res)

	return res, nil
}

func (s *serviceImpl) GroupsInArea(ctx context.Context, areaID string) (res []model.TableGroup, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GroupsInArea")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.GroupFieldAreaID, Operator: gDto.FilterOperatorEq, Value: areaID, Table: model.GroupTableName},
			gDto.Filter{Field: model.GroupFieldActive, Operator: gDto.FilterOperatorEq, Value: true, Table: model.GroupTableName},
		},
	}

	params := gDto.QueryParams{SortBy: model.GroupFieldName, SortDir: gDto.SortDirAsc}

	res, err = s.groupRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("area_id", areaID).Msg("failed to get table groups in area")

		return nil, fmt.Errorf("failed to get table groups in area: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) TablesInGroup(ctx context.Context, groupID string) (res []model.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TablesInGroup")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGroupTables, groupID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.memberRepo.TablesInGroup(ctx, groupID)
	if err != nil {
		log.Error().Err(err).Str("group_id", groupID).Msg("failed to get tables in group")

		return nil, fmt.Errorf("failed to get tables in group: %w", err)
	}

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) CreateArea(ctx context.Context, req dto.CreateAreaRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateArea")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.areaRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create area")

		return fmt.Errorf("failed to create area: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAreas(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAreasResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAreas")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAreas, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.areaRepo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count areas: %w", err)
	}

	models, err := s.areaRepo.GetAll(ctx, params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get areas: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) UpdateArea(ctx context.Context, req dto.UpdateAreaRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateArea")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.areaRepo.Exist(ctx, shared.FilterByID(id, model.AreaFieldID, model.AreaTableName))
	if err != nil {
		return fmt.Errorf("failed to check if area exists: %w", err)
	}

	if !exist {
		return failure.NotFound("area not found") //nolint:wrapcheck
	}

	if err = s.areaRepo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.AreaFieldID, model.AreaTableName)); err != nil {
		return fmt.Errorf("failed to update area: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) CreateTable(ctx context.Context, req dto.CreateTableRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	areaExists, err := s.areaRepo.Exist(ctx, shared.FilterByID(req.AreaID, model.AreaFieldID, model.AreaTableName))
	if err != nil {
		return fmt.Errorf("failed to check if area exists: %w", err)
	}

	if !areaExists {
		return failure.BadRequestFromString("area does not exist") //nolint:wrapcheck
	}

	if err = s.tableRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create table")

		return fmt.Errorf("failed to create table: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetTables(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTables")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetTables, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.tableRepo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count tables: %w", err)
	}

	models, err := s.tableRepo.GetAll(ctx, params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) UpdateTable(ctx context.Context, req dto.UpdateTableRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.tableRepo.Exist(ctx, shared.FilterByID(id, model.TableFieldID, model.TableTableName))
	if err != nil {
		return fmt.Errorf("failed to check if table exists: %w", err)
	}

	if !exist {
		return failure.NotFound("table not found") //nolint:wrapcheck
	}

	if err = s.tableRepo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.TableFieldID, model.TableTableName)); err != nil {
		return fmt.Errorf("failed to update table: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// CreateGroup validates that every member table exists and shares the
// group's area before persisting the group and its ordered membership.
func (s *serviceImpl) CreateGroup(ctx context.Context, req dto.CreateGroupRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateGroup")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	for _, tableID := range req.TableIDs {
		table, err := s.tableRepo.Get(ctx, shared.FilterByID(tableID, model.TableFieldID, model.TableTableName))
		if err != nil {
			return fmt.Errorf("failed to get member table: %w", err)
		}

		if table.ID == "" {
			return failure.BadRequestFromString(fmt.Sprintf("table %s does not exist", tableID)) //nolint:wrapcheck
		}

		if table.AreaID != req.AreaID {
			return failure.BadRequestFromString(fmt.Sprintf("table %s belongs to a different area", tableID)) //nolint:wrapcheck
		}
	}

	group := req.ToModel(user)

	if err = s.groupRepo.Insert(ctx, group); err != nil {
		log.Error().Err(err).Msg("failed to create table group")

		return fmt.Errorf("failed to create table group: %w", err)
	}

	if err = s.memberRepo.InsertBulk(ctx, req.ToMembers(group.ID, user)); err != nil {
		log.Error().Err(err).Msg("failed to create group members")

		return fmt.Errorf("failed to create group members: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetGroups(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGroupsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGroups")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetGroups, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.groupRepo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count table groups: %w", err)
	}

	models, err := s.groupRepo.GetAll(ctx, params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get table groups: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	for i := range res.Groups {
		tables, err := s.TablesInGroup(ctx, res.Groups[i].ID)
		if err != nil {
			return res, err
		}

		res.Groups[i].Tables = make([]dto.TableResponse, len(tables))
		for j, table := range tables {
			res.Groups[i].Tables[j].FromModel(table)
		}
	}

	s.saveToCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) DeleteGroup(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteGroup")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.groupRepo.Exist(ctx, shared.FilterByID(id, model.GroupFieldID, model.GroupTableName))
	if err != nil {
		return fmt.Errorf("failed to check if table group exists: %w", err)
	}

	if !exist {
		return failure.NotFound("table group not found") //nolint:wrapcheck
	}

	if err = s.memberRepo.Delete(ctx, shared.FilterByID(id, model.MemberFieldGroupID, model.MemberTableName)); err != nil {
		return fmt.Errorf("failed to delete group members: %w", err)
	}

	if err = s.groupRepo.Delete(ctx, shared.FilterByID(id, model.GroupFieldID, model.GroupTableName)); err != nil {
		return fmt.Errorf("failed to delete table group: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) saveToCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to save catalog cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, "catalog")
	}()
}
