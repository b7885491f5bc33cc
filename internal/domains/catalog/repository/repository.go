package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/internal/domains/catalog/model"
	"tavola/shared/constant"
	gDto "tavola/shared/dto"
	"tavola/shared/logger"
	gRepo "tavola/shared/repository"
)

type Area interface {
	Insert(ctx context.Context, model model.Area) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Area, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Area, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type areaImpl struct {
	gRepo.Repository[model.Area]
	db   *postgres.Connection
	otel otel.Otel
}

func NewArea(db *postgres.Connection, otel otel.Otel) Area {
	return &areaImpl{
		Repository: gRepo.NewRepository[model.Area](model.AreaEntityName, model.AreaTableName, model.AreaFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Table interface {
	Insert(ctx context.Context, model model.Table) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Table, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Table, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type tableImpl struct {
	gRepo.Repository[model.Table]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTable(db *postgres.Connection, otel otel.Otel) Table {
	return &tableImpl{
		Repository: gRepo.NewRepository[model.Table](model.TableEntityName, model.TableTableName, model.TableFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Group interface {
	Insert(ctx context.Context, model model.TableGroup) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TableGroup, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TableGroup, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type groupImpl struct {
	gRepo.Repository[model.TableGroup]
	db   *postgres.Connection
	otel otel.Otel
}

func NewGroup(db *postgres.Connection, otel otel.Otel) Group {
	return &groupImpl{
		Repository: gRepo.NewRepository[model.TableGroup](model.GroupEntityName, model.GroupTableName, model.GroupFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Member interface {
	Insert(ctx context.Context, model model.GroupMember) error
	InsertBulk(ctx context.Context, models []model.GroupMember) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	TablesInGroup(ctx context.Context, groupID string) ([]model.Table, error)
}

type memberImpl struct {
	gRepo.Repository[model.GroupMember]
	db   *postgres.Connection
	otel otel.Otel
}

func NewMember(db *postgres.Connection, otel otel.Otel) Member {
	return &memberImpl{
		Repository: gRepo.NewRepository[model.GroupMember](model.MemberEntityName, model.MemberTableName, model.MemberFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// TablesInGroup returns a group's member tables in join order. The order
// fixes the iteration sequence of the combination search, which is what
// makes planning deterministic across calls.
func (repo *memberImpl) TablesInGroup(ctx context.Context, groupID string) ([]model.Table, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.MemberEntityName+".TablesInGroup")
	defer scope.End()

	const query = `SELECT t.id, t.area_id, t.name, t.capacity, t.min_capacity, t.max_capacity, t.active
		FROM table_group_members m
		JOIN dining_tables t ON t.id = m.table_id
		WHERE m.group_id = $1
		ORDER BY m.join_order ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var tables []model.Table

	err := repo.db.Read.SelectContext(ctx, &tables, query, groupID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.MemberEntityName, err)
	}

	return tables, nil
}
