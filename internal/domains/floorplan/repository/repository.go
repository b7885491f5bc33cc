package repository

import (
	"context"
	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/internal/domains/floorplan/model"
	gDto "tavola/shared/dto"
	gRepo "tavola/shared/repository"
)

type FloorPlan interface {
	Insert(ctx context.Context, model model.FloorPlan) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.FloorPlan, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.FloorPlan, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.FloorPlan]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) FloorPlan {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.FloorPlan](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
