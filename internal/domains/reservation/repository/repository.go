package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/internal/domains/reservation/model"
	"tavola/shared/constant"
	"tavola/shared/dto"
	"tavola/shared/logger"
	gRepo "tavola/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Count(ctx context.Context, filter dto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter dto.FilterGroup) (bool, error)
	Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error
	Delete(ctx context.Context, filter dto.FilterGroup) error
	SumActiveCovers(ctx context.Context, date, slotID string) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SumActiveCovers recounts the covers occupying a slot straight from the
// reservation rows. This is the ledger's source of truth when it seeds or
// repairs a slot_versions row, so it reads the write connection.
func (repo *repositoryImpl) SumActiveCovers(ctx context.Context, date, slotID string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".SumActiveCovers")
	defer scope.End()

	const query = `SELECT COALESCE(SUM(party_size), 0) FROM reservations
		WHERE booking_date = $1 AND slot_id = $2 AND status <> $3`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total int

	err := repo.db.Write.GetContext(ctx, &total, query, date, slotID, model.StatusCancelled)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum active covers (%s): %w", model.EntityName, err)
	}

	return total, nil
}
