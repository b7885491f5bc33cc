package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/internal/domains/assignment/model"
	"tavola/shared/constant"
	"tavola/shared/dto"
	"tavola/shared/failure"
	"tavola/shared/logger"
	gRepo "tavola/shared/repository"

	"github.com/lib/pq"
)

type Assignment interface {
	ListForSlot(ctx context.Context, date, slotTime, slotID string) ([]model.TableAssignment, error)
	ListByBooking(ctx context.Context, bookingID string) ([]model.TableAssignment, error)
	CommitPlan(ctx context.Context, rows []model.TableAssignment) error
	DeleteByBooking(ctx context.Context, bookingID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.TableAssignment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Assignment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TableAssignment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func slotFilter(date, slotTime, slotID string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: model.FieldSlotDate, Operator: dto.FilterOperatorEq, Value: date, Table: model.TableName},
			dto.Filter{Field: model.FieldSlotTime, Operator: dto.FilterOperatorEq, Value: slotTime, Table: model.TableName},
			dto.Filter{Field: model.FieldSlotID, Operator: dto.FilterOperatorEq, Value: slotID, Table: model.TableName},
		},
	}
}

// ListForSlot returns every assignment occupying the slot. The result is
// what the availability index subtracts from the active table set.
func (repo *repositoryImpl) ListForSlot(ctx context.Context, date, slotTime, slotID string) ([]model.TableAssignment, error) {
	params := dto.QueryParams{SortBy: model.FieldTableID, SortDir: dto.SortDirAsc}

	return repo.GetAll(ctx, params, slotFilter(date, slotTime, slotID))
}

func (repo *repositoryImpl) ListByBooking(ctx context.Context, bookingID string) ([]model.TableAssignment, error) {
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: model.FieldBookingID, Operator: dto.FilterOperatorEq, Value: bookingID, Table: model.TableName},
		},
	}

	params := dto.QueryParams{SortBy: model.FieldTableID, SortDir: dto.SortDirAsc}

	return repo.GetAll(ctx, params, filter)
}

// CommitPlan persists all rows of a plan in one transaction. Prior rows
// for the same booking are deleted first, so re-planning is idempotent.
// It re-checks occupancy inside the transaction and relies on the unique
// index over (table_id, slot_date, slot_time, slot_id) as the final
// arbiter: if a concurrent commit takes any of the tables first, the
// whole plan fails with ErrAssignmentConflict and nothing is written.
func (repo *repositoryImpl) CommitPlan(ctx context.Context, rows []model.TableAssignment) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CommitPlan")
	defer scope.End()

	if len(rows) == 0 {
		return failure.ErrInvalidParameters
	}

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	const deleteQuery = `DELETE FROM table_assignments WHERE booking_id = $1`

	if _, err = tx.ExecContext(ctx, deleteQuery, rows[0].BookingID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete prior assignments (%s): %w", model.EntityName, err)
	}

	tableIDs := make([]string, len(rows))
	for i, row := range rows {
		tableIDs[i] = row.TableID
	}

	const checkQuery = `SELECT COUNT(*) FROM table_assignments
		WHERE slot_date = $1 AND slot_time = $2 AND slot_id = $3 AND table_id = ANY($4)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, checkQuery)

	var occupied int
	if err = tx.GetContext(ctx, &occupied, checkQuery, rows[0].SlotDate, rows[0].SlotTime, rows[0].SlotID, pq.Array(tableIDs)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to check occupancy (%s): %w", model.EntityName, err)
	}

	if occupied > 0 {
		err = failure.ErrAssignmentConflict

		return err
	}

	if err = repo.InsertBulkTx(ctx, tx, rows); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			err = failure.ErrAssignmentConflict

			return err
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			err = failure.ErrAssignmentConflict

			return err
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) DeleteByBooking(ctx context.Context, bookingID string) error {
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: model.FieldBookingID, Operator: dto.FilterOperatorEq, Value: bookingID, Table: model.TableName},
		},
	}

	return repo.Delete(ctx, filter)
}
