package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tavola/config"
	"tavola/infras/otel"
	"tavola/internal/domains/assignment/model"
	"tavola/internal/domains/assignment/repository"
	catalogModel "tavola/internal/domains/catalog/model"
	catalogSvc "tavola/internal/domains/catalog/service"
	"tavola/shared/constant"
	"tavola/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Planner finds and persists table assignments. Planning is a pure read
// over the catalog and current occupancy; only Commit writes, and the
// database decides conflicts between concurrent commits.
type Planner interface {
	AvailableTables(ctx context.Context, date, slotTime, slotID string) ([]catalogModel.Table, error)
	Plan(ctx context.Context, people int, date, slotTime, slotID string) (model.Plan, error)
	Commit(ctx context.Context, bookingID string, plan model.Plan) error
	Release(ctx context.Context, bookingID string) error
	Assignments(ctx context.Context, bookingID string) ([]model.TableAssignment, error)
}

type serviceImpl struct {
	repo    repository.Assignment
	catalog catalogSvc.Catalog
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Assignment, catalog catalogSvc.Catalog, cfg *config.Config, otel otel.Otel) Planner {
	return &serviceImpl{
		repo:    repo,
		catalog: catalog,
		cfg:     cfg,
		otel:    otel,
	}
}

// AvailableTables returns the active tables not occupied by any assignment
// in the given slot. Recomputed per request; occupancy is too volatile to
// cache.
func (s *serviceImpl) AvailableTables(ctx context.Context, date, slotTime, slotID string) (res []catalogModel.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableTables")
	defer scope.End()
	defer scope.TraceIfError(err)

	tables, err := s.catalog.AllActiveTables(ctx)
	if err != nil {
		return nil, err
	}

	assigned, err := s.repo.ListForSlot(ctx, date, slotTime, slotID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for slot: %w", err)
	}

	occupied := make(map[string]struct{}, len(assigned))
	for _, row := range assigned {
		occupied[row.TableID] = struct{}{}
	}

	res = make([]catalogModel.Table, 0, len(tables))

	for _, table := range tables {
		if _, taken := occupied[table.ID]; !taken {
			res = append(res, table)
		}
	}

	return res, nil
}

// Plan searches for a seating, cheapest first: the smallest single table
// whose party-size band fits, then bounded combinations within each table
// group. Returns ErrNoPlanFound when neither pass yields a fit.
func (s *serviceImpl) Plan(ctx context.Context, people int, date, slotTime, slotID string) (plan model.Plan, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Plan")
	defer scope.End()
	defer scope.TraceIfError(err)

	if people <= 0 {
		return plan, failure.ErrInvalidParameters
	}

	available, err := s.AvailableTables(ctx, date, slotTime, slotID)
	if err != nil {
		return plan, err
	}

	plan.SlotDate = date
	plan.SlotTime = slotTime
	plan.SlotID = slotID

	sortByCapacity(available)

	for _, table := range available {
		if table.Fits(people) {
			plan.Type = model.AssignmentTypeSingle
			plan.Tables = []catalogModel.Table{table}

			return plan, nil
		}
	}

	availableIDs := make(map[string]struct{}, len(available))
	for _, table := range available {
		availableIDs[table.ID] = struct{}{}
	}

	groups, err := s.catalog.ActiveGroups(ctx)
	if err != nil {
		return plan, err
	}

	for _, group := range groups {
		members, err := s.catalog.TablesInGroup(ctx, group.ID)
		if err != nil {
			return plan, err
		}

		candidates := make([]catalogModel.Table, 0, len(members))

		for _, table := range members {
			if _, ok := availableIDs[table.ID]; ok && table.Active {
				candidates = append(candidates, table)
			}
		}

		combo := chooseCombination(candidates, people, group.MaxCombinedCapacity, s.cfg.Reservation.MaxJoinedTables)
		if combo == nil {
			continue
		}

		groupID := group.ID
		plan.Type = model.AssignmentTypeJoined
		plan.GroupID = &groupID
		plan.Tables = combo

		return plan, nil
	}

	log.Debug().
		Int("people", people).
		Str("date", date).
		Str("slot_id", slotID).
		Msg("no table plan found")

	return plan, failure.ErrNoPlanFound
}

// Commit persists the plan for a booking. A lost race against another
// commit surfaces as ErrAssignmentConflict; the caller re-plans.
func (s *serviceImpl) Commit(ctx context.Context, bookingID string, plan model.Plan) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Commit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if bookingID == "" || len(plan.Tables) == 0 {
		return failure.ErrInvalidParameters
	}

	if err = s.repo.CommitPlan(ctx, plan.Rows(bookingID, uuid.NewString)); err != nil {
		return fmt.Errorf("failed to commit plan for booking %s: %w", bookingID, err)
	}

	return nil
}

// Assignments lists the rows currently held by a booking.
func (s *serviceImpl) Assignments(ctx context.Context, bookingID string) (res []model.TableAssignment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Assignments")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for booking %s: %w", bookingID, err)
	}

	return res, nil
}

// Release drops every assignment held by the booking. Callers release the
// capacity ledger alongside; the two form one logical unit.
func (s *serviceImpl) Release(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeleteByBooking(ctx, bookingID); err != nil {
		return fmt.Errorf("failed to release assignments for booking %s: %w", bookingID, err)
	}

	return nil
}
