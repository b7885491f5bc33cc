package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"tavola/config"
	"tavola/infras/kafka"
	"tavola/infras/otel"
	assignmentModel "tavola/internal/domains/assignment/model"
	assignmentSvc "tavola/internal/domains/assignment/service"
	ledgerSvc "tavola/internal/domains/ledger/service"
	"tavola/internal/domains/reservation/model"
	"tavola/internal/domains/reservation/model/dto"
	"tavola/internal/domains/reservation/repository"
	"tavola/shared"
	"tavola/shared/constant"
	gDto "tavola/shared/dto"
	"tavola/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Reservation drives the booking workflow: the capacity ledger answers
// "are there seats", the planner answers "which tables", and this service
// keeps the two consistent when either says no.
type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Reservation
	booker   ledgerSvc.Booker
	planner  assignmentSvc.Planner
	schedule ScheduleChecker
	producer kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	repo repository.Reservation,
	booker ledgerSvc.Booker,
	planner assignmentSvc.Planner,
	schedule ScheduleChecker,
	producer kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:     repo,
		booker:   booker,
		planner:  planner,
		schedule: schedule,
		producer: producer,
		cfg:      cfg,
		otel:     otel,
	}
}

// Create runs the full workflow: schedule check, capacity reserve, a
// pending reservation row, table plan, plan commit, then the status flip
// to confirmed. Assignment rows reference the reservation row, so the row
// has to exist before any plan is committed. Capacity is released and the
// pending row removed on every failure path past the reserve, so a
// rejected booking never leaks seats.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.PartySize > s.cfg.Reservation.MaxPartySize {
		return res, failure.UnprocessableEntity(fmt.Sprintf("party size exceeds maximum of %d", s.cfg.Reservation.MaxPartySize)) //nolint:wrapcheck
	}

	open, err := s.schedule.IsSlotOpen(req.BookingDate, req.SlotID)
	if err != nil {
		return res, fmt.Errorf("%w: %s", failure.ErrInvalidParameters, err.Error())
	}

	if !open {
		return res, failure.UnprocessableEntity("the requested slot is not open for reservations") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	reservation := req.ToModel(user)

	if _, err = s.booker.Reserve(ctx, req.BookingDate, req.SlotID, req.PartySize); err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		s.releaseCapacity(ctx, reservation)

		return res, fmt.Errorf("failed to insert reservation: %w", err)
	}

	plan, err := s.planAndCommit(ctx, reservation)
	if err != nil {
		s.discard(ctx, reservation)

		return res, err
	}

	if err = s.confirm(ctx, reservation.ID, user); err != nil {
		if relErr := s.planner.Release(ctx, reservation.ID); relErr != nil {
			log.Error().Err(relErr).Str("reservation_id", reservation.ID).Msg("failed to release assignments after confirm failure")
		}

		s.discard(ctx, reservation)

		return res, err
	}

	reservation.Status = model.StatusConfirmed

	s.publish(ctx, constant.KafkaTopicReservationConfirmed, reservation)

	res.FromModel(reservation)
	res.WithAssignments(plan.Rows(reservation.ID, uuid.NewString))

	return res, nil
}

// planAndCommit retries the plan/commit pair when a concurrent booking
// takes one of the chosen tables first. Every other failure, including no
// plan existing at all, surfaces immediately.
func (s *serviceImpl) planAndCommit(ctx context.Context, reservation model.Reservation) (plan assignmentModel.Plan, err error) {
	for attempt := 0; attempt < s.cfg.Reservation.MaxRetries; attempt++ {
		plan, err = s.planner.Plan(ctx, reservation.PartySize, reservation.BookingDate, reservation.BookingTime, reservation.SlotID)
		if err != nil {
			return plan, err
		}

		err = s.planner.Commit(ctx, reservation.ID, plan)
		if err == nil {
			return plan, nil
		}

		if !errors.Is(err, failure.ErrAssignmentConflict) {
			return plan, err
		}

		log.Debug().
			Str("reservation_id", reservation.ID).
			Int("attempt", attempt+1).
			Msg("assignment conflict, re-planning")
	}

	return plan, fmt.Errorf("%w: re-planning exhausted after %d attempts", failure.ErrAssignmentConflict, s.cfg.Reservation.MaxRetries)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	rows, err := s.planner.Assignments(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)
	res.WithAssignments(rows)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// Cancel flips the status, then gives back the capacity and the tables.
// The three writes are not one transaction; the ledger's Sync recount
// repairs any drift a crash in between leaves behind.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status == model.StatusCancelled {
		return nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	fields := shared.TransformFields(struct {
		Status string `db:"status"`
	}{Status: model.StatusCancelled}, user)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	reservation.Status = model.StatusCancelled

	if _, err = s.booker.Release(ctx, reservation.BookingDate, reservation.SlotID, reservation.PartySize); err != nil {
		log.Error().Err(err).
			Str("reservation_id", id).
			Str("date", reservation.BookingDate).
			Str("slot_id", reservation.SlotID).
			Msg("failed to release capacity on cancel")

		return err
	}

	if err = s.planner.Release(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, constant.KafkaTopicReservationCancelled, reservation)

	return nil
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == "" {
		return reservation, failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) confirm(ctx context.Context, id, user string) error {
	fields := shared.TransformFields(struct {
		Status string `db:"status"`
	}{Status: model.StatusConfirmed}, user)

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to confirm reservation: %w", err)
	}

	return nil
}

// discard removes a pending reservation row and gives its seats back.
func (s *serviceImpl) discard(ctx context.Context, reservation model.Reservation) {
	if err := s.repo.Delete(ctx, shared.FilterByID(reservation.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("reservation_id", reservation.ID).Msg("failed to delete pending reservation")
	}

	s.releaseCapacity(ctx, reservation)
}

func (s *serviceImpl) releaseCapacity(ctx context.Context, reservation model.Reservation) {
	if _, err := s.booker.Release(ctx, reservation.BookingDate, reservation.SlotID, reservation.PartySize); err != nil {
		log.Error().Err(err).
			Str("date", reservation.BookingDate).
			Str("slot_id", reservation.SlotID).
			Int("people", reservation.PartySize).
			Msg("failed to release capacity after rejected booking")
	}
}

// publish is fire and forget. Losing an event never fails the booking.
func (s *serviceImpl) publish(ctx context.Context, topic string, reservation model.Reservation) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   reservation.ID,
			Value: dto.NewReservationEvent(reservation),
		}

		if err := s.producer.SendMessages(c, topic, message); err != nil {
			log.Error().Err(err).
				Str("topic", topic).
				Str("reservation_id", reservation.ID).
				Msg("failed to publish reservation event")
		}
	}()
}
