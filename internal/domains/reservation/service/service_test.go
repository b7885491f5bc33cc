package service_test

import (
	"context"
	"errors"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tavola/config"
	"tavola/infras/kafka"
	otelMocks "tavola/infras/otel/mocks"
	assignmentMocks "tavola/internal/domains/assignment/mocks"
	assignmentModel "tavola/internal/domains/assignment/model"
	catalogModel "tavola/internal/domains/catalog/model"
	ledgerMocks "tavola/internal/domains/ledger/mocks"
	ledgerDto "tavola/internal/domains/ledger/model/dto"
	"tavola/internal/domains/reservation/mocks"
	"tavola/internal/domains/reservation/model"
	"tavola/internal/domains/reservation/model/dto"
	"tavola/internal/domains/reservation/service"
	"tavola/shared/failure"
)

// noopProducer stands in for Kafka; events are fire and forget, so the
// tests only need a sink that never fails.
type noopProducer struct{}

func (noopProducer) SendMessages(context.Context, string, ...kafka.Message) error { return nil }

func (noopProducer) Consume(context.Context, string, string, func(kafkaGo.Message)) {}

func (noopProducer) Reader(string, string) *kafkaGo.Reader { return nil }

func reservationConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Reservation.SlotCapacity = map[string]int{"pranzo": 40, "cena": 60}
	cfg.Reservation.MaxRetries = 2
	cfg.Reservation.MaxPartySize = 20
	cfg.Reservation.MaxJoinedTables = 3

	return cfg
}

func validRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		GuestName:   "Ada",
		GuestPhone:  "+39 055 000000",
		BookingDate: "2026-09-10",
		BookingTime: "19:30",
		SlotID:      "cena",
		PartySize:   4,
	}
}

func singlePlan() assignmentModel.Plan {
	return assignmentModel.Plan{
		Type: assignmentModel.AssignmentTypeSingle,
		Tables: []catalogModel.Table{
			{ID: "t4", Name: "t4", Capacity: 4, MinCapacity: 3, MaxCapacity: 4, Active: true},
		},
		SlotDate: "2026-09-10",
		SlotTime: "19:30",
		SlotID:   "cena",
	}
}

type testDeps struct {
	repo    *mocks.MockReservation
	booker  *ledgerMocks.MockBooker
	planner *assignmentMocks.MockPlanner
	svc     service.Reservation
}

func newTestDeps(t *testing.T) testDeps {
	ctrl := gomock.NewController(t)

	cfg := reservationConfig()

	d := testDeps{
		repo:    mocks.NewMockReservation(ctrl),
		booker:  ledgerMocks.NewMockBooker(ctrl),
		planner: assignmentMocks.NewMockPlanner(ctrl),
	}

	d.svc = service.New(d.repo, d.booker, d.planner, service.NewScheduleChecker(cfg), noopProducer{}, cfg, otelMocks.NewOtel())

	return d
}

func TestReservationService_Create(t *testing.T) {
	d := newTestDeps(t)

	d.booker.EXPECT().
		Reserve(gomock.Any(), "2026-09-10", "cena", 4).
		Return(ledgerDto.ReserveResult{Version: 2, Remaining: 56}, nil)

	d.planner.EXPECT().
		Plan(gomock.Any(), 4, "2026-09-10", "19:30", "cena").
		Return(singlePlan(), nil)

	// Assignment rows carry a foreign key to the reservation row, so the
	// pending row must land first, the plan commit second, and the status
	// flip to confirmed last.
	gomock.InOrder(
		d.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
				assert.Equal(t, model.StatusPending, reservation.Status)
				assert.Equal(t, "Ada", reservation.GuestName)
				assert.NotEmpty(t, reservation.ID)

				return nil
			}),
		d.planner.EXPECT().
			Commit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil),
		d.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusConfirmed, fields["status"])

				return nil
			}),
	)

	res, err := d.svc.Create(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, res.Status)
	assert.Len(t, res.Tables, 1)
	assert.Equal(t, "t4", res.Tables[0].TableID)
	assert.Equal(t, 4, res.Tables[0].AssignedCapacity)
}

func TestReservationService_Create_PartyTooLarge(t *testing.T) {
	d := newTestDeps(t)

	req := validRequest()
	req.PartySize = 21

	_, err := d.svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestReservationService_Create_SlotClosed(t *testing.T) {
	d := newTestDeps(t)

	req := validRequest()
	req.SlotID = "merenda"

	_, err := d.svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestReservationService_Create_InsufficientCapacity(t *testing.T) {
	d := newTestDeps(t)

	d.booker.EXPECT().
		Reserve(gomock.Any(), "2026-09-10", "cena", 4).
		Return(ledgerDto.ReserveResult{}, failure.ErrInsufficientCapacity)

	_, err := d.svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, failure.ErrInsufficientCapacity)
}

func TestReservationService_Create_NoPlanReleasesCapacity(t *testing.T) {
	d := newTestDeps(t)

	d.booker.EXPECT().
		Reserve(gomock.Any(), "2026-09-10", "cena", 4).
		Return(ledgerDto.ReserveResult{Version: 2, Remaining: 56}, nil)

	d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	d.planner.EXPECT().
		Plan(gomock.Any(), 4, "2026-09-10", "19:30", "cena").
		Return(assignmentModel.Plan{}, failure.ErrNoPlanFound)

	// The pending row and the seats reserved a moment ago must both come
	// back.
	d.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	d.booker.EXPECT().
		Release(gomock.Any(), "2026-09-10", "cena", 4).
		Return(ledgerDto.ReserveResult{Version: 3, Remaining: 60}, nil)

	_, err := d.svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, failure.ErrNoPlanFound)
}

func TestReservationService_Create_ReplansOnAssignmentConflict(t *testing.T) {
	d := newTestDeps(t)

	d.booker.EXPECT().
		Reserve(gomock.Any(), "2026-09-10", "cena", 4).
		Return(ledgerDto.ReserveResult{Version: 2, Remaining: 56}, nil)

	d.planner.EXPECT().
		Plan(gomock.Any(), 4, "2026-09-10", "19:30", "cena").
		Return(singlePlan(), nil).
		Times(2)

	gomock.InOrder(
		d.planner.EXPECT().
			Commit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(failure.ErrAssignmentConflict),
		d.planner.EXPECT().
			Commit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil),
	)

	d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := d.svc.Create(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, res.Status)
}

func TestReservationService_Create_ConflictExhaustion(t *testing.T) {
	d := newTestDeps(t)

	d.booker.EXPECT().
		Reserve(gomock.Any(), "2026-09-10", "cena", 4).
		Return(ledgerDto.ReserveResult{Version: 2, Remaining: 56}, nil)

	d.planner.EXPECT().
		Plan(gomock.Any(), 4, "2026-09-10", "19:30", "cena").
		Return(singlePlan(), nil).
		Times(2)

	d.planner.EXPECT().
		Commit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(failure.ErrAssignmentConflict).
		Times(2)

	d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	d.booker.EXPECT().
		Release(gomock.Any(), "2026-09-10", "cena", 4).
		Return(ledgerDto.ReserveResult{}, nil)

	_, err := d.svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, failure.ErrAssignmentConflict)
}

func TestReservationService_Create_InsertFailureRollsBack(t *testing.T) {
	d := newTestDeps(t)

	d.booker.EXPECT().
		Reserve(gomock.Any(), "2026-09-10", "cena", 4).
		Return(ledgerDto.ReserveResult{Version: 2, Remaining: 56}, nil)

	d.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(errors.New("db down"))

	// The row never landed, so only the seats come back; the planner was
	// never asked for tables.
	d.booker.EXPECT().
		Release(gomock.Any(), "2026-09-10", "cena", 4).
		Return(ledgerDto.ReserveResult{}, nil)

	_, err := d.svc.Create(context.Background(), validRequest())
	assert.Error(t, err)
}

func TestReservationService_Create_ConfirmFailureRollsBack(t *testing.T) {
	d := newTestDeps(t)

	d.booker.EXPECT().
		Reserve(gomock.Any(), "2026-09-10", "cena", 4).
		Return(ledgerDto.ReserveResult{Version: 2, Remaining: 56}, nil)

	d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	d.planner.EXPECT().
		Plan(gomock.Any(), 4, "2026-09-10", "19:30", "cena").
		Return(singlePlan(), nil)

	d.planner.EXPECT().
		Commit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	d.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("db down"))

	// The tables, the pending row and the seats all come back.
	d.planner.EXPECT().Release(gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	d.booker.EXPECT().
		Release(gomock.Any(), "2026-09-10", "cena", 4).
		Return(ledgerDto.ReserveResult{}, nil)

	_, err := d.svc.Create(context.Background(), validRequest())
	assert.Error(t, err)
}

func confirmedReservation() model.Reservation {
	return model.Reservation{
		ID:          "res-1",
		GuestName:   "Ada",
		GuestPhone:  "+39 055 000000",
		BookingDate: "2026-09-10",
		BookingTime: "19:30",
		SlotID:      "cena",
		PartySize:   4,
		Status:      model.StatusConfirmed,
	}
}

func TestReservationService_Cancel(t *testing.T) {
	d := newTestDeps(t)

	d.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(confirmedReservation(), nil)

	d.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, model.StatusCancelled, fields["status"])

			return nil
		})

	d.booker.EXPECT().
		Release(gomock.Any(), "2026-09-10", "cena", 4).
		Return(ledgerDto.ReserveResult{Version: 3, Remaining: 60}, nil)

	d.planner.EXPECT().Release(gomock.Any(), "res-1").Return(nil)

	assert.NoError(t, d.svc.Cancel(context.Background(), "res-1"))
}

func TestReservationService_Cancel_AlreadyCancelled(t *testing.T) {
	d := newTestDeps(t)

	cancelled := confirmedReservation()
	cancelled.Status = model.StatusCancelled

	d.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(cancelled, nil)

	// A second cancel neither touches the ledger nor the assignments.
	assert.NoError(t, d.svc.Cancel(context.Background(), "res-1"))
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	d := newTestDeps(t)

	d.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Reservation{}, nil)

	err := d.svc.Cancel(context.Background(), "missing")
	assert.Error(t, err)
}

func TestReservationService_Get(t *testing.T) {
	d := newTestDeps(t)

	d.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(confirmedReservation(), nil)

	d.planner.EXPECT().
		Assignments(gomock.Any(), "res-1").
		Return([]assignmentModel.TableAssignment{
			{TableID: "t4", AssignmentType: assignmentModel.AssignmentTypeSingle, AssignedCapacity: 4},
		}, nil)

	res, err := d.svc.Get(context.Background(), "res-1")
	assert.NoError(t, err)
	assert.Equal(t, "res-1", res.ID)
	assert.Len(t, res.Tables, 1)
}
